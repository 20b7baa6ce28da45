// SPDX-License-Identifier: MPL-2.0

// Command lsx resolves ls-style command-line options into a listing configuration.
package main

import cmd "github.com/lsxdev/lsx/cmd/lsx"

func main() {
	cmd.Execute()
}
