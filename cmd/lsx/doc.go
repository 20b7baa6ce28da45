// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the lsx command line: it parses flags, merges user
// configuration, validates the invocation at the boundary and prints the
// resolved listing configuration.
package cmd
