// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared by the lsx command and its
// internal packages.
package types
