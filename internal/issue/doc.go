// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help
// pages for the failures lsx reports to users.
//
// An ActionableError names the operation that failed, the resource involved
// and a list of suggestions. It may point at a catalog Issue, whose page is
// rendered with glamour when verbose diagnostics are enabled.
package issue
