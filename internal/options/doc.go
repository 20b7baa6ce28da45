// SPDX-License-Identifier: MPL-2.0

// Package options turns a raw command-line invocation into the canonical
// rendering configuration consumed by the listing pipeline.
//
// The flow is one-way: an immutable Invocation (counted toggles plus raw
// option text) is decoded through total, alias-tolerant enum decoders and
// folded by Resolve into an immutable Config. Override order between
// conflicting flags lives in ordered rule tables (rules.go).
//
// Nothing in this package performs I/O. Boundary validation of strictly
// closed values (numeric limits, color mode, icons, time style) is exposed
// through Invocation.Validate so the CLI can reject bad input before Resolve
// ever runs.
package options
