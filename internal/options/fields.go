// SPDX-License-Identifier: MPL-2.0

package options

import "strings"

// Long-format columns.
const (
	FieldPermissions Field = 1 << iota
	FieldFilesize
	FieldUser
	FieldTime
	FieldGroup
	FieldInode
	FieldLinks
	FieldBlocks
	FieldOctal
	FieldSecurityContext
	FieldExtended
	FieldFileFlags
	FieldGit
)

// defaultFields are shown in long format unless suppressed.
const defaultFields = FieldSet(FieldPermissions | FieldFilesize | FieldUser | FieldTime)

type (
	// Field is a single long-format column.
	Field uint16

	// FieldSet is the set of columns the long format includes.
	FieldSet uint16
)

var fieldNames = []struct {
	field Field
	name  string
}{
	{FieldPermissions, "permissions"},
	{FieldFilesize, "filesize"},
	{FieldUser, "user"},
	{FieldTime, "time"},
	{FieldGroup, "group"},
	{FieldInode, "inode"},
	{FieldLinks, "links"},
	{FieldBlocks, "blocks"},
	{FieldOctal, "octal"},
	{FieldSecurityContext, "context"},
	{FieldExtended, "extended"},
	{FieldFileFlags, "flags"},
	{FieldGit, "git"},
}

// String returns the column name.
func (f Field) String() string {
	for _, fn := range fieldNames {
		if fn.field == f {
			return fn.name
		}
	}
	return "unknown"
}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool { return s&FieldSet(f) != 0 }

func (s FieldSet) with(f Field) FieldSet    { return s | FieldSet(f) }
func (s FieldSet) without(f Field) FieldSet { return s &^ FieldSet(f) }

// Fields returns the members of the set in column order.
func (s FieldSet) Fields() []Field {
	var out []Field
	for _, fn := range fieldNames {
		if s.Has(fn.field) {
			out = append(out, fn.field)
		}
	}
	return out
}

// String returns the comma-separated column names, or "none".
func (s FieldSet) String() string {
	fields := s.Fields()
	if len(fields) == 0 {
		return "none"
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}
