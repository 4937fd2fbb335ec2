package source

import "strings"

// Column names of the source header.
const (
	ColumnSeq       = "Seq"
	ColumnName      = "Field Name"
	ColumnComponent = "Component"
	ColumnInput     = "Input"
)

// Row is one data record. Nil fields mean the column is absent for this record.
type Row struct {
	// Line is the 1-based position of the record among data records.
	Line      int
	Seq       *string
	Name      *string
	Component *string
	Input     *string
}

// HasName reports whether the row carries a non-blank field name.
func (r Row) HasName() bool {
	return r.Name != nil && strings.TrimSpace(*r.Name) != ""
}

// Value returns the value of s, or def when s is nil.
func Value(s *string, def string) string {
	if s == nil {
		return def
	}

	return *s
}
