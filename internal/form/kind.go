package form

import "fmt"

//go:generate go tool stringer -type=FieldKind -linecomment -output=kind_string.go

// FieldKind is the component type of a form field.
// The zero value is KindText, the fallback for unrecognized labels.
type FieldKind int

const (
	KindText     FieldKind = iota // TextField
	KindNumber                    // NumberField
	KindSelect                    // SelectField
	KindTaskList                  // TaskListField

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Kinds returns every field kind in declaration order.
func Kinds() []FieldKind {
	kinds := make([]FieldKind, 0, KindTotal)
	for i := range KindTotal {
		kinds = append(kinds, FieldKind(i))
	}

	return kinds
}

// IsValid reports whether k is one of the declared kinds.
func (k FieldKind) IsValid() bool {
	return k >= 0 && int(k) < KindTotal
}

// MarshalText encodes the kind as its component name.
func (k FieldKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid field kind %d", int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes a component name such as "SelectField".
func (k *FieldKind) UnmarshalText(text []byte) error {
	for _, kind := range Kinds() {
		if kind.String() == string(text) {
			*k = kind

			return nil
		}
	}

	return fmt.Errorf("unknown component %q", string(text))
}
