package build

import (
	"strconv"
	"strings"

	"csv-adui-converter/internal/form"
)

// Input is the part of a source row the field builder consumes.
type Input struct {
	// Name is the display name of the field, used as given.
	Name string
	// Raw is the free-text input column; its meaning depends on the kind.
	Raw string
}

// FieldID returns the identifier of the field of kind at sequence number seq,
// e.g. "SELECT_FIELD_3" or "TASKLIST_FIELD_4".
func FieldID(kind form.FieldKind, seq int) string {
	return FieldIDPrefix(kind) + strconv.Itoa(seq)
}

// FieldIDPrefix returns the part of a field identifier before the sequence number.
func FieldIDPrefix(kind form.FieldKind) string {
	return strings.ReplaceAll(strings.ToUpper(kind.String()), "FIELD", "") + "_FIELD_"
}

// ReferenceID returns the identifier of a select field's option list.
func ReferenceID(fieldID string) string {
	return fieldID + "_REF"
}

// Field builds the field record of one row. It never fails: every
// kind has a defined result for every input, including empty input.
func Field(in Input, kind form.FieldKind, seq int) form.Field {
	field := baseField(in.Name, kind, seq)

	switch kind {
	case form.KindText:
		// base record only
	case form.KindNumber:
		applyNumber(&field)
	case form.KindSelect:
		applySelect(&field, in.Raw)
	case form.KindTaskList:
		applyTaskList(&field, in.Raw)
	}

	return field
}

func baseField(name string, kind form.FieldKind, seq int) form.Field {
	return form.Field{
		FieldID:     FieldID(kind, seq),
		Name:        name,
		Component:   kind,
		Sequence:    seq * form.SequenceStep,
		Description: "",
		Help:        "",
		Validation: form.Validation{
			MaxLength: form.Ptr(0),
			MinLength: form.Ptr(0),
		},
		UI: form.UI{
			HelpText:    "",
			Placeholder: "",
		},
	}
}

// applyNumber replaces the base validation rather than extending it.
func applyNumber(field *form.Field) {
	field.Validation = form.Validation{
		Required: form.Ptr(true),
		Min:      form.Ptr(form.NumberMin),
		Max:      form.Ptr(form.NumberMax),
	}
	field.UI.HelpText = "Enter numeric value for " + strings.ToLower(field.Name)
}

// applySelect attaches options only when at least one was parsed.
func applySelect(field *form.Field, raw string) {
	values := ParseOptions(raw)
	if len(values) == 0 {
		return
	}

	field.Reference = &form.Reference{
		ID:     ReferenceID(field.FieldID),
		Values: values,
	}
	field.Validation.Required = form.Ptr(true)
}

// applyTaskList always attaches a payload, possibly without tasks.
func applyTaskList(field *form.Field, raw string) {
	graph := ParseTasks(raw)

	field.UI.AllowZoomGraph = form.Ptr(true)
	field.UI.ShowIcons = form.Ptr(false)
	field.UI.StatusColors = form.Embed(form.DefaultStatusColors())
	field.UI.PriorityColors = form.Embed(form.DefaultPriorityColors())
	field.Data = graph.Data()
}

// splitTokens splits s on sep, trims every token and drops empty ones.
func splitTokens(s, sep string) []string {
	parts := strings.Split(s, sep)
	tokens := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		tokens = append(tokens, p)
	}

	return tokens
}
