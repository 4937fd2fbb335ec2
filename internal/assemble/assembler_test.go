package assemble

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"csv-adui-converter/internal/diagnostic"
	"csv-adui-converter/internal/form"
	"csv-adui-converter/internal/source"
)

func str(s string) *string { return &s }

func row(seq, name, component, input string) source.Row {
	return source.Row{Seq: str(seq), Name: str(name), Component: str(component), Input: str(input)}
}

var fixedNow = func() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.FixedZone("X", 3600))
}

func TestAssembleEndToEnd(t *testing.T) {
	rows := []source.Row{
		row("1", "Name", "Text", ""),
		row("2", "Qty", "Quantity", ""),
		row("3", "Stage", "Select Field", "Open,Closed"),
		row("4", "Plan", "TaskListField", "Design,Build,Ship"),
	}

	doc, diags := Assemble(rows, Options{SourcePath: "/tmp/ProjectPlan.csv", Now: fixedNow})
	require.NotNil(t, doc)
	assert.Zero(t, diags.Count())

	fields := doc.Fields()
	if !assert.Len(t, fields, 4) {
		t.Log(spew.Sdump(doc))
		t.FailNow()
	}

	assert.Equal(t, []string{"TEXT_FIELD_1", "NUMBER_FIELD_2", "SELECT_FIELD_3", "TASKLIST_FIELD_4"},
		[]string{fields[0].FieldID, fields[1].FieldID, fields[2].FieldID, fields[3].FieldID})
	assert.Equal(t, []int{10, 20, 30, 40},
		[]int{fields[0].Sequence, fields[1].Sequence, fields[2].Sequence, fields[3].Sequence})

	require.NotNil(t, fields[2].Reference)
	assert.Len(t, fields[2].Reference.Values, 2)

	require.NotNil(t, fields[3].Data)
	assert.Len(t, fields[3].Data.Tasks, 3)
	assert.Len(t, fields[3].Data.Dependencies, 2)
	assert.Len(t, fields[3].Data.Relationships.Value, 2)

	assert.Equal(t, "PROJECT_PLAN", doc.WindowID)
	assert.Equal(t, "Project Plan", doc.Name)
	assert.Equal(t, "Form generated from ProjectPlan.csv", doc.Description)
	assert.Equal(t, "Transaction", doc.WindowType)

	tab := doc.MainTab()
	require.NotNil(t, tab)
	assert.Equal(t, "MAIN_TAB", tab.TabID)
	assert.True(t, tab.IsSingleRow)
	assert.False(t, tab.IsReadOnly)
	assert.Equal(t, 10, tab.Sequence)

	assert.Equal(t, form.Metadata{
		Version:      "1.1",
		Source:       "csv-converter-enhanced-v1.1",
		LastModified: "2026-03-14T08:26:53.589793Z",
		CreatedBy:    "CSV to ADUI Converter Enhanced",
		TemplateType: "csv-import-enhanced",
		Description:  "Auto-generated from ProjectPlan.csv with builder compatibility",
		OriginalFile: "/tmp/ProjectPlan.csv",
	}, doc.Metadata)
}

func TestAssembleSkipsBlankNames(t *testing.T) {
	rows := []source.Row{
		row("1", "A", "Text", ""),
		row("2", "", "Text", ""),
		row("3", "   ", "Quantity", ""),
		{Seq: str("4")},
		row("5", "E", "Quantity", ""),
	}

	doc, diags := Assemble(rows, Options{Title: "T", Now: fixedNow})

	named := 0
	for _, r := range rows {
		if r.HasName() {
			named++
		}
	}

	assert.Len(t, doc.Fields(), named)
	assert.Equal(t, "NUMBER_FIELD_5", doc.Fields()[1].FieldID)
	assert.Len(t, diags.WithCode(diagnostic.CodeRowSkipped), 3)
	assert.False(t, diags.HasErrors())
}

func TestAssembleMissingNameColumn(t *testing.T) {
	rows := []source.Row{
		{Seq: str("1"), Component: str("Text")},
		{Seq: str("2"), Component: str("Select Field"), Input: str("A,B")},
	}

	doc, diags := Assemble(rows, Options{Title: "T", Now: fixedNow})
	assert.Empty(t, doc.Fields())

	missing := diags.WithCode(diagnostic.CodeMissingNameColumn)
	require.Len(t, missing, 1)
	assert.Equal(t, diagnostic.SeverityWarning, missing[0].Severity)
	assert.Contains(t, missing[0].Message, source.ColumnName)
	assert.Len(t, diags.WithCode(diagnostic.CodeRowSkipped), 2)

	_, diags = Assemble([]source.Row{row("1", "", "Text", "")}, Options{Title: "T", Now: fixedNow})
	assert.Empty(t, diags.WithCode(diagnostic.CodeMissingNameColumn))

	_, diags = Assemble(nil, Options{Title: "T", Now: fixedNow})
	assert.Empty(t, diags.WithCode(diagnostic.CodeMissingNameColumn))
}

func TestAssembleSequenceFallback(t *testing.T) {
	rows := []source.Row{
		{Name: str("NoSeqColumn")},
		row("", "EmptySeq", "Text", ""),
		row("7.9", "Fraction", "Text", ""),
		row("abc", "Garbage", "Text", ""),
		row(" 12 ", "Padded", "Text", ""),
		row("-2", "Negative", "Text", ""),
	}

	doc, diags := Assemble(rows, Options{Title: "Seq", Now: fixedNow})

	ids := make([]string, 0, len(doc.Fields()))
	for _, f := range doc.Fields() {
		ids = append(ids, f.FieldID)
	}

	assert.Equal(t, []string{
		"TEXT_FIELD_1",
		"TEXT_FIELD_2",
		"TEXT_FIELD_7",
		"TEXT_FIELD_4",
		"TEXT_FIELD_12",
		"TEXT_FIELD_-2",
	}, ids)

	fallbacks := diags.WithCode(diagnostic.CodeSeqFallback)
	require.Len(t, fallbacks, 1)
	assert.Equal(t, 4, fallbacks[0].Line)
}

func TestResolveSeq(t *testing.T) {
	tests := []struct {
		raw      *string
		position int
		expected int
		ok       bool
	}{
		{nil, 3, 3, true},
		{str(""), 3, 3, true},
		{str("5"), 3, 5, true},
		{str("5.0"), 3, 5, true},
		{str("1e1"), 3, 10, true},
		{str("-0.5"), 3, 0, true},
		{str("x"), 3, 3, false},
		{str(" "), 3, 3, false},
		{str("NaN"), 3, 3, false},
		{str("inf"), 3, 3, false},
	}

	for _, tt := range tests {
		got, ok := ResolveSeq(tt.raw, tt.position)
		assert.Equal(t, tt.expected, got)
		assert.Equal(t, tt.ok, ok)
	}
}

func TestAssembleComponentFallback(t *testing.T) {
	rows := []source.Row{
		{Seq: str("1"), Name: str("Missing Column")},
		row("2", "Typo", "Selct Field", "A,B"),
		row("3", "Unknown", "Signature", ""),
		row("4", "Blank", "", ""),
	}

	doc, diags := Assemble(rows, Options{Title: "T", Now: fixedNow})

	for _, f := range doc.Fields() {
		assert.Equal(t, form.KindText, f.Component, f.Name)
		assert.Nil(t, f.Reference)
	}

	unknown := diags.WithCode(diagnostic.CodeUnknownComponent)
	require.Len(t, unknown, 2)
	assert.Equal(t, []string{"SelectField"}, unknown[0].Suggestions)
	assert.Equal(t, "Typo", unknown[0].Subject)
	assert.Empty(t, unknown[1].Suggestions)
}

func TestAssembleSelectNotes(t *testing.T) {
	rows := []source.Row{
		row("1", "Empty", "Select Field", "  "),
		row("2", "Dupes", "SelectField", "Yes, YES, No"),
	}

	doc, diags := Assemble(rows, Options{Title: "T", Now: fixedNow})
	require.Len(t, doc.Fields(), 2)

	assert.Nil(t, doc.Fields()[0].Reference)
	assert.False(t, doc.Fields()[0].Validation.IsRequired())
	assert.Len(t, doc.Fields()[1].Reference.Values, 3)

	require.Len(t, diags.WithCode(diagnostic.CodeEmptyOptions), 1)
	dups := diags.WithCode(diagnostic.CodeDuplicateOptionKey)
	require.Len(t, dups, 1)
	assert.Equal(t, diagnostic.SeverityWarning, dups[0].Severity)
	assert.Equal(t, "SELECT_FIELD_2", dups[0].Subject)
}

func TestAssembleDuplicateFieldIDs(t *testing.T) {
	rows := []source.Row{
		row("1", "A", "Text", ""),
		row("1", "B", "Text", ""),
		row("1", "C", "Quantity", ""),
	}

	doc, diags := Assemble(rows, Options{Title: "T", Now: fixedNow})
	assert.Len(t, doc.Fields(), 3)

	dups := diags.WithCode(diagnostic.CodeDuplicateFieldID)
	require.Len(t, dups, 1)
	assert.Equal(t, "TEXT_FIELD_1", dups[0].Subject)
	assert.Equal(t, 2, dups[0].Line)
}

func TestAssembleTitle(t *testing.T) {
	doc, _ := Assemble(nil, Options{Title: "Site Survey (Draft)", SourcePath: "x.csv", Now: fixedNow})
	assert.Equal(t, "Site Survey (Draft)", doc.Name)
	assert.Equal(t, "SITE_SURVEY_DRAFT", doc.WindowID)
	assert.Equal(t, "Form generated from x.csv", doc.Description)

	doc, _ = Assemble(nil, Options{SourcePath: "forms/daily_inspection-log.csv", Now: fixedNow})
	assert.Equal(t, "Daily Inspection Log", doc.Name)
	assert.Equal(t, "DAILY_INSPECTION_LOG", doc.WindowID)
}

func TestAssembleEmptySerializesFieldsArray(t *testing.T) {
	doc, _ := Assemble(nil, Options{Title: "Empty", Now: fixedNow})

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "[]", gjson.GetBytes(data, "tabs.0.fields").Raw)
	assert.Equal(t, int64(1), gjson.GetBytes(data, "tabs.#").Int())
}

func TestAssembleDefaultsClock(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	doc, _ := Assemble(nil, Options{Title: "Now"})

	ts, err := time.Parse(TimestampLayout, doc.Metadata.LastModified)
	require.NoError(t, err)
	assert.True(t, ts.After(before))
}
