package assemble

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"csv-adui-converter/internal/build"
	"csv-adui-converter/internal/diagnostic"
	"csv-adui-converter/internal/form"
	"csv-adui-converter/internal/match"
	"csv-adui-converter/internal/source"
)

// TimestampLayout is the layout of metadata.lastModified.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// defaultComponent is used for rows without a Component column.
const defaultComponent = "Text"

// Options control document-level values.
type Options struct {
	// Title overrides the title derived from SourcePath when non-empty.
	Title string
	// SourcePath is the path of the row source, recorded in the metadata.
	SourcePath string
	// Now returns the generation time. Defaults to time.Now.
	Now func() time.Time
}

// Assemble builds the document for rows.
func Assemble(rows []source.Row, opts Options) (*form.Document, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	title := ResolveTitle(opts)
	fields := make([]form.Field, 0, len(rows))
	ids := make(map[string]int, len(rows))

	for i, row := range rows {
		position := i + 1

		seq, ok := ResolveSeq(row.Seq, position)
		if !ok {
			diags.AddInfo(diagnostic.CodeSeqFallback,
				fmt.Sprintf("sequence %q is not a number, using position %d", *row.Seq, position),
				position, "")
		}

		if !row.HasName() {
			diags.AddInfo(diagnostic.CodeRowSkipped, "blank field name", position, "")

			continue
		}

		field := buildField(row, seq, position, &diags)

		if first, dup := ids[field.FieldID]; dup {
			diags.AddWarning(diagnostic.CodeDuplicateFieldID,
				fmt.Sprintf("field id already used by row %d", first),
				position, field.FieldID)
		} else {
			ids[field.FieldID] = position
		}

		fields = append(fields, field)
	}

	if len(rows) > 0 && !anyNameCell(rows) {
		diags.AddWarning(diagnostic.CodeMissingNameColumn,
			fmt.Sprintf("no row has a %q cell, every row was skipped", source.ColumnName),
			0, "")
	}

	return newDocument(title, opts, fields), diags
}

// anyNameCell reports whether some row carries the name column at all.
func anyNameCell(rows []source.Row) bool {
	for _, row := range rows {
		if row.Name != nil {
			return true
		}
	}

	return false
}

func buildField(row source.Row, seq, position int, diags *diagnostic.Diagnostics) form.Field {
	name := source.Value(row.Name, "")
	label := source.Value(row.Component, defaultComponent)

	kind, known := match.LookupKind(label)
	if !known && match.NormalizeLabel(label) != "" {
		diag := diagnostic.Diagnostic{
			Severity: diagnostic.SeverityInfo,
			Code:     diagnostic.CodeUnknownComponent,
			Message:  fmt.Sprintf("component %q treated as %s", label, form.KindText),
			Line:     position,
			Subject:  name,
		}

		if suggestion, ok := match.SuggestLabel(label); ok {
			diag.Suggestions = []string{suggestion}
		}

		diags.Add(diag)
	}

	field := build.Field(build.Input{Name: name, Raw: source.Value(row.Input, "")}, kind, seq)

	if field.Component == form.KindSelect {
		if field.Reference == nil {
			diags.AddInfo(diagnostic.CodeEmptyOptions, "select field has no options", position, field.FieldID)
		} else {
			for _, key := range build.DuplicateKeys(field.Reference.Values) {
				diags.AddWarning(diagnostic.CodeDuplicateOptionKey,
					fmt.Sprintf("option key %s occurs more than once", key),
					position, field.FieldID)
			}
		}
	}

	return field
}

func newDocument(title string, opts Options, fields []form.Field) *form.Document {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	fileName := ""
	if opts.SourcePath != "" {
		fileName = filepath.Base(opts.SourcePath)
	}

	return &form.Document{
		WindowID:    match.Slug(title),
		Name:        title,
		Description: "Form generated from " + fileName,
		WindowType:  form.WindowType,
		Tabs: []form.Tab{
			{
				TabID:       form.MainTabID,
				Name:        form.MainTabName,
				Description: form.MainTabDesc,
				Sequence:    form.MainTabSequence,
				TabLevel:    0,
				IsReadOnly:  false,
				IsSingleRow: true,
				Fields:      fields,
			},
		},
		Metadata: form.Metadata{
			Version:      form.FormatVersion,
			Source:       form.SourceTag,
			LastModified: now().UTC().Format(TimestampLayout),
			CreatedBy:    form.CreatedBy,
			TemplateType: form.TemplateType,
			Description:  "Auto-generated from " + fileName + " with builder compatibility",
			OriginalFile: opts.SourcePath,
		},
	}
}

// ResolveTitle returns the override title or the one derived from the source path.
func ResolveTitle(opts Options) string {
	if opts.Title != "" {
		return opts.Title
	}

	return match.TitleFromPath(opts.SourcePath)
}

// ResolveSeq returns the sequence number of a row at 1-based position.
// Numeric values are truncated toward zero. The second result is false when
// raw was present but not a number in int range and position was used instead.
func ResolveSeq(raw *string, position int) (int, bool) {
	if raw == nil || *raw == "" {
		return position, true
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return position, false
	}

	return int(f), true
}
