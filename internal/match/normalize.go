package match

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"csv-adui-converter/internal/common"
	"csv-adui-converter/internal/form"
)

// labelKinds is the synonym table for component labels, keyed by NormalizeLabel output.
var labelKinds = map[string]form.FieldKind{
	"text":           form.KindText,
	"text field":     form.KindText,
	"quantity":       form.KindNumber,
	"quantity field": form.KindNumber,
	"numberfield":    form.KindNumber,
	"number field":   form.KindNumber,
	"select field":   form.KindSelect,
	"selectfield":    form.KindSelect,
	"tasklistfield":  form.KindTaskList,
}

// NormalizeLabel case-folds a label and collapses its whitespace.
func NormalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// LookupKind resolves a label through the synonym table.
// The second result is false when the label is not a known synonym.
func LookupKind(label string) (form.FieldKind, bool) {
	kind, ok := labelKinds[NormalizeLabel(label)]

	return kind, ok
}

// KindForLabel resolves a label to a field kind.
// Empty and unknown labels resolve to form.KindText.
func KindForLabel(label string) form.FieldKind {
	kind, ok := LookupKind(label)
	if !ok {
		return form.KindText
	}

	return kind
}

// Labels returns the known synonyms, sorted.
func Labels() []string {
	labels := make([]string, 0, len(labelKinds))
	for label := range labelKinds {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	return labels
}

// TitleFromPath derives a display title from a file path.
// The extension is dropped, a space is put before every capital letter,
// underscores and hyphens become spaces, and each word is capitalized.
// Examples:
//   - "ProjectPlan.csv" -> "Project Plan"
//   - "site_survey-v2.csv" -> "Site Survey V2"
func TitleFromPath(path string) string {
	stem := common.Stem(path)

	var spaced strings.Builder

	spaced.Grow(len(stem) * 2)

	for _, r := range stem {
		switch {
		case r >= 'A' && r <= 'Z':
			spaced.WriteRune(' ')
			spaced.WriteRune(r)
		case isSeparator(r):
			spaced.WriteRune(' ')
		default:
			spaced.WriteRune(r)
		}
	}

	words := strings.Fields(spaced.String())
	for i, w := range words {
		words[i] = capitalize(w)
	}

	return strings.Join(words, " ")
}

// Slug upper-cases s with full Unicode case mapping ("Straße" -> "STRASSE"),
// turns spaces into underscores and drops parentheses.
// Distinct inputs may share a slug; callers keep duplicates.
func Slug(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range cases.Upper(language.Und).String(s) {
		switch r {
		case '(', ')':
			continue
		case ' ':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// capitalize upper-cases the first rune of w and lower-cases the rest.
func capitalize(w string) string {
	runes := []rune(w)
	for i := range runes {
		if i == 0 {
			runes[i] = unicode.ToTitle(runes[i])

			continue
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
