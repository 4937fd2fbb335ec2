package build

import (
	"strings"

	"csv-adui-converter/internal/form"
	"csv-adui-converter/internal/match"
)

// ParseOptions parses the input column of a select field into option values.
// Colors are assigned from form.Palette by position. Keys are not
// deduplicated; "Yes" and "YES" both produce key "YES".
func ParseOptions(raw string) []form.ReferenceValue {
	sep := ","
	if strings.Contains(raw, "\n") {
		sep = "\n"
	}

	tokens := splitTokens(raw, sep)
	values := make([]form.ReferenceValue, 0, len(tokens))

	for i, token := range tokens {
		values = append(values, form.ReferenceValue{
			Key:     match.Slug(token),
			Display: token,
			Color:   form.PaletteColor(i),
		})
	}

	return values
}

// DuplicateKeys returns the option keys that occur more than once, in first-seen order.
func DuplicateKeys(values []form.ReferenceValue) []string {
	seen := make(map[string]int, len(values))

	var dups []string

	for _, v := range values {
		seen[v.Key]++
		if seen[v.Key] == 2 {
			dups = append(dups, v.Key)
		}
	}

	return dups
}
