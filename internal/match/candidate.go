package match

import (
	"sort"

	"csv-adui-converter/internal/form"
)

// Candidate is a known label considered as the intended spelling of an unknown one.
type Candidate struct {
	Label string
	Kind  form.FieldKind
	Score float64 // LabelSimilarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// DefaultSuggestThreshold is the minimum similarity for a suggestion.
const DefaultSuggestThreshold = 0.75

// RankLabels scores every known synonym against label.
// Returns candidates sorted by score (descending).
func RankLabels(label string) CandidateList {
	candidates := make(CandidateList, 0, len(labelKinds))

	for known, kind := range labelKinds {
		candidates = append(candidates, Candidate{
			Label: known,
			Kind:  kind,
			Score: LabelSimilarity(label, known),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// SuggestLabel returns the component name closest to an unrecognized label.
// It returns false for empty or already-known labels and when nothing is close enough.
func SuggestLabel(label string) (string, bool) {
	if NormalizeLabel(label) == "" {
		return "", false
	}

	if _, ok := LookupKind(label); ok {
		return "", false
	}

	best := RankLabels(label).Best()
	if best == nil || best.Score < DefaultSuggestThreshold {
		return "", false
	}

	return best.Kind.String(), true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by label for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Label < c[j].Label
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}
