package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankLabels(t *testing.T) {
	candidates := RankLabels("Selct Field")
	require.Len(t, candidates, len(labelKinds))

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, "select field", best.Label)
	assert.Greater(t, best.Score, DefaultSuggestThreshold)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestSuggestLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"typo", "Selct Field", "SelectField", true},
		{"separator spelling", "Task-List-Field", "TaskListField", true},
		{"transposed letters", "Numbre Field", "NumberField", true},
		{"known label", "Select Field", "", false},
		{"empty", "  ", "", false},
		{"unrelated", "Signature", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SuggestLabel(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCandidateListBestEmpty(t *testing.T) {
	var c CandidateList
	assert.Nil(t, c.Best())
}
