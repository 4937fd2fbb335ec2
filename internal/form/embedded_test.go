package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type holder struct {
	Colors *Embedded[StatusColors]   `json:"colors,omitempty" yaml:"colors,omitempty"`
	Rels   Embedded[[]Relationship] `json:"rels"             yaml:"rels"`
}

func TestEmbeddedJSON(t *testing.T) {
	h := holder{
		Colors: Embed(DefaultStatusColors()),
		Rels: Embedded[[]Relationship]{Value: []Relationship{
			{From: "TASK001", To: "TASK002", Type: RelationshipType, Description: "A & B to <C>"},
		}},
	}

	data, err := json.Marshal(h)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	colors, ok := raw["colors"].(string)
	require.True(t, ok, "colors must be a JSON string")
	assert.Equal(t, `{"completed":"#48BB78","in_progress":"#ED8936","blocked":"#F56565","not_started":"#90CDF4"}`, colors)

	rels, ok := raw["rels"].(string)
	require.True(t, ok, "rels must be a JSON string")
	assert.Equal(t, `[{"from":"TASK001","to":"TASK002","type":"finish_to_start","lag":0,"description":"A & B to <C>"}]`, rels)

	var back holder
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, h, back)
}

func TestEmbeddedEmptyList(t *testing.T) {
	text, err := Embedded[[]Relationship]{Value: []Relationship{}}.Text()
	require.NoError(t, err)
	assert.Equal(t, "[]", text)
}

func TestEmbeddedRejectsNestedObject(t *testing.T) {
	var h holder
	err := json.Unmarshal([]byte(`{"rels":[{"from":"TASK001"}]}`), &h)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{"rels":"not json"}`), &h)
	require.Error(t, err)
}

func TestEmbeddedYAML(t *testing.T) {
	h := holder{
		Colors: Embed(DefaultStatusColors()),
		Rels:   Embedded[[]Relationship]{Value: []Relationship{{From: "TASK001", To: "TASK002"}}},
	}

	data, err := yaml.Marshal(h)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.IsType(t, "", raw["colors"])
	assert.IsType(t, "", raw["rels"])

	var back holder
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, h, back)
}

func TestPaletteColor(t *testing.T) {
	assert.Equal(t, "#4CAF50", PaletteColor(0))
	assert.Equal(t, "#FF5722", PaletteColor(7))
	assert.Equal(t, "#4CAF50", PaletteColor(8))
	assert.Len(t, Palette, 8)
}

func TestDocumentFields(t *testing.T) {
	var nilDoc *Document
	assert.Nil(t, nilDoc.MainTab())
	assert.Nil(t, nilDoc.Fields())

	doc := &Document{Tabs: []Tab{{Fields: []Field{{FieldID: "TEXT_FIELD_1"}}}}}
	require.NotNil(t, doc.MainTab())
	assert.Len(t, doc.Fields(), 1)
}
