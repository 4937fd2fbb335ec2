package source

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := `Seq,Field Name,Component,Input
1,Customer,Text,
2,Qty,Quantity,
3,Stage,Select Field,"Open,Closed"
4,Plan,TaskListField,"Design,Build,Ship"
`

	rows, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, "1", Value(rows[0].Seq, ""))
	assert.Equal(t, "Customer", Value(rows[0].Name, ""))
	assert.Equal(t, "Text", Value(rows[0].Component, ""))
	require.NotNil(t, rows[0].Input)
	assert.Empty(t, *rows[0].Input)

	assert.Equal(t, "Open,Closed", Value(rows[2].Input, ""))
	assert.Equal(t, "TaskListField", Value(rows[3].Component, ""))
	assert.Equal(t, 4, rows[3].Line)
}

func TestParseHeaderLookup(t *testing.T) {
	data := "\ufeffInput , Component,Field Name ,Seq,Notes\n" +
		"\"A\nB\",Select Field,Options,7,extra\n"

	rows, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "7", Value(rows[0].Seq, ""))
	assert.Equal(t, "Options", Value(rows[0].Name, ""))
	assert.Equal(t, "Select Field", Value(rows[0].Component, ""))
	assert.Equal(t, "A\nB", Value(rows[0].Input, ""))
}

func TestParseDuplicateHeaderLastWins(t *testing.T) {
	data := "Field Name,Component,Field Name\nFirst,Text,Second\nOnly\n"

	rows, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Second", Value(rows[0].Name, ""))
	assert.Nil(t, rows[1].Name)
}

func TestParseMissingColumnsAndShortRecords(t *testing.T) {
	data := "Field Name,Component,Input\nAlpha\nBeta,Quantity\n"

	rows, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Nil(t, rows[0].Seq)
	assert.Nil(t, rows[0].Component)
	assert.Nil(t, rows[0].Input)
	assert.Equal(t, "Beta", Value(rows[1].Name, ""))
	assert.Equal(t, "Quantity", Value(rows[1].Component, ""))
	assert.Equal(t, "Text", Value(rows[0].Component, "Text"))
}

func TestParseSkipsBlankLines(t *testing.T) {
	data := "Seq,Field Name\n\n1,A\n\n\n2,B\n"

	rows, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, 2, rows[1].Line)
}

func TestParseEmpty(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	rows, err = Parse(strings.NewReader("Seq,Field Name,Component,Input\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseUnicode(t *testing.T) {
	data := "Field Name,Component,Input\nÉtat ✅,Select Field,\"Prêt 🚀\nBloqué ⚠️\"\n"

	rows, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "État ✅", Value(rows[0].Name, ""))
	assert.Equal(t, "Prêt 🚀\nBloqué ⚠️", Value(rows[0].Input, ""))
}

func TestRowHasName(t *testing.T) {
	blank := "  \t"
	name := " Qty "

	assert.False(t, Row{}.HasName())
	assert.False(t, Row{Name: &blank}.HasName())
	assert.True(t, Row{Name: &name}.HasName())
}

func TestLoadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/in/form.csv", []byte("Field Name\nA\nB\n"), 0o644))

	rows, err := LoadFile(fsys, "/in/form.csv")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(afero.NewMemMapFs(), "/missing.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "/missing.csv")
}
