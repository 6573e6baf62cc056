// internal/curriculum/loader_test.go
package curriculum

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rocketreading/internal/model"
)

const sampleYAML = `
items:
  - id: word_mat
    type: word
    content: mat
    world: 2
    phonics: [m, a, t]
  - id: tricky_the
    type: tricky_word
    content: the
    world: 2
    personalized: true
`

func TestLoadYAML(t *testing.T) {
	items, err := LoadYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "word_mat", items[0].ID)
	assert.Equal(t, model.ItemTypeWord, items[0].Type)
	assert.Equal(t, []string{"m", "a", "t"}, items[0].Metadata.Data().PhonicsCoverage)
	assert.Equal(t, model.ItemTypeTrickyWord, items[1].Type)
	assert.True(t, items[1].Metadata.Data().IsPersonalized)
}

func TestLoadYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown type", doc: "items:\n  - {id: x, type: picture, content: x, world: 1}\n"},
		{name: "missing id", doc: "items:\n  - {type: word, content: x, world: 1}\n"},
		{name: "unknown field", doc: "items:\n  - {id: x, type: word, content: x, world: 1, colour: red}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestLoadYAML_LetterSound(t *testing.T) {
	doc := `
items:
  - {id: letter_m, type: letter, content: m, world: 1}
  - {id: letter_z, type: letter, content: z, world: 3, sound: /zzz/}
  - {id: letter_q, type: letter, content: q, world: 3}
  - {id: word_map, type: word, content: map, world: 2}
`
	items, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "/mmm/", items[0].Metadata.Data().Sound)
	assert.Equal(t, "/zzz/", items[1].Metadata.Data().Sound)
	assert.Empty(t, items[2].Metadata.Data().Sound)
	assert.Empty(t, items[3].Metadata.Data().Sound)
}

func TestLoadYAML_Empty(t *testing.T) {
	items, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestLoadXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"ID", "Type", "Content", "World", "Phonics", "Personalized"},
		{"word_sat", "word", "sat", 2, "s, a, t", "false"},
		{"", "", "", "", "", ""},
		{"sentence_1", "sentence", "a cat sat", 3, "", "TRUE"},
	})

	items, err := LoadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "word_sat", items[0].ID)
	assert.Equal(t, 2, items[0].World)
	assert.Equal(t, []string{"s", "a", "t"}, items[0].Metadata.Data().PhonicsCoverage)
	assert.False(t, items[0].Metadata.Data().IsPersonalized)

	assert.Equal(t, model.ItemTypeSentence, items[1].Type)
	assert.True(t, items[1].Metadata.Data().IsPersonalized)
	assert.Empty(t, items[1].Metadata.Data().PhonicsCoverage)
}

func TestLoadXLSX_MissingColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "type", "content"},
		{"word_sat", "word", "sat"},
	})
	_, err := LoadXLSX(buf)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestLoadXLSX_BadWorld(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "type", "content", "world"},
		{"word_sat", "word", "sat", "two"},
	})
	_, err := LoadXLSX(buf)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "world2.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o600))
	items, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	txtPath := filepath.Join(dir, "world2.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("m a t"), 0o600))
	_, err = LoadFile(txtPath)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
