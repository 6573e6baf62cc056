// internal/curriculum/loader.go
package curriculum

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"rocketreading/internal/model"
)

type fileItem struct {
	ID           string   `yaml:"id"`
	Type         string   `yaml:"type"`
	Content      string   `yaml:"content"`
	World        int      `yaml:"world"`
	Phonics      []string `yaml:"phonics"`
	Sound        string   `yaml:"sound"`
	Personalized bool     `yaml:"personalized"`
}

type fileCurriculum struct {
	Items []fileItem `yaml:"items"`
}

// LoadFile reads a curriculum from a .yaml, .yml or .xlsx file.
func LoadFile(path string) ([]model.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("curriculum: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".xlsx":
		return LoadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: unsupported curriculum file %q", model.ErrInvalidInput, path)
	}
}

// LoadYAML reads a document of the form
//
//	items:
//	  - {id: word_mat, type: word, content: mat, world: 2, phonics: [m, a, t]}
func LoadYAML(r io.Reader) ([]model.Item, error) {
	var doc fileCurriculum
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("%w: curriculum yaml: %v", model.ErrInvalidInput, err)
	}

	items := make([]model.Item, 0, len(doc.Items))
	for i, fi := range doc.Items {
		it, err := fi.toItem()
		if err != nil {
			return nil, fmt.Errorf("curriculum yaml item %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

var requiredColumns = []string{"id", "type", "content", "world"}

// LoadXLSX reads the first sheet of a workbook. The first row is a header
// naming the columns id, type, content, world, phonics, sound and personalized in
// any order; phonics is comma separated.
func LoadXLSX(r io.Reader) ([]model.Item, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: curriculum xlsx: %v", model.ErrInvalidInput, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return []model.Item{}, nil
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("curriculum xlsx: read rows: %w", err)
	}
	if len(rows) == 0 {
		return []model.Item{}, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: curriculum xlsx: missing column %q", model.ErrInvalidInput, name)
		}
	}
	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	items := make([]model.Item, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if cell(row, "id") == "" {
			continue
		}
		world, err := strconv.Atoi(cell(row, "world"))
		if err != nil {
			return nil, fmt.Errorf("%w: curriculum xlsx row %d: world %q is not a number", model.ErrInvalidInput, n+2, cell(row, "world"))
		}
		fi := fileItem{
			ID:      cell(row, "id"),
			Type:    cell(row, "type"),
			Content: cell(row, "content"),
			World:   world,
			Sound:   cell(row, "sound"),
		}
		if p := cell(row, "phonics"); p != "" {
			for _, ph := range strings.Split(p, ",") {
				if ph = strings.TrimSpace(ph); ph != "" {
					fi.Phonics = append(fi.Phonics, ph)
				}
			}
		}
		if p := cell(row, "personalized"); p != "" {
			fi.Personalized, err = strconv.ParseBool(p)
			if err != nil {
				return nil, fmt.Errorf("%w: curriculum xlsx row %d: personalized %q is not a boolean", model.ErrInvalidInput, n+2, p)
			}
		}
		it, err := fi.toItem()
		if err != nil {
			return nil, fmt.Errorf("curriculum xlsx row %d: %w", n+2, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (fi fileItem) toItem() (model.Item, error) {
	typ := model.ItemType(strings.ToLower(fi.Type))
	switch {
	case fi.ID == "":
		return model.Item{}, fmt.Errorf("%w: id is required", model.ErrInvalidInput)
	case !typ.IsValid():
		return model.Item{}, fmt.Errorf("%w: unknown item type %q", model.ErrInvalidInput, fi.Type)
	case fi.Content == "":
		return model.Item{}, fmt.Errorf("%w: content is required", model.ErrInvalidInput)
	}
	// Letters without an explicit sound get the built-in one.
	sound := fi.Sound
	if sound == "" && typ == model.ItemTypeLetter {
		sound, _ = Sound(strings.ToLower(fi.Content))
	}
	return model.NewItem(fi.ID, typ, fi.Content, fi.World, model.ItemMetadata{
		PhonicsCoverage: fi.Phonics,
		Sound:           sound,
		IsPersonalized:  fi.Personalized,
	}), nil
}
