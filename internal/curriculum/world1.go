// internal/curriculum/world1.go
package curriculum

import (
	"fmt"

	"rocketreading/internal/model"
)

// world1Letters is the teaching order of the first world.
var world1Letters = []string{"m", "a", "t", "s", "i", "p", "n", "o", "e", "r", "d", "h", "l"}

// letterSounds maps each World 1 letter to the sound a child is taught to say.
var letterSounds = map[string]string{
	"m": "/mmm/",
	"a": "/aaa/",
	"t": "/t/",
	"s": "/sss/",
	"i": "/iii/",
	"p": "/p/",
	"n": "/nnn/",
	"o": "/ooo/",
	"e": "/eee/",
	"r": "/rrr/",
	"d": "/d/",
	"h": "/hhh/",
	"l": "/lll/",
}

// LetterItemID is the stable id of a letter item.
func LetterItemID(letter string) string {
	return "letter_" + letter
}

// World returns the items of a built-in world in teaching order.
func World(n int) ([]model.Item, error) {
	switch n {
	case 1:
		return world1(), nil
	default:
		return nil, fmt.Errorf("%w: no built-in curriculum for world %d", model.ErrNotFound, n)
	}
}

func world1() []model.Item {
	items := make([]model.Item, 0, len(world1Letters))
	for _, l := range world1Letters {
		sound, _ := Sound(l)
		items = append(items, model.NewItem(
			LetterItemID(l),
			model.ItemTypeLetter,
			l,
			1,
			model.ItemMetadata{PhonicsCoverage: []string{l}, Sound: sound},
		))
	}
	return items
}

// Sound returns the taught sound for a letter, if it has one.
func Sound(letter string) (string, bool) {
	s, ok := letterSounds[letter]
	return s, ok
}

// IDs returns the ids of items, preserving order.
func IDs(items []model.Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
