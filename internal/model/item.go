// internal/model/item.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// ItemType is the kind of curriculum content an item carries.
type ItemType string

const (
	ItemTypeLetter     ItemType = "letter"
	ItemTypeWord       ItemType = "word"
	ItemTypeSentence   ItemType = "sentence"
	ItemTypeTrickyWord ItemType = "tricky_word"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeLetter, ItemTypeWord, ItemTypeSentence, ItemTypeTrickyWord:
		return true
	}
	return false
}

// ItemMetadata holds optional phonics tags for an item. Sound is the sound a
// child is taught to say for a letter item.
type ItemMetadata struct {
	PhonicsCoverage []string `json:"phonics_coverage,omitempty"`
	Sound           string   `json:"sound,omitempty"`
	IsPersonalized  bool     `json:"is_personalized,omitempty"`
}

// Item is static curriculum content. It is shared by every profile.
type Item struct {
	ID        string                           `gorm:"type:varchar(64);primaryKey" json:"id" validate:"required,max=64"`
	Type      ItemType                         `gorm:"type:varchar(32);not null" json:"type" validate:"required,oneof=letter word sentence tricky_word"`
	Content   string                           `gorm:"not null" json:"content" validate:"required"`
	World     int                              `gorm:"not null;index" json:"world" validate:"gte=0"`
	Metadata  datatypes.JSONType[ItemMetadata] `json:"metadata"`
	CreatedAt time.Time                        `json:"-"`
	UpdatedAt time.Time                        `json:"-"`
}

func (Item) TableName() string {
	return "items"
}

// NewItem builds an item with its metadata wrapped for storage.
func NewItem(id string, typ ItemType, content string, world int, meta ItemMetadata) Item {
	return Item{
		ID:       id,
		Type:     typ,
		Content:  content,
		World:    world,
		Metadata: datatypes.NewJSONType(meta),
	}
}
