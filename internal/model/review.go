// internal/model/review.go
package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Rating is the grade given to one practice attempt.
type Rating string

const (
	RatingCorrect    Rating = "correct"
	RatingNeededHelp Rating = "needed_help"
	RatingIncorrect  Rating = "incorrect"
)

func (r Rating) IsValid() bool {
	switch r {
	case RatingCorrect, RatingNeededHelp, RatingIncorrect:
		return true
	}
	return false
}

// ParseRating accepts the wire names of the three ratings.
func ParseRating(s string) (Rating, error) {
	r := Rating(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("%w: unknown rating %q", ErrInvalidInput, s)
	}
	return r, nil
}

// SessionMode tags the kind of session a review was logged in.
type SessionMode string

const (
	SessionModeCoPlay    SessionMode = "co_play"
	SessionModeAdventure SessionMode = "adventure"
)

func (m SessionMode) IsValid() bool {
	return m == SessionModeCoPlay || m == SessionModeAdventure
}

// ResponseData is the raw capture of an attempt. The engine only checks its shape.
type ResponseData struct {
	RawResponse    string         `json:"raw_response"`
	ResponseTimeMs int            `json:"response_time_ms" validate:"gte=0"`
	HintsUsed      int            `json:"hints_used" validate:"gte=0"`
	Context        map[string]any `json:"context,omitempty"`
}

// Review is an immutable record of one logged attempt.
type Review struct {
	ID           string                           `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProfileID    string                           `gorm:"type:varchar(64);not null;index:idx_reviews_profile_item,priority:1" json:"profile_id"`
	ItemID       string                           `gorm:"type:varchar(64);not null;index:idx_reviews_profile_item,priority:2;index:idx_reviews_item" json:"item_id"`
	Timestamp    time.Time                        `gorm:"not null" json:"timestamp"`
	Rating       Rating                           `gorm:"type:varchar(16);not null" json:"rating"`
	ResponseData datatypes.JSONType[ResponseData] `json:"response_data"`
	Mode         SessionMode                      `gorm:"type:varchar(16);not null" json:"mode"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) Key() ItemStateKey {
	return ItemStateKey{ProfileID: r.ProfileID, ItemID: r.ItemID}
}
