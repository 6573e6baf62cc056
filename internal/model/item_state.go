// internal/model/item_state.go
package model

import (
	"fmt"
	"strings"
	"time"
)

// MaxIntervalDays caps the spacing between two reviews of the same item.
const MaxIntervalDays = 30

// MaxIDLength bounds profile and item ids to their column width.
const MaxIDLength = 64

// ItemStatus is the scheduling phase of an item for one profile.
type ItemStatus string

const (
	StatusNew      ItemStatus = "new"
	StatusLearning ItemStatus = "learning"
	StatusMaturing ItemStatus = "maturing"

	// StatusMastered and StatusMaintenance are reserved for a future long-term
	// review rule. The current transition table never assigns them.
	StatusMastered    ItemStatus = "mastered"
	StatusMaintenance ItemStatus = "maintenance"
)

func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusMaturing, StatusMastered, StatusMaintenance:
		return true
	}
	return false
}

// ItemStateKey identifies the (profile, item) pair an ItemState belongs to.
type ItemStateKey struct {
	ProfileID string
	ItemID    string
}

func (k ItemStateKey) Validate() error {
	if err := ValidateProfileID(k.ProfileID); err != nil {
		return err
	}
	if strings.TrimSpace(k.ItemID) == "" || len(k.ItemID) > MaxIDLength {
		return fmt.Errorf("%w: item id must be 1 to %d characters", ErrInvalidInput, MaxIDLength)
	}
	return nil
}

// ValidateProfileID checks an opaque profile id before it reaches storage.
func ValidateProfileID(profileID string) error {
	if strings.TrimSpace(profileID) == "" || len(profileID) > MaxIDLength {
		return fmt.Errorf("%w: profile id must be 1 to %d characters", ErrInvalidInput, MaxIDLength)
	}
	return nil
}

// String is for logs only; storage uses the two key columns.
func (k ItemStateKey) String() string {
	return k.ProfileID + "/" + k.ItemID
}

// ItemState is the mutable scheduling record of one item for one profile.
// The composite primary key (profile_id, item_id) makes the pair unique.
type ItemState struct {
	ProfileID            string     `gorm:"type:varchar(64);primaryKey" json:"profile_id"`
	ItemID               string     `gorm:"type:varchar(64);primaryKey" json:"item_id"`
	LastSeen             time.Time  `gorm:"not null" json:"last_seen"`
	NextDue              time.Time  `gorm:"not null;index" json:"next_due"`
	IntervalDays         int        `gorm:"not null;default:0" json:"interval_days"`
	CorrectStreak        int        `gorm:"not null;default:0" json:"correct_streak"`
	ErrorCount           int        `gorm:"not null;default:0" json:"error_count"`
	Status               ItemStatus `gorm:"type:varchar(16);not null;default:new" json:"status"`
	LearningThresholdMet bool       `gorm:"not null;default:false" json:"learning_threshold_met"`
	UpdatedAt            time.Time  `json:"-"`
}

func (ItemState) TableName() string {
	return "item_states"
}

// NewItemState returns the initial state of a freshly seeded pair: due immediately,
// in massed practice.
func NewItemState(key ItemStateKey, now time.Time) *ItemState {
	return &ItemState{
		ProfileID: key.ProfileID,
		ItemID:    key.ItemID,
		LastSeen:  now,
		NextDue:   now,
		Status:    StatusNew,
	}
}

func (s *ItemState) Key() ItemStateKey {
	return ItemStateKey{ProfileID: s.ProfileID, ItemID: s.ItemID}
}

// IsDue reports whether the item should be presented at asOf.
func (s *ItemState) IsDue(asOf time.Time) bool {
	return !s.NextDue.After(asOf)
}

// Validate checks the counter and interval bounds.
func (s *ItemState) Validate() error {
	if err := s.Key().Validate(); err != nil {
		return err
	}
	switch {
	case s.CorrectStreak < 0:
		return fmt.Errorf("%w: correct_streak must not be negative", ErrInvalidInput)
	case s.ErrorCount < 0:
		return fmt.Errorf("%w: error_count must not be negative", ErrInvalidInput)
	case s.IntervalDays < 0 || s.IntervalDays > MaxIntervalDays:
		return fmt.Errorf("%w: interval_days must be within [0, %d]", ErrInvalidInput, MaxIntervalDays)
	case !s.Status.IsValid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s.Status)
	}
	return nil
}
