// internal/model/model_test.go
package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		in      string
		want    Rating
		wantErr bool
	}{
		{in: "correct", want: RatingCorrect},
		{in: " Needed_Help ", want: RatingNeededHelp},
		{in: "INCORRECT", want: RatingIncorrect},
		{in: "easy", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRating(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMasteryCriteria_Met(t *testing.T) {
	tests := []struct {
		name string
		acc  RollingAccuracy
		want bool
	}{
		{name: "nothing attempted", acc: RollingAccuracy{}, want: false},
		{name: "too few attempts", acc: RollingAccuracy{Correct: 4, Attempts: 4}, want: false},
		{name: "exactly at the bar", acc: RollingAccuracy{Correct: 9, Attempts: 10}, want: true},
		{name: "just under accuracy", acc: RollingAccuracy{Correct: 8, Attempts: 9}, want: false},
		{name: "perfect run", acc: RollingAccuracy{Correct: 5, Attempts: 5}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultMasteryCriteria.Met(tt.acc))
		})
	}
}

func TestRollingAccuracy(t *testing.T) {
	assert.Equal(t, RollingAccuracy{}, RollingAccuracyOf(nil))
	assert.Zero(t, RollingAccuracy{}.Ratio())

	a := RollingAccuracyOf(&ItemState{CorrectStreak: 3, ErrorCount: 1})
	assert.Equal(t, RollingAccuracy{Correct: 3, Attempts: 4}, a)
	assert.True(t, a.Started())
	assert.InDelta(t, 0.75, a.Ratio(), 1e-9)
	assert.Equal(t, RollingAccuracy{Correct: 4, Attempts: 6}, a.Add(RollingAccuracy{Correct: 1, Attempts: 2}))
}

func TestItemState_Validate(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	valid := func() *ItemState { return NewItemState(ItemStateKey{ProfileID: "p1", ItemID: "letter_m"}, now) }

	tests := []struct {
		name   string
		mutate func(s *ItemState)
		ok     bool
	}{
		{name: "fresh state", mutate: func(s *ItemState) {}, ok: true},
		{name: "interval at cap", mutate: func(s *ItemState) { s.IntervalDays = MaxIntervalDays }, ok: true},
		{name: "reserved status", mutate: func(s *ItemState) { s.Status = StatusMastered }, ok: true},
		{name: "interval over cap", mutate: func(s *ItemState) { s.IntervalDays = MaxIntervalDays + 1 }},
		{name: "negative interval", mutate: func(s *ItemState) { s.IntervalDays = -1 }},
		{name: "negative streak", mutate: func(s *ItemState) { s.CorrectStreak = -1 }},
		{name: "negative errors", mutate: func(s *ItemState) { s.ErrorCount = -1 }},
		{name: "unknown status", mutate: func(s *ItemState) { s.Status = "retired" }},
		{name: "blank profile", mutate: func(s *ItemState) { s.ProfileID = "  " }},
		{name: "long item id", mutate: func(s *ItemState) { s.ItemID = strings.Repeat("x", MaxIDLength+1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestItemState_IsDue(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewItemState(ItemStateKey{ProfileID: "p1", ItemID: "letter_m"}, now)

	assert.True(t, s.IsDue(now))
	assert.False(t, s.IsDue(now.Add(-time.Second)))
	assert.True(t, s.IsDue(now.Add(time.Hour)))
}

func TestPartialWriteError(t *testing.T) {
	cause := errors.New("disk full")
	err := error(NewPartialWriteError(ItemStateKey{ProfileID: "p1", ItemID: "letter_m"}, cause, true))

	assert.ErrorIs(t, err, ErrPartialWrite)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "p1/letter_m")

	var pwe *PartialWriteError
	require.ErrorAs(t, err, &pwe)
	assert.True(t, pwe.StateRolledBack)
}
