// internal/service/schedule.go
package service

import (
	"fmt"
	"math"
	"time"

	"rocketreading/internal/model"
)

// LearningThreshold is the correct streak that graduates an item out of massed practice.
const LearningThreshold = 3

// NextItemState applies one rating to prev and returns the resulting state.
// prev is not modified. All timestamps on the result are in UTC.
//
//	correct      before graduation: interval 0, learning; at the threshold: interval 1, maturing
//	correct      after graduation:  interval doubles up to MaxIntervalDays, maturing
//	incorrect    interval 0, streak 0, errors+1, graduation revoked, learning
//	needed_help  before graduation: interval 0, streak-1 floored at 0, status kept
//	needed_help  after graduation:  interval halved (ceil, min 1), streak 0, status kept
func NextItemState(prev model.ItemState, rating model.Rating, now time.Time) (model.ItemState, error) {
	next := prev
	now = now.UTC()

	switch rating {
	case model.RatingCorrect:
		next.CorrectStreak = prev.CorrectStreak + 1
		switch {
		case prev.LearningThresholdMet:
			next.IntervalDays = min(prev.IntervalDays*2, model.MaxIntervalDays)
			next.Status = model.StatusMaturing
		case next.CorrectStreak >= LearningThreshold:
			next.IntervalDays = 1
			next.LearningThresholdMet = true
			next.Status = model.StatusMaturing
		default:
			next.IntervalDays = 0
			next.Status = model.StatusLearning
		}

	case model.RatingIncorrect:
		next.IntervalDays = 0
		next.CorrectStreak = 0
		next.ErrorCount = prev.ErrorCount + 1
		next.LearningThresholdMet = false
		next.Status = model.StatusLearning

	case model.RatingNeededHelp:
		if prev.LearningThresholdMet {
			half := int(math.Ceil(float64(prev.IntervalDays) * 0.5))
			next.IntervalDays = min(max(half, 1), model.MaxIntervalDays)
			next.CorrectStreak = 0
		} else {
			next.IntervalDays = 0
			next.CorrectStreak = max(prev.CorrectStreak-1, 0)
		}

	default:
		return prev, fmt.Errorf("%w: unknown rating %q", model.ErrInvalidInput, rating)
	}

	next.LastSeen = now
	next.NextDue = dueAfter(now, next.IntervalDays)
	return next, nil
}

// dueAfter is now for a zero interval, otherwise now plus whole days.
func dueAfter(now time.Time, intervalDays int) time.Time {
	if intervalDays == 0 {
		return now
	}
	return now.AddDate(0, 0, intervalDays)
}
