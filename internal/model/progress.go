// internal/model/progress.go
package model

// RollingAccuracy approximates an item's accuracy from its live counters: the
// current correct streak against streak plus lifetime errors. Attempts are
// undercounted once a streak resets; switching to historical tallies only
// changes RollingAccuracyOf.
type RollingAccuracy struct {
	Correct  int `json:"correct"`
	Attempts int `json:"attempts"`
}

// RollingAccuracyOf reads the approximation off a state. A nil state has no attempts.
func RollingAccuracyOf(s *ItemState) RollingAccuracy {
	if s == nil {
		return RollingAccuracy{}
	}
	return RollingAccuracy{
		Correct:  s.CorrectStreak,
		Attempts: s.CorrectStreak + s.ErrorCount,
	}
}

func (a RollingAccuracy) Started() bool {
	return a.Attempts > 0
}

// Ratio is 0 when nothing was attempted.
func (a RollingAccuracy) Ratio() float64 {
	if a.Attempts == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Attempts)
}

func (a RollingAccuracy) Add(b RollingAccuracy) RollingAccuracy {
	return RollingAccuracy{Correct: a.Correct + b.Correct, Attempts: a.Attempts + b.Attempts}
}

// MasteryCriteria is the bar an item must clear to count as mastered.
type MasteryCriteria struct {
	MinAttempts int
	MinAccuracy float64
}

// DefaultMasteryCriteria: at least 5 attempts at 90% accuracy.
var DefaultMasteryCriteria = MasteryCriteria{MinAttempts: 5, MinAccuracy: 0.90}

func (c MasteryCriteria) Met(a RollingAccuracy) bool {
	return a.Attempts >= c.MinAttempts && a.Ratio() >= c.MinAccuracy
}

// Progress summarises a curriculum set for one profile.
type Progress struct {
	ItemsTotal      int     `json:"items_total"`
	ItemsStarted    int     `json:"items_started"`
	ItemsMastered   int     `json:"items_mastered"`
	OverallAccuracy float64 `json:"overall_accuracy"`
}
