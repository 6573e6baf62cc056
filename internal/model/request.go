// internal/model/request.go
package model

import "time"

// SeedItemsRequest seeds either explicit items or a whole built-in world.
type SeedItemsRequest struct {
	Items []Item `json:"items" validate:"omitempty,dive"`
	World *int   `json:"world" validate:"omitempty,gte=1"`
}

type SeedItemsResponse struct {
	Items         int `json:"items"`
	StatesCreated int `json:"states_created"`
}

// LogReviewRequest is the body of a review submission.
type LogReviewRequest struct {
	Rating       string       `json:"rating" validate:"required,oneof=correct needed_help incorrect"`
	ResponseData ResponseData `json:"response_data"`
}

// UpdateItemStateRequest is the body of a manual state overwrite.
type UpdateItemStateRequest struct {
	LastSeen             *time.Time `json:"last_seen"`
	NextDue              time.Time  `json:"next_due" validate:"required"`
	IntervalDays         int        `json:"interval_days" validate:"gte=0,lte=30"`
	CorrectStreak        int        `json:"correct_streak" validate:"gte=0"`
	ErrorCount           int        `json:"error_count" validate:"gte=0"`
	Status               ItemStatus `json:"status" validate:"required,oneof=new learning maturing mastered maintenance"`
	LearningThresholdMet bool       `json:"learning_threshold_met"`
}

// Apply copies the request onto state, keeping its key.
func (r *UpdateItemStateRequest) Apply(state *ItemState) {
	if r.LastSeen != nil {
		state.LastSeen = r.LastSeen.UTC()
	}
	state.NextDue = r.NextDue.UTC()
	state.IntervalDays = r.IntervalDays
	state.CorrectStreak = r.CorrectStreak
	state.ErrorCount = r.ErrorCount
	state.Status = r.Status
	state.LearningThresholdMet = r.LearningThresholdMet
}

// CurriculumSetRequest names the item ids of an ad hoc curriculum set, in order.
type CurriculumSetRequest struct {
	ItemIDs []string `json:"item_ids" validate:"dive,required,max=64"`
}

type CompletionResponse struct {
	Complete bool `json:"complete"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
