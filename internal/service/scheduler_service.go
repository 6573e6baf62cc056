//go:generate mockery --name SchedulerService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rocketreading/internal/middleware"
	"rocketreading/internal/model"
	"rocketreading/internal/repository"
	"rocketreading/internal/webutil"
)

// SchedulerService decides which items are due and records practice attempts.
type SchedulerService interface {
	SeedItems(ctx context.Context, profileID string, items []model.Item) (int, error)
	GetDueItems(ctx context.Context, profileID string, asOf time.Time) ([]model.Item, error)
	LogReview(ctx context.Context, profileID, itemID string, rating model.Rating, data model.ResponseData) (*model.ItemState, error)
	GetItemState(ctx context.Context, key model.ItemStateKey) (*model.ItemState, error)
	UpdateItemState(ctx context.Context, state *model.ItemState) error
	GetAllItems(ctx context.Context, profileID string) ([]model.Item, error)
	GetLastReview(ctx context.Context, key model.ItemStateKey) (*model.Review, error)
}

type schedulerService struct {
	store *repository.Store
	mode  model.SessionMode
	clock func() time.Time
}

// NewSchedulerService tags every logged review with mode.
func NewSchedulerService(store *repository.Store, mode model.SessionMode) SchedulerService {
	if !mode.IsValid() {
		mode = model.SessionModeCoPlay
	}
	return &schedulerService{
		store: store,
		mode:  mode,
		clock: time.Now,
	}
}

// SeedItems upserts items and creates a fresh state for every pair not seeded
// yet, all in one transaction. Existing states keep their progress. It returns
// the number of states created. Repeated ids keep their first occurrence.
func (s *schedulerService) SeedItems(ctx context.Context, profileID string, items []model.Item) (int, error) {
	logger := middleware.GetLogger(ctx).With("profile_id", profileID)

	if err := model.ValidateProfileID(profileID); err != nil {
		return 0, err
	}
	items = lo.UniqBy(items, func(it model.Item) string { return it.ID })
	for i := range items {
		if err := validateItem(&items[i]); err != nil {
			return 0, err
		}
	}

	now := s.clock().UTC()
	created := 0
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.store.Items.Upsert(ctx, tx, items); err != nil {
			return err
		}
		for _, it := range items {
			key := model.ItemStateKey{ProfileID: profileID, ItemID: it.ID}
			ok, err := s.store.States.CreateIfAbsent(ctx, tx, model.NewItemState(key, now))
			if err != nil {
				return err
			}
			if ok {
				created++
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to seed items", "error", err, "count", len(items))
		return 0, fmt.Errorf("SeedItems: %w", err)
	}

	logger.Info("Seeded items", "items", len(items), "states_created", created)
	return created, nil
}

// GetDueItems returns the items whose state has next_due <= asOf, most overdue first.
func (s *schedulerService) GetDueItems(ctx context.Context, profileID string, asOf time.Time) ([]model.Item, error) {
	logger := middleware.GetLogger(ctx).With("profile_id", profileID)

	if err := model.ValidateProfileID(profileID); err != nil {
		return nil, err
	}
	db, err := s.store.DB()
	if err != nil {
		return nil, err
	}
	states, err := s.store.States.FindByProfile(ctx, db, profileID)
	if err != nil {
		return nil, fmt.Errorf("GetDueItems: %w", err)
	}

	due := lo.Filter(states, func(st model.ItemState, _ int) bool { return st.IsDue(asOf) })
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].NextDue.Equal(due[j].NextDue) {
			return due[i].ItemID < due[j].ItemID
		}
		return due[i].NextDue.Before(due[j].NextDue)
	})

	items, err := s.itemsFor(ctx, db, due)
	if err != nil {
		return nil, fmt.Errorf("GetDueItems: %w", err)
	}
	logger.Debug("Resolved due items", "due", len(items), "seeded", len(states))
	return items, nil
}

// LogReview applies rating to the pair's state and appends the review in one
// transaction. A failed review append rolls the state back and is reported
// as a *model.PartialWriteError.
func (s *schedulerService) LogReview(ctx context.Context, profileID, itemID string, rating model.Rating, data model.ResponseData) (*model.ItemState, error) {
	key := model.ItemStateKey{ProfileID: profileID, ItemID: itemID}
	logger := middleware.GetLogger(ctx).With("profile_id", profileID, "item_id", itemID)

	if err := key.Validate(); err != nil {
		return nil, err
	}
	if !rating.IsValid() {
		return nil, model.NewAppError("INVALID_RATING", fmt.Sprintf("unknown rating %q", rating), "rating", model.ErrInvalidInput)
	}
	if err := validateResponseData(data); err != nil {
		return nil, err
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}

	prev, err := s.store.States.FindByKey(ctx, tx, key)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Review logged for an item that was never seeded")
		}
		return nil, fmt.Errorf("LogReview: %w", err)
	}

	now := s.clock().UTC()
	next, err := NextItemState(*prev, rating, now)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := s.store.States.Save(ctx, tx, &next); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("LogReview: %w", err)
	}

	review := &model.Review{
		ID:           uuid.NewString(),
		ProfileID:    profileID,
		ItemID:       itemID,
		Timestamp:    now,
		Rating:       rating,
		ResponseData: datatypes.NewJSONType(data),
		Mode:         s.mode,
	}
	if err := s.store.Reviews.Create(ctx, tx, review); err != nil {
		rbErr := tx.Rollback().Error
		logger.Error("Review append failed after state write", "error", err, "rollback_error", rbErr)
		return nil, model.NewPartialWriteError(key, err, rbErr == nil)
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit review", "error", err)
		return nil, fmt.Errorf("LogReview: commit: %w", err)
	}

	logger.Info("Review logged",
		"rating", rating,
		"status", next.Status,
		"interval_days", next.IntervalDays,
		"correct_streak", next.CorrectStreak,
	)
	return &next, nil
}

func (s *schedulerService) GetItemState(ctx context.Context, key model.ItemStateKey) (*model.ItemState, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	db, err := s.store.DB()
	if err != nil {
		return nil, err
	}
	state, err := s.store.States.FindByKey(ctx, db, key)
	if err != nil {
		return nil, fmt.Errorf("GetItemState: %w", err)
	}
	return state, nil
}

// UpdateItemState overwrites a seeded pair's state. It never creates one.
// error_count may not go down and next_due may not precede the update.
func (s *schedulerService) UpdateItemState(ctx context.Context, state *model.ItemState) error {
	logger := middleware.GetLogger(ctx)

	if state == nil {
		return fmt.Errorf("%w: state is required", model.ErrInvalidInput)
	}
	if err := state.Validate(); err != nil {
		return err
	}
	now := s.clock().UTC()
	state.LastSeen = state.LastSeen.UTC()
	state.NextDue = state.NextDue.UTC()
	if state.NextDue.Before(now) {
		return model.NewAppError("INVALID_NEXT_DUE", "next_due must not be earlier than the time of the update", "next_due", model.ErrInvalidInput)
	}

	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		prev, err := s.store.States.FindByKey(ctx, tx, state.Key())
		if err != nil {
			return err
		}
		if state.ErrorCount < prev.ErrorCount {
			return model.NewAppError("INVALID_ERROR_COUNT",
				fmt.Sprintf("error_count must not decrease (stored %d)", prev.ErrorCount), "error_count", model.ErrInvalidInput)
		}
		return s.store.States.Save(ctx, tx, state)
	})
	if err != nil {
		return fmt.Errorf("UpdateItemState: %w", err)
	}
	logger.Info("Item state overwritten", "key", state.Key().String(), "status", state.Status)
	return nil
}

// GetAllItems returns every item seeded for the profile, ordered by id.
func (s *schedulerService) GetAllItems(ctx context.Context, profileID string) ([]model.Item, error) {
	if err := model.ValidateProfileID(profileID); err != nil {
		return nil, err
	}
	db, err := s.store.DB()
	if err != nil {
		return nil, err
	}
	states, err := s.store.States.FindByProfile(ctx, db, profileID)
	if err != nil {
		return nil, fmt.Errorf("GetAllItems: %w", err)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].ItemID < states[j].ItemID })

	items, err := s.itemsFor(ctx, db, states)
	if err != nil {
		return nil, fmt.Errorf("GetAllItems: %w", err)
	}
	return items, nil
}

// GetLastReview returns the latest review of the pair, or nil when there is none.
func (s *schedulerService) GetLastReview(ctx context.Context, key model.ItemStateKey) (*model.Review, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	db, err := s.store.DB()
	if err != nil {
		return nil, err
	}
	reviews, err := s.store.Reviews.FindByKey(ctx, db, key)
	if err != nil {
		return nil, fmt.Errorf("GetLastReview: %w", err)
	}
	if len(reviews) == 0 {
		return nil, nil
	}
	last := lo.MaxBy(reviews, func(a, b model.Review) bool { return a.Timestamp.After(b.Timestamp) })
	return &last, nil
}

// itemsFor loads the items behind states, keeping the order of states.
func (s *schedulerService) itemsFor(ctx context.Context, db *gorm.DB, states []model.ItemState) ([]model.Item, error) {
	ids := lo.Map(states, func(st model.ItemState, _ int) string { return st.ItemID })
	found, err := s.store.Items.FindByIDs(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(found, func(it model.Item) string { return it.ID })

	items := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			middleware.GetLogger(ctx).Warn("Item state without item record, skipping", "item_id", id)
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func validateItem(it *model.Item) error {
	if err := webutil.Validator.Struct(it); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			appErr := webutil.NewValidationErrorResponse(verrs)
			appErr.Detail.Message = fmt.Sprintf("item %q: %s", it.ID, appErr.Detail.Message)
			return appErr
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}

func validateResponseData(data model.ResponseData) error {
	if err := webutil.Validator.Struct(data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return webutil.NewValidationErrorResponse(verrs)
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}
