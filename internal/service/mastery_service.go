//go:generate mockery --name MasteryService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"rocketreading/internal/curriculum"
	"rocketreading/internal/middleware"
	"rocketreading/internal/model"
	"rocketreading/internal/repository"
)

// MasteryService turns accumulated item state into completion signals.
// An item that was never seeded counts as zero attempts, not as an error.
type MasteryService interface {
	CheckCurriculumComplete(ctx context.Context, profileID string, itemIDs []string) (bool, error)
	GetProgress(ctx context.Context, profileID string, itemIDs []string) (*model.Progress, error)
	CheckWorldComplete(ctx context.Context, profileID string, world int) (bool, error)
	GetWorldProgress(ctx context.Context, profileID string, world int) (*model.Progress, error)
}

type masteryService struct {
	store    *repository.Store
	criteria model.MasteryCriteria
	world    func(n int) ([]model.Item, error)
}

func NewMasteryService(store *repository.Store) MasteryService {
	return &masteryService{
		store:    store,
		criteria: model.DefaultMasteryCriteria,
		world:    curriculum.World,
	}
}

// CheckCurriculumComplete is true when every item clears the mastery bar and
// the aggregate accuracy does too. It stops at the first item that falls short.
// An empty set is never complete.
func (s *masteryService) CheckCurriculumComplete(ctx context.Context, profileID string, itemIDs []string) (bool, error) {
	logger := middleware.GetLogger(ctx).With("profile_id", profileID)

	if err := model.ValidateProfileID(profileID); err != nil {
		return false, err
	}
	db, err := s.store.DB()
	if err != nil {
		return false, err
	}

	var total model.RollingAccuracy
	for _, id := range itemIDs {
		state, err := s.store.States.FindByKey(ctx, db, model.ItemStateKey{ProfileID: profileID, ItemID: id})
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return false, fmt.Errorf("CheckCurriculumComplete: %w", err)
		}
		acc := model.RollingAccuracyOf(state)
		if !s.criteria.Met(acc) {
			logger.Debug("Curriculum incomplete", "item_id", id, "attempts", acc.Attempts, "accuracy", acc.Ratio())
			return false, nil
		}
		total = total.Add(acc)
	}

	if !total.Started() {
		return false, nil
	}
	return total.Ratio() >= s.criteria.MinAccuracy, nil
}

// GetProgress counts started and mastered items over the whole set. Overall
// accuracy covers attempted items only and is 0 when none were attempted.
func (s *masteryService) GetProgress(ctx context.Context, profileID string, itemIDs []string) (*model.Progress, error) {
	if err := model.ValidateProfileID(profileID); err != nil {
		return nil, err
	}
	db, err := s.store.DB()
	if err != nil {
		return nil, err
	}
	states, err := s.store.States.FindByProfile(ctx, db, profileID)
	if err != nil {
		return nil, fmt.Errorf("GetProgress: %w", err)
	}
	byItem := lo.KeyBy(states, func(st model.ItemState) string { return st.ItemID })

	progress := &model.Progress{ItemsTotal: len(itemIDs)}
	var total model.RollingAccuracy
	for _, id := range itemIDs {
		st, ok := byItem[id]
		if !ok {
			continue
		}
		acc := model.RollingAccuracyOf(&st)
		if !acc.Started() {
			continue
		}
		progress.ItemsStarted++
		if s.criteria.Met(acc) {
			progress.ItemsMastered++
		}
		total = total.Add(acc)
	}
	progress.OverallAccuracy = total.Ratio()
	return progress, nil
}

func (s *masteryService) CheckWorldComplete(ctx context.Context, profileID string, world int) (bool, error) {
	items, err := s.world(world)
	if err != nil {
		return false, err
	}
	return s.CheckCurriculumComplete(ctx, profileID, curriculum.IDs(items))
}

func (s *masteryService) GetWorldProgress(ctx context.Context, profileID string, world int) (*model.Progress, error) {
	items, err := s.world(world)
	if err != nil {
		return nil, err
	}
	return s.GetProgress(ctx, profileID, curriculum.IDs(items))
}
