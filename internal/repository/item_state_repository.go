//go:generate mockery --name ItemStateRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rocketreading/internal/middleware"
	"rocketreading/internal/model"
)

type ItemStateRepository interface {
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, state *model.ItemState) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, state *model.ItemState) error
	FindByKey(ctx context.Context, db *gorm.DB, key model.ItemStateKey) (*model.ItemState, error)
	FindByProfile(ctx context.Context, db *gorm.DB, profileID string) ([]model.ItemState, error)
}

type gormItemStateRepository struct{}

func NewGormItemStateRepository() ItemStateRepository {
	return &gormItemStateRepository{}
}

var itemStateKeyColumns = []clause.Column{{Name: "profile_id"}, {Name: "item_id"}}

// CreateIfAbsent inserts state unless the pair already exists. It reports whether a row was written.
func (r *gormItemStateRepository) CreateIfAbsent(ctx context.Context, tx *gorm.DB, state *model.ItemState) (bool, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   itemStateKeyColumns,
		DoNothing: true,
	}).Create(state)
	if result.Error != nil {
		logger.Error("Error creating item state in DB", "error", result.Error, "key", state.Key().String())
		return false, fmt.Errorf("gormItemStateRepository.CreateIfAbsent: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Save overwrites the whole state of the pair, inserting it when missing.
func (r *gormItemStateRepository) Save(ctx context.Context, tx *gorm.DB, state *model.ItemState) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   itemStateKeyColumns,
		UpdateAll: true,
	}).Create(state)
	if result.Error != nil {
		logger.Error("Error saving item state in DB", "error", result.Error, "key", state.Key().String())
		return fmt.Errorf("gormItemStateRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormItemStateRepository) FindByKey(ctx context.Context, db *gorm.DB, key model.ItemStateKey) (*model.ItemState, error) {
	logger := middleware.GetLogger(ctx)
	var state model.ItemState
	result := db.WithContext(ctx).
		Where("profile_id = ? AND item_id = ?", key.ProfileID, key.ItemID).
		First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding item state in DB", "error", result.Error, "key", key.String())
		return nil, fmt.Errorf("gormItemStateRepository.FindByKey: %w", result.Error)
	}
	return &state, nil
}

// FindByProfile returns every state of a profile, unordered.
func (r *gormItemStateRepository) FindByProfile(ctx context.Context, db *gorm.DB, profileID string) ([]model.ItemState, error) {
	logger := middleware.GetLogger(ctx)
	var states []model.ItemState
	result := db.WithContext(ctx).Where("profile_id = ?", profileID).Find(&states)
	if result.Error != nil {
		logger.Error("Error finding item states by profile in DB", "error", result.Error, "profile_id", profileID)
		return nil, fmt.Errorf("gormItemStateRepository.FindByProfile: %w", result.Error)
	}
	return states, nil
}
