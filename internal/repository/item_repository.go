//go:generate mockery --name ItemRepository --output ./mocks --outpkg mocks --case=underscore
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

type ItemRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, items []model.Item) error
	FindByID(ctx context.Context, db *gorm.DB, itemID string) (*model.Item, error)
	FindByIDs(ctx context.Context, db *gorm.DB, itemIDs []string) ([]model.Item, error)
}

type gormItemRepository struct{}

func NewGormItemRepository() ItemRepository {
	return &gormItemRepository{}
}

// Upsert inserts items or overwrites their content by id.
func (r *gormItemRepository) Upsert(ctx context.Context, tx *gorm.DB, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "content", "world", "metadata", "updated_at"}),
	}).Create(&items)
	if result.Error != nil {
		logger.Error("Error upserting items in DB", "error", result.Error, "count", len(items))
		return fmt.Errorf("gormItemRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormItemRepository) FindByID(ctx context.Context, db *gorm.DB, itemID string) (*model.Item, error) {
	logger := middleware.GetLogger(ctx)
	var item model.Item
	result := db.WithContext(ctx).Where("id = ?", itemID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding item by ID in DB", "error", result.Error, "item_id", itemID)
		return nil, fmt.Errorf("gormItemRepository.FindByID: %w", result.Error)
	}
	return &item, nil
}

// FindByIDs returns the items that exist among itemIDs, in no particular order.
func (r *gormItemRepository) FindByIDs(ctx context.Context, db *gorm.DB, itemIDs []string) ([]model.Item, error) {
	if len(itemIDs) == 0 {
		return []model.Item{}, nil
	}
	logger := middleware.GetLogger(ctx)
	var items []model.Item
	result := db.WithContext(ctx).Where("id IN ?", itemIDs).Find(&items)
	if result.Error != nil {
		logger.Error("Error finding items by IDs in DB", "error", result.Error, "count", len(itemIDs))
		return nil, fmt.Errorf("gormItemRepository.FindByIDs: %w", result.Error)
	}
	return items, nil
}
