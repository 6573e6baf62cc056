//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rocketreading/internal/middleware"
	"rocketreading/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *model.Review) error
	FindByItem(ctx context.Context, db *gorm.DB, itemID string) ([]model.Review, error)
	FindByKey(ctx context.Context, db *gorm.DB, key model.ItemStateKey) ([]model.Review, error)
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

// Create appends a review. Reviews are never updated.
func (r *gormReviewRepository) Create(ctx context.Context, tx *gorm.DB, review *model.Review) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(review)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			logger.Warn("Duplicate review id", "review_id", review.ID)
			return model.ErrConflict
		}
		logger.Error("Error creating review in DB", "error", result.Error, "key", review.Key().String())
		return fmt.Errorf("gormReviewRepository.Create: %w", result.Error)
	}
	return nil
}

// FindByItem returns the reviews of an item across profiles, unordered.
func (r *gormReviewRepository) FindByItem(ctx context.Context, db *gorm.DB, itemID string) ([]model.Review, error) {
	logger := middleware.GetLogger(ctx)
	var reviews []model.Review
	result := db.WithContext(ctx).Where("item_id = ?", itemID).Find(&reviews)
	if result.Error != nil {
		logger.Error("Error finding reviews by item in DB", "error", result.Error, "item_id", itemID)
		return nil, fmt.Errorf("gormReviewRepository.FindByItem: %w", result.Error)
	}
	return reviews, nil
}

// FindByKey returns the reviews of one (profile, item) pair, unordered.
func (r *gormReviewRepository) FindByKey(ctx context.Context, db *gorm.DB, key model.ItemStateKey) ([]model.Review, error) {
	logger := middleware.GetLogger(ctx)
	var reviews []model.Review
	result := db.WithContext(ctx).
		Where("profile_id = ? AND item_id = ?", key.ProfileID, key.ItemID).
		Find(&reviews)
	if result.Error != nil {
		logger.Error("Error finding reviews by key in DB", "error", result.Error, "key", key.String())
		return nil, fmt.Errorf("gormReviewRepository.FindByKey: %w", result.Error)
	}
	return reviews, nil
}
