// internal/repository/review_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"rocketreading/internal/model"
)

func newReview(key model.ItemStateKey, rating model.Rating, at time.Time) *model.Review {
	return &model.Review{
		ID:        uuid.NewString(),
		ProfileID: key.ProfileID,
		ItemID:    key.ItemID,
		Timestamp: at,
		Rating:    rating,
		ResponseData: datatypes.NewJSONType(model.ResponseData{
			RawResponse:    "mmm",
			ResponseTimeMs: 850,
			Context:        map[string]any{"screen": "letter_card"},
		}),
		Mode: model.SessionModeCoPlay,
	}
}

func TestGormReviewRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	db, err := s.DB()
	require.NoError(t, err)

	m1 := model.ItemStateKey{ProfileID: "p1", ItemID: "letter_m"}
	m2 := model.ItemStateKey{ProfileID: "p2", ItemID: "letter_m"}
	a1 := model.ItemStateKey{ProfileID: "p1", ItemID: "letter_a"}

	require.NoError(t, s.Reviews.Create(ctx, db, newReview(m1, model.RatingCorrect, fixedNow)))
	require.NoError(t, s.Reviews.Create(ctx, db, newReview(m1, model.RatingIncorrect, fixedNow.Add(time.Minute))))
	require.NoError(t, s.Reviews.Create(ctx, db, newReview(m2, model.RatingNeededHelp, fixedNow)))
	require.NoError(t, s.Reviews.Create(ctx, db, newReview(a1, model.RatingCorrect, fixedNow)))

	byItem, err := s.Reviews.FindByItem(ctx, db, "letter_m")
	require.NoError(t, err)
	assert.Len(t, byItem, 3)

	byKey, err := s.Reviews.FindByKey(ctx, db, m1)
	require.NoError(t, err)
	require.Len(t, byKey, 2)
	for _, r := range byKey {
		assert.Equal(t, m1, r.Key())
		assert.Equal(t, "mmm", r.ResponseData.Data().RawResponse)
		assert.Equal(t, 850, r.ResponseData.Data().ResponseTimeMs)
		assert.Equal(t, "letter_card", r.ResponseData.Data().Context["screen"])
	}

	none, err := s.Reviews.FindByKey(ctx, db, model.ItemStateKey{ProfileID: "p9", ItemID: "letter_m"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGormReviewRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	db, err := s.DB()
	require.NoError(t, err)

	r := newReview(model.ItemStateKey{ProfileID: "p1", ItemID: "letter_m"}, model.RatingCorrect, fixedNow)
	require.NoError(t, s.Reviews.Create(ctx, db, r))

	dup := *r
	err = s.Reviews.Create(ctx, db, &dup)
	assert.ErrorIs(t, err, model.ErrConflict)
}
