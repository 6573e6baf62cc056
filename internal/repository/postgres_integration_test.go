// internal/repository/postgres_integration_test.go
package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketreading/internal/config"
	"rocketreading/internal/model"
)

// Runs the store against a throwaway PostgreSQL container.
// Set ROCKETREADING_DOCKER_TESTS=1 to enable.
func TestStore_Postgres(t *testing.T) {
	if os.Getenv("ROCKETREADING_DOCKER_TESTS") != "1" {
		t.Skip("set ROCKETREADING_DOCKER_TESTS=1 to run PostgreSQL integration tests")
	}
	ctx := context.Background()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not construct docker pool")
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=rocketreading",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start postgres")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge postgres container: %v", err)
		}
	})

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=rocketreading sslmode=disable TimeZone=UTC",
		resource.GetPort("5432/tcp"))
	cfg := config.DatabaseConfig{Driver: config.DriverPostgres, URL: dsn}

	var store *Store
	err = pool.Retry(func() error {
		var openErr error
		store, openErr = Open(ctx, cfg, testLogger)
		return openErr
	})
	require.NoError(t, err, "could not connect to postgres")
	t.Cleanup(func() { _ = store.Close() })

	db, err := store.DB()
	require.NoError(t, err)

	key := model.ItemStateKey{ProfileID: "p1", ItemID: "letter_m"}
	require.NoError(t, store.Items.Upsert(ctx, db, []model.Item{
		model.NewItem(key.ItemID, model.ItemTypeLetter, "m", 1, model.ItemMetadata{PhonicsCoverage: []string{"m"}}),
	}))

	created, err := store.States.CreateIfAbsent(ctx, db, model.NewItemState(key, fixedNow))
	require.NoError(t, err)
	assert.True(t, created)
	created, err = store.States.CreateIfAbsent(ctx, db, model.NewItemState(key, fixedNow))
	require.NoError(t, err)
	assert.False(t, created)

	state, err := store.States.FindByKey(ctx, db, key)
	require.NoError(t, err)
	state.CorrectStreak = 3
	state.IntervalDays = 1
	state.Status = model.StatusMaturing
	state.LearningThresholdMet = true
	require.NoError(t, store.States.Save(ctx, db, state))

	got, err := store.States.FindByKey(ctx, db, key)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CorrectStreak)
	assert.Equal(t, model.StatusMaturing, got.Status)

	r := newReview(key, model.RatingCorrect, fixedNow)
	require.NoError(t, store.Reviews.Create(ctx, db, r))
	dup := *r
	assert.ErrorIs(t, store.Reviews.Create(ctx, db, &dup), model.ErrConflict)

	reviews, err := store.Reviews.FindByItem(ctx, db, key.ItemID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
