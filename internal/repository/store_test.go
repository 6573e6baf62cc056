// internal/repository/store_test.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rocketreading/internal/config"
	"rocketreading/internal/model"
)

// newTestStore opens a migrated in-memory SQLite store private to the test.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := Open(context.Background(), cfg, testLogger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_NotInitialized(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		store func(t *testing.T) *Store
	}{
		{
			name:  "nil store",
			store: func(t *testing.T) *Store { return nil },
		},
		{
			name:  "store without connection",
			store: func(t *testing.T) *Store { return NewStore(nil) },
		},
		{
			name: "closed store",
			store: func(t *testing.T) *Store {
				s := newTestStore(t)
				require.NoError(t, s.Close())
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.store(t)

			_, err := s.DB()
			assert.ErrorIs(t, err, model.ErrNotInitialized)

			assert.ErrorIs(t, s.Ping(ctx), model.ErrNotInitialized)
			assert.ErrorIs(t, s.Migrate(ctx), model.ErrNotInitialized)
			err = s.Transaction(ctx, func(tx *gorm.DB) error { return nil })
			assert.ErrorIs(t, err, model.ErrNotInitialized)
			_, err = s.Begin(ctx)
			assert.ErrorIs(t, err, model.ErrNotInitialized)
			assert.NotPanics(t, func() { assert.NoError(t, s.Close()) })
		})
	}
}

func TestStore_CloseIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestStore_TransactionIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	db, err := s.DB()
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.Transaction(ctx, func(tx *gorm.DB) error {
		items := []model.Item{model.NewItem("letter_m", model.ItemTypeLetter, "m", 1, model.ItemMetadata{})}
		if err := s.Items.Upsert(ctx, tx, items); err != nil {
			return err
		}
		state := model.NewItemState(model.ItemStateKey{ProfileID: "p1", ItemID: "letter_m"}, fixedNow)
		if _, err := s.States.CreateIfAbsent(ctx, tx, state); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Items.FindByID(ctx, db, "letter_m")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = s.States.FindByKey(ctx, db, model.ItemStateKey{ProfileID: "p1", ItemID: "letter_m"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(config.DatabaseConfig{Driver: "mysql", URL: "x"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "mysql")
}
