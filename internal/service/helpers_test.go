// internal/service/helpers_test.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rocketreading/internal/config"
	"rocketreading/internal/model"
	"rocketreading/internal/repository"
)

var baseTime = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}
	store, err := repository.Open(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// steppingClock starts at from and advances by step on every call.
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newSteppingClock(from time.Time, step time.Duration) *steppingClock {
	return &steppingClock{now: from, step: step}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func newTestScheduler(store *repository.Store, clock func() time.Time) *schedulerService {
	svc := NewSchedulerService(store, model.SessionModeCoPlay).(*schedulerService)
	svc.clock = clock
	return svc
}

func world1Items(t *testing.T) []model.Item {
	t.Helper()
	letters := []string{"m", "a", "t", "s", "i", "p", "n", "o", "e", "r", "d", "h", "l"}
	items := make([]model.Item, 0, len(letters))
	for _, l := range letters {
		items = append(items, model.NewItem("letter_"+l, model.ItemTypeLetter, l, 1, model.ItemMetadata{PhonicsCoverage: []string{l}}))
	}
	return items
}
