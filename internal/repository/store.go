// internal/repository/store.go
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gorm.io/gorm"

	"rocketreading/internal/config"
	"rocketreading/internal/model"
)

// Store is the handle to the three scheduling collections. It is opened once
// and passed explicitly to the services that need it.
type Store struct {
	mu     sync.RWMutex
	db     *gorm.DB
	closed bool

	Items   ItemRepository
	States  ItemStateRepository
	Reviews ReviewRepository
}

// NewStore wraps an already opened connection. A nil db yields a store that
// reports ErrNotInitialized.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:      db,
		Items:   NewGormItemRepository(),
		States:  NewGormItemStateRepository(),
		Reviews: NewGormReviewRepository(),
	}
}

// Open connects to the configured database and migrates the schema.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	db, err := NewDB(cfg, logger)
	if err != nil {
		return nil, err
	}
	s := NewStore(db)
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// DB returns the live connection.
func (s *Store) DB() (*gorm.DB, error) {
	if s == nil {
		return nil, model.ErrNotInitialized
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil || s.closed {
		return nil, model.ErrNotInitialized
	}
	return s.db, nil
}

// Migrate creates the items, item_states and reviews tables with their indices.
func (s *Store) Migrate(ctx context.Context) error {
	db, err := s.DB()
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).AutoMigrate(&model.Item{}, &model.ItemState{}, &model.Review{}); err != nil {
		return fmt.Errorf("Store.Migrate: %w", err)
	}
	return nil
}

// Transaction runs fn in a single transaction; every write in fn commits or none does.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db, err := s.DB()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Begin starts a transaction the caller must commit or roll back.
func (s *Store) Begin(ctx context.Context) (*gorm.DB, error) {
	db, err := s.DB()
	if err != nil {
		return nil, err
	}
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("Store.Begin: %w", tx.Error)
	}
	return tx, nil
}

func (s *Store) Ping(ctx context.Context) error {
	db, err := s.DB()
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("Store.Ping: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection. Later calls fail with ErrNotInitialized.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil || s.closed {
		return nil
	}
	s.closed = true
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
