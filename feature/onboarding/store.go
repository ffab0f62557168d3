package onboarding

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store is the loader's view of the relational schema: look up a row by
// natural key, insert, update, and scan existing keys for pre-seeding. The
// schema itself (tables, columns, constraints) is given, not designed here.
type Store struct {
	db *gorm.DB
}

// NewStore wraps a database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByKey fetches the row matching the natural-key columns, reporting
// absence without error.
func (s *Store) FindByKey(ctx context.Context, table string, key map[string]any) (map[string]any, bool, error) {
	row := map[string]any{}
	err := s.db.WithContext(ctx).Table(table).Where(key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return row, true, nil
}

// Insert writes a new row.
func (s *Store) Insert(ctx context.Context, table string, fields map[string]any) error {
	if err := s.db.WithContext(ctx).Table(table).Create(fields).Error; err != nil {
		return &ConstraintViolationError{Table: table, Err: err}
	}
	return nil
}

// Update overwrites the given non-key fields of the row matching the natural
// key.
func (s *Store) Update(ctx context.Context, table string, key map[string]any, fields map[string]any) error {
	if err := s.db.WithContext(ctx).Table(table).Where(key).Updates(fields).Error; err != nil {
		return &ConstraintViolationError{Table: table, Err: err}
	}
	return nil
}

// SelectKeys scans the id and natural-key columns of every existing row,
// used to pre-seed the resolver so repeated runs recognize prior loads.
func (s *Store) SelectKeys(ctx context.Context, table string, columns []string) ([]map[string]any, error) {
	var rows []map[string]any
	if err := s.db.WithContext(ctx).Table(table).Select(columns).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to scan keys of %s: %w", table, err)
	}
	return rows, nil
}
