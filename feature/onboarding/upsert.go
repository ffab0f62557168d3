package onboarding

import (
	"context"
	"fmt"

	"school-onboarding/core/utils"

	"go.uber.org/zap"
)

// Outcome is the tri-state result of an upsert.
type Outcome string

const (
	OutcomeInserted  Outcome = "inserted"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

// Upserter inserts or updates records keyed by natural key and keeps the
// resolver's key-to-id mappings current.
type Upserter struct {
	store    *Store
	resolver *Resolver
	logger   *zap.Logger
}

// NewUpserter creates an upsert engine over the store and resolver.
func NewUpserter(store *Store, resolver *Resolver, logger *zap.Logger) *Upserter {
	return &Upserter{store: store, resolver: resolver, logger: logger}
}

// Upsert writes one record: insert when the natural key is absent, update
// when present with differing non-key fields, and no write at all when the
// stored values already match (so a second pass over unchanged input performs
// zero writes). Foreign-key fields in fields must already be resolved ids.
// Returns the generated identifier alongside the outcome.
func (u *Upserter) Upsert(ctx context.Context, meta EntityMeta, fields map[string]any) (int64, Outcome, error) {
	key := make(map[string]any, len(meta.KeyColumns))
	keyParts := make([]any, 0, len(meta.KeyColumns))
	for _, col := range meta.KeyColumns {
		v, ok := fields[col]
		if !ok || v == nil {
			return 0, "", &MalformedRowError{Field: col}
		}
		key[col] = v
		keyParts = append(keyParts, v)
	}
	naturalKey := KeyOf(keyParts...)

	existing, found, err := u.store.FindByKey(ctx, meta.Table, key)
	if err != nil {
		return 0, "", err
	}

	if !found {
		if err := u.store.Insert(ctx, meta.Table, fields); err != nil {
			return 0, "", err
		}
		inserted, ok, err := u.store.FindByKey(ctx, meta.Table, key)
		if err != nil {
			return 0, "", err
		}
		if !ok {
			return 0, "", fmt.Errorf("row vanished after insert into %s", meta.Table)
		}
		id := utils.ToInt64(inserted[meta.IDColumn])
		u.resolver.Register(meta.Entity, naturalKey, id)
		u.logger.Debug("inserted record",
			zap.String("entity", string(meta.Entity)),
			zap.Int64("id", id),
		)
		return id, OutcomeInserted, nil
	}

	id := utils.ToInt64(existing[meta.IDColumn])
	u.resolver.Register(meta.Entity, naturalKey, id)

	changed := map[string]any{}
	for col, val := range fields {
		if _, isKey := key[col]; isKey {
			continue
		}
		if !valuesEqual(val, existing[col]) {
			changed[col] = val
		}
	}
	if len(changed) == 0 {
		return id, OutcomeUnchanged, nil
	}

	if err := u.store.Update(ctx, meta.Table, key, changed); err != nil {
		return 0, "", err
	}
	u.logger.Debug("updated record",
		zap.String("entity", string(meta.Entity)),
		zap.Int64("id", id),
		zap.Int("fields", len(changed)),
	)
	return id, OutcomeUpdated, nil
}
