package onboarding

import (
	"context"
	"fmt"

	"school-onboarding/core/utils"
	"school-onboarding/core/workbook"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Orchestrator drives one load pass: sheets in dependency order, each row
// wired through the resolver and the upsert engine, tallied into a report.
type Orchestrator struct {
	source   *workbook.Source
	store    *Store
	resolver *Resolver
	upserter *Upserter
	logger   *zap.Logger

	// schoolID is the school of the first schools-sheet row; the
	// school-scoped sheets (grades, subjects, teachers) attach to it.
	schoolID  int64
	hasSchool bool
}

// NewOrchestrator wires a load pass over an open workbook and database
// handle. All state is scoped to this one pass.
func NewOrchestrator(db *gorm.DB, source *workbook.Source, logger *zap.Logger) *Orchestrator {
	store := NewStore(db)
	resolver := NewResolver()
	return &Orchestrator{
		source:   source,
		store:    store,
		resolver: resolver,
		upserter: NewUpserter(store, resolver, logger),
		logger:   logger,
	}
}

// Run executes the load pass. Row-level failures (malformed rows, unresolved
// references, rejected writes) are recorded in the report and the pass
// continues; a missing required sheet or a failing store scan aborts the
// pass, returning the report built so far alongside the error. Writes of
// already-completed sheets stay committed.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	report := NewReport()
	o.logger.Info("starting load pass", zap.String("run_id", report.RunID))

	if err := o.preseed(ctx); err != nil {
		report.Finish()
		return report, err
	}

	for _, spec := range loadOrder {
		sheet, err := o.source.Sheet(spec.Sheet)
		if err != nil {
			report.Finish()
			return report, fmt.Errorf("required sheet %q: %w", spec.Sheet, err)
		}

		sr := report.StartSheet(spec.Entity, spec.Sheet)
		for i, row := range sheet.Rows() {
			rowNum := i + 1
			plan, err := spec.build(o, row)
			if err != nil {
				sr.Fail(rowNum, err)
				continue
			}
			id, outcome, err := o.upserter.Upsert(ctx, Meta(spec.Entity), plan.Fields)
			if err != nil {
				sr.Fail(rowNum, err)
				continue
			}
			for _, alias := range plan.Aliases {
				o.resolver.Register(spec.Entity, alias, id)
			}
			if spec.Entity == EntitySchool && !o.hasSchool {
				o.schoolID = id
				o.hasSchool = true
			}
			sr.Tally(outcome)
		}

		o.logger.Info("sheet loaded",
			zap.String("sheet", spec.Sheet),
			zap.Int("inserted", sr.Inserted),
			zap.Int("updated", sr.Updated),
			zap.Int("unchanged", sr.Unchanged),
			zap.Int("failed", len(sr.Failed)),
		)
	}

	report.Finish()
	return report, nil
}

// preseed registers the natural keys of every already-stored record so this
// pass recognizes rows loaded by earlier runs.
func (o *Orchestrator) preseed(ctx context.Context) error {
	for _, spec := range loadOrder {
		meta := Meta(spec.Entity)
		columns := append([]string{meta.IDColumn}, meta.KeyColumns...)
		rows, err := o.store.SelectKeys(ctx, meta.Table, columns)
		if err != nil {
			return err
		}
		for _, row := range rows {
			parts := make([]any, len(meta.KeyColumns))
			for i, col := range meta.KeyColumns {
				parts[i] = row[col]
			}
			o.resolver.Register(meta.Entity, KeyOf(parts...), utils.ToInt64(row[meta.IDColumn]))
		}
		if len(rows) > 0 {
			o.logger.Debug("preseeded keys",
				zap.String("entity", string(meta.Entity)),
				zap.Int("count", len(rows)),
			)
		}
	}
	return nil
}
