package onboarding

import (
	"time"

	"github.com/google/uuid"
)

// Report is the terminal output of one load pass: per-sheet outcome tallies
// plus every row-level failure with its reason.
type Report struct {
	RunID      string         `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Sheets     []*SheetReport `json:"sheets"`
}

// SheetReport tallies one sheet's outcomes.
type SheetReport struct {
	Entity    string       `json:"entity"`
	Sheet     string       `json:"sheet"`
	Inserted  int          `json:"inserted"`
	Updated   int          `json:"updated"`
	Unchanged int          `json:"unchanged"`
	Failed    []RowFailure `json:"failed"`
}

// RowFailure records one skipped row. Row is the 1-based data row ordinal
// within the sheet (header excluded).
type RowFailure struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// NewReport starts a report for a fresh load pass.
func NewReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

// StartSheet appends and returns the tally for the next sheet in load order.
func (r *Report) StartSheet(entity Entity, sheet string) *SheetReport {
	sr := &SheetReport{
		Entity: string(entity),
		Sheet:  sheet,
		Failed: []RowFailure{},
	}
	r.Sheets = append(r.Sheets, sr)
	return sr
}

// Finish stamps the completion time.
func (r *Report) Finish() {
	r.FinishedAt = time.Now().UTC()
}

// TotalFailed counts row-level failures across all sheets.
func (r *Report) TotalFailed() int {
	n := 0
	for _, s := range r.Sheets {
		n += len(s.Failed)
	}
	return n
}

// Sheet returns the tally for an entity, or nil if that sheet never started.
func (r *Report) Sheet(entity Entity) *SheetReport {
	for _, s := range r.Sheets {
		if s.Entity == string(entity) {
			return s
		}
	}
	return nil
}

// Tally records one successful outcome.
func (sr *SheetReport) Tally(o Outcome) {
	switch o {
	case OutcomeInserted:
		sr.Inserted++
	case OutcomeUpdated:
		sr.Updated++
	case OutcomeUnchanged:
		sr.Unchanged++
	}
}

// Fail records one skipped row.
func (sr *SheetReport) Fail(row int, err error) {
	sr.Failed = append(sr.Failed, RowFailure{Row: row, Reason: err.Error()})
}
