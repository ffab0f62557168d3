// Package onboarding loads school onboarding workbooks into the relational
// schema.
//
// One load pass reads the workbook's sheets in dependency order (schools
// first, payslips last), resolves every foreign key through natural keys
// registered as parents are written, and upserts each row so repeated runs
// never duplicate records.
//
// # Components
//
//   - Resolver: natural-key to generated-id mappings per entity, pre-seeded
//     from the store and grown as rows are upserted.
//   - Upserter: insert-or-update keyed by natural key with a tri-state
//     outcome (Inserted, Updated, Unchanged); identical input performs no
//     write at all.
//   - Orchestrator: drives the sheets, wires rows through the resolver and
//     upserter, and tallies a per-sheet Report.
//   - Store: the thin query/insert/update view of the external schema.
//
// # Failure model
//
// Malformed rows, unresolved references, and store-rejected writes are
// row-level: the row is recorded in the report and the sheet continues. A
// missing required sheet is fatal to the pass; completed sheets' writes stay
// committed.
package onboarding
