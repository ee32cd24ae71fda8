// Package ingest implements the spreadsheet ingestion pipeline: it turns an
// untrusted CSV export into validated, unsaved domain entities ready for an
// atomic batch commit.
//
// The pipeline runs in fixed stages:
//
//	reader -> structure gate -> header remap -> row gate -> record builder
//
// The reader parses the upload into an ordered, column-indexed table,
// skipping the template's title row and normalizing header text. The
// structure gate compares the normalized column names against the template
// snapshot and halts the pipeline on mismatch. The remapper then renames the
// template columns to canonical field names positionally, because the
// template deliberately repeats header text for the "from" and "to" sides.
// The row gate checks required fields on every data row without halting, and
// the builder materializes parties, addresses and packages for the rows that
// pass, converting coercion failures into row-scoped errors.
//
// All findings accumulate in a Report keyed by "general" or by the 1-based
// reporting index of the offending data row; the first data row reports as
// index 2 because the title row is skipped and the header occupies index 1.
// Persistence is deliberately out of scope here: the commands layer owns the
// transactional commit.
package ingest
