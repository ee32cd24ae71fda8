// Package order contains the Order aggregate root.
//
// An order links one sender and one recipient party, an origin and a
// destination address, a package, and optionally a shipping provider and an
// owning job. Orders created by the spreadsheet ingestion pipeline always
// belong to the job created in the same run; manually created orders may
// have no job at all.
package order
