package ingest

import "io"

// pipelineGates are the validation rules, in execution order.
var pipelineGates = []gate{
	structureGate{},
	requiredFieldsGate{},
}

// Upload is the outcome of running the ingestion pipeline over one file.
// Validation happens once, in Prepare; IsValid, Errors and Rows are pure
// reads and stay consistent however often they are called.
type Upload struct {
	rows   []BuiltRow
	report *Report
}

// Prepare parses and validates an uploaded file. It never returns an error:
// every failure, from an unreadable file to a bad cell, lands in the
// upload's error report.
func Prepare(r io.Reader) *Upload {
	u := &Upload{report: NewReport()}

	table, err := ReadTable(r)
	if err != nil {
		u.report.AddGeneral("The file could not be read as a CSV.")
		return u
	}

	for _, g := range pipelineGates {
		g.validateTable(table, u.report)
	}
	if u.report.HasGeneralErrors() {
		return u
	}

	remapHeaders(table)

	for i := 0; i < table.RowCount(); i++ {
		row := table.Row(i)
		index := i + firstDataRowIndex

		for _, g := range pipelineGates {
			g.validateRow(row, index, u.report)
		}
		if u.report.HasRowErrors(index) {
			continue
		}

		built, err := buildRow(row)
		if err != nil {
			u.report.AddRow(index, "Invalid data - "+err.Error())
			continue
		}
		u.rows = append(u.rows, built)
	}

	return u
}

// IsValid reports whether the upload passed every stage. Only a fully valid
// upload may be committed.
func (u *Upload) IsValid() bool {
	return u.report.IsEmpty()
}

// Errors returns the accumulated error map keyed by "general" or by row
// reporting index.
func (u *Upload) Errors() map[string][]string {
	return u.report.Entries()
}

// Rows returns the built entities of the rows that passed every stage, in
// file order.
func (u *Upload) Rows() []BuiltRow {
	return u.rows
}
