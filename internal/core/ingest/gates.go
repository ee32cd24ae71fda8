package ingest

import (
	"fmt"
	"strings"
)

// templateColumnSnapshot is the exact set of normalized column names produced
// by parsing the distributed upload template. The "_duplicated_0" suffixes
// come from the reader's name disambiguation: the template repeats its
// header text for the recipient side.
var templateColumnSnapshot = []string{
	"first name",
	"last name",
	"address",
	"address2",
	"city",
	"zip/postal code",
	"abbreviation",
	"first name_duplicated_0",
	"last name_duplicated_0",
	"address_duplicated_0",
	"address2_duplicated_0",
	"city_duplicated_0",
	"zip/postal code_duplicated_0",
	"abbreviation_duplicated_0",
	"lbs",
	"oz",
	"length",
	"width",
	"height",
	"phone num1",
	"phone num2",
	"order no",
	"item-sku",
}

// canonicalColumns are the field names the template columns map to, in
// template order. The remap is positional, which is what lets the repeated
// header text resolve to distinct "from" and "to" fields.
var canonicalColumns = []string{
	"from_first_name",
	"from_last_name",
	"from_address",
	"from_address_2",
	"from_city",
	"from_zip_code",
	"from_state",
	"to_first_name",
	"to_last_name",
	"to_address",
	"to_address_2",
	"to_city",
	"to_zip_code",
	"to_state",
	"weight_lbs",
	"weight_oz",
	"length",
	"width",
	"height",
	"phone_number",
	"phone_number_2",
	"order_number",
	"item_sku",
}

// requiredRowFields are the canonical fields every data row must populate.
// A whitespace-only cell counts as absent.
var requiredRowFields = []string{
	"from_first_name",
	"from_address",
	"from_city",
	"from_zip_code",
	"from_state",
	"to_first_name",
	"to_address",
	"to_city",
	"to_zip_code",
	"to_state",
	"length",
	"width",
	"height",
}

// gate is one validation rule of the pipeline. Table-scope gates run before
// the header remap and may halt the pipeline by recording general errors;
// row-scope gates run on every remapped data row and never halt.
type gate interface {
	validateTable(t *Table, rep *Report)
	validateRow(row Row, index int, rep *Report)
}

// structureGate verifies the parsed table against the template snapshot.
// It records at most one error: the cardinality message when columns are
// missing outright, otherwise the first missing or renamed column.
type structureGate struct{}

func (structureGate) validateTable(t *Table, rep *Report) {
	if t.ColumnCount() < len(templateColumnSnapshot) {
		rep.AddGeneral("Invalid Structure: CSV has fewer columns than the required template.")
		return
	}
	for _, name := range templateColumnSnapshot {
		if !t.HasColumn(name) {
			rep.AddGeneral(fmt.Sprintf("Invalid Structure: Missing or renamed column '%s'.", name))
			return
		}
	}
}

func (structureGate) validateRow(Row, int, *Report) {}

// requiredFieldsGate checks that every required canonical field of a data
// row is populated, reporting all misses for the row in one message.
type requiredFieldsGate struct{}

func (requiredFieldsGate) validateTable(*Table, *Report) {}

func (requiredFieldsGate) validateRow(row Row, index int, rep *Report) {
	var missing []string
	for _, field := range requiredRowFields {
		if strings.TrimSpace(row[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		rep.AddRow(index, "Missing required fields: "+strings.Join(missing, ", "))
	}
}

// remapHeaders renames the template columns to their canonical field names
// by position. Columns beyond the template's width keep their parsed names
// and are ignored downstream. Must only run after the structure gate passed.
func remapHeaders(t *Table) {
	for i, name := range canonicalColumns {
		t.Rename(i, name)
	}
}
