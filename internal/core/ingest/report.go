package ingest

import (
	"sort"
	"strconv"
)

// GeneralKey is the error-map key for failures not attributable to a
// specific data row: unreadable files, structural mismatches, and
// commit-stage failures.
const GeneralKey = "general"

// Report accumulates validation errors across pipeline stages. Keys are
// either GeneralKey or the decimal reporting index of a data row; values
// keep insertion order so callers can display messages as found.
type Report struct {
	entries map[string][]string
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{entries: make(map[string][]string)}
}

// AddGeneral records an error not attributable to a specific row.
func (r *Report) AddGeneral(message string) {
	r.entries[GeneralKey] = append(r.entries[GeneralKey], message)
}

// AddRow records an error against the data row with the given reporting index.
func (r *Report) AddRow(index int, message string) {
	key := strconv.Itoa(index)
	r.entries[key] = append(r.entries[key], message)
}

// HasGeneralErrors reports whether any general-scope error was recorded.
func (r *Report) HasGeneralErrors() bool {
	return len(r.entries[GeneralKey]) > 0
}

// HasRowErrors reports whether the row with the given reporting index has
// any recorded errors.
func (r *Report) HasRowErrors(index int) bool {
	return len(r.entries[strconv.Itoa(index)]) > 0
}

// IsEmpty reports whether no errors of any scope were recorded.
func (r *Report) IsEmpty() bool {
	return len(r.entries) == 0
}

// Entries returns a copy of the error map, safe for callers to mutate.
func (r *Report) Entries() map[string][]string {
	out := make(map[string][]string, len(r.entries))
	for key, messages := range r.entries {
		out[key] = append([]string(nil), messages...)
	}
	return out
}

// Keys returns all error keys, with "general" first and row keys in
// ascending numeric order. Used for stable display and logging.
func (r *Report) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		if key == GeneralKey {
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	if r.HasGeneralErrors() {
		keys = append([]string{GeneralKey}, keys...)
	}
	return keys
}
