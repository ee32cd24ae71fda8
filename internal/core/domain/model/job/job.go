// Package job contains the Job entity: the batching envelope that groups all
// orders created by one spreadsheet ingestion run.
package job

import (
	"errors"

	"shiporders/internal/core/domain/model/kernel"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through the NewJob or RestoreJob factory functions.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

// Job carries no state beyond its identity; its creation timestamp is
// assigned by the storage layer at commit, and its total cost is derived
// from its orders on the query side.
type Job struct {
	id kernel.UUID

	isConstructed bool
}

// NewJob creates a validated Job.
func NewJob(id kernel.UUID) (*Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Job{id: id, isConstructed: true}, nil
}

// RestoreJob reconstructs a Job from persistence.
func RestoreJob(id kernel.UUID) (*Job, error) {
	return NewJob(id)
}

// Validate ensures the Job was created through a factory function.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}
