package ports

import (
	"context"

	"shiporders/internal/core/domain/model/job"
	"shiporders/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for import jobs.
type JobRepository interface {
	// Add persists a new job. The creation timestamp is assigned by storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)
}
