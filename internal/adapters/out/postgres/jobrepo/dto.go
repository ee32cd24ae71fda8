// Package jobrepo provides the persistence layer for import jobs.
package jobrepo

import (
	"time"

	"shiporders/internal/core/domain/model/job"
	"shiporders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting import jobs.
// The creation timestamp is assigned by GORM at insert time, not by the
// domain layer.
type JobDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(aggregate *job.Job) JobDTO {
	return JobDTO{
		ID: aggregate.ID().Bytes(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id)
}
