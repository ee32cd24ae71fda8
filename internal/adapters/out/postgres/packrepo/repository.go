package packrepo

import (
	"context"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/pack"

	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll saves a batch of new packages in a single insert.
func (r *GormPackageRepository) AddAll(ctx context.Context, packages []*pack.Package) error {
	if len(packages) == 0 {
		return nil
	}

	dtos := make([]PackageDTO, 0, len(packages))
	for _, p := range packages {
		if err := p.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(p))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, p := range packages {
		r.tracker.TrackAggregate(p.ID(), p)
	}
	return nil
}
