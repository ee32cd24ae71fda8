package addressrepo

import (
	"context"

	"shiporders/internal/core/domain/model/address"
	"shiporders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll saves a batch of new addresses in a single insert.
func (r *GormAddressRepository) AddAll(ctx context.Context, addresses []*address.Address) error {
	if len(addresses) == 0 {
		return nil
	}

	dtos := make([]AddressDTO, 0, len(addresses))
	for _, a := range addresses {
		if err := a.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(a))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, a := range addresses {
		r.tracker.TrackAggregate(a.ID(), a)
	}
	return nil
}
