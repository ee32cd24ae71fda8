package partyrepo

import (
	"context"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/party"

	"gorm.io/gorm"
)

// GormPartyRepository implements PartyRepository using GORM.
type GormPartyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartyRepository creates a new GORM party repository.
func NewGormPartyRepository(db *gorm.DB, tracker aggregateTracker) *GormPartyRepository {
	return &GormPartyRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll saves a batch of new parties in a single insert.
func (r *GormPartyRepository) AddAll(ctx context.Context, parties []*party.Party) error {
	if len(parties) == 0 {
		return nil
	}

	dtos := make([]PartyDTO, 0, len(parties))
	for _, p := range parties {
		if err := p.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(p))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, p := range parties {
		r.tracker.TrackAggregate(p.ID(), p)
	}
	return nil
}
