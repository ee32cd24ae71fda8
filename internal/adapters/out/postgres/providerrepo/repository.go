package providerrepo

import (
	"context"
	"errors"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/provider"
	"shiporders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProviderRepository implements ProviderRepository using GORM.
type GormProviderRepository struct {
	db *gorm.DB
}

// NewGormProviderRepository creates a new GORM shipping provider repository.
func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// Add saves a new shipping provider to the database. Providers are reference
// data seeded outside the import flow.
func (r *GormProviderRepository) Add(ctx context.Context, aggregate *provider.ShippingProvider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a shipping provider by ID.
func (r *GormProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.ShippingProvider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProviderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shippingProvider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
