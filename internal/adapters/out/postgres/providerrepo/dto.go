// Package providerrepo provides the persistence layer for shipping providers.
package providerrepo

import (
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/provider"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProviderDTO represents the database structure for persisting shipping
// providers. The per-pound rate is stored as numeric to keep cost math exact.
type ProviderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"uniqueIndex"`
	Description  string
	CostPerPound decimal.Decimal `gorm:"type:numeric(12,4)"`
}

// TableName specifies the database table name for shipping providers.
func (ProviderDTO) TableName() string {
	return "shipping_providers"
}

func fromDomain(p *provider.ShippingProvider) ProviderDTO {
	return ProviderDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		Description:  p.Description(),
		CostPerPound: p.CostPerPound(),
	}
}

func toDomain(dto ProviderDTO) (*provider.ShippingProvider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return provider.RestoreShippingProvider(id, dto.Name, dto.Description, dto.CostPerPound)
}
