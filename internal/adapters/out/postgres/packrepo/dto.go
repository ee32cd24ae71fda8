// Package packrepo provides the persistence layer for packages.
package packrepo

import (
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/pack"

	"github.com/google/uuid"
)

// PackageDTO represents the database structure for persisting packages.
type PackageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Length      int
	Width       int
	Height      int
	WeightOz    int
	ItemSKU     string
	UserCreated bool
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(p *pack.Package) PackageDTO {
	return PackageDTO{
		ID:          p.ID().Bytes(),
		Length:      p.Length(),
		Width:       p.Width(),
		Height:      p.Height(),
		WeightOz:    p.WeightOz(),
		ItemSKU:     p.ItemSKU(),
		UserCreated: p.IsUserCreated(),
	}
}

func toDomain(dto PackageDTO) (*pack.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pack.RestorePackage(id, dto.Length, dto.Width, dto.Height,
		dto.WeightOz, dto.ItemSKU, dto.UserCreated)
}
