// Package addressrepo provides the persistence layer for postal addresses.
package addressrepo

import (
	"shiporders/internal/core/domain/model/address"
	"shiporders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting addresses.
type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Street      string
	Street2     string
	City        string
	State       string
	ZipCode     string
	Country     string
	UserCreated bool
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(a *address.Address) AddressDTO {
	return AddressDTO{
		ID:          a.ID().Bytes(),
		Name:        a.Name(),
		Street:      a.Street(),
		Street2:     a.Street2(),
		City:        a.City(),
		State:       a.State(),
		ZipCode:     a.ZipCode(),
		Country:     a.Country(),
		UserCreated: a.IsUserCreated(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return address.RestoreAddress(id, dto.Name, dto.Street, dto.Street2,
		dto.City, dto.State, dto.ZipCode, dto.Country, dto.UserCreated)
}
