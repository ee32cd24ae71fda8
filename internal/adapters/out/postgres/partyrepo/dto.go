// Package partyrepo provides the persistence layer for order parties.
package partyrepo

import (
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// PartyDTO represents the database structure for persisting parties.
type PartyDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

// TableName specifies the database table name for party entities.
func (PartyDTO) TableName() string {
	return "parties"
}

func fromDomain(p *party.Party) PartyDTO {
	return PartyDTO{
		ID:        p.ID().Bytes(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
	}
}

func toDomain(dto PartyDTO) (*party.Party, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return party.RestoreParty(id, dto.FirstName, dto.LastName)
}
