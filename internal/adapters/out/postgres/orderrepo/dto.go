// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Foreign keys to the job and provider are nullable: manually created orders
// have no job, and deleting a provider detaches its orders instead of
// cascading into them. Seq is assigned by the database sequence in insert
// order; it is what keeps a batch readable back in file order, since every
// row of one bulk insert shares the same creation timestamp.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq           int64      `gorm:"autoIncrement;not null;uniqueIndex"`
	JobID         *uuid.UUID `gorm:"type:uuid;index"`
	SenderID      uuid.UUID  `gorm:"type:uuid"`
	RecipientID   uuid.UUID  `gorm:"type:uuid"`
	FromAddressID uuid.UUID  `gorm:"type:uuid"`
	ToAddressID   uuid.UUID  `gorm:"type:uuid"`
	PackageID     uuid.UUID  `gorm:"type:uuid"`
	ProviderID    *uuid.UUID `gorm:"type:uuid;index"`
	PhoneNumber   string
	PhoneNumber2  string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		JobID:         optionalUUID(aggregate.JobID()),
		SenderID:      aggregate.SenderID().Bytes(),
		RecipientID:   aggregate.RecipientID().Bytes(),
		FromAddressID: aggregate.FromAddressID().Bytes(),
		ToAddressID:   aggregate.ToAddressID().Bytes(),
		PackageID:     aggregate.PackageID().Bytes(),
		ProviderID:    optionalUUID(aggregate.ProviderID()),
		PhoneNumber:   aggregate.PhoneNumber(),
		PhoneNumber2:  aggregate.PhoneNumber2(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}
	fromAddressID, err := kernel.UUIDFromBytes(dto.FromAddressID[:])
	if err != nil {
		return nil, err
	}
	toAddressID, err := kernel.UUIDFromBytes(dto.ToAddressID[:])
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := optionalKernelUUID(dto.JobID)
	if err != nil {
		return nil, err
	}
	providerID, err := optionalKernelUUID(dto.ProviderID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, jobID, senderID, recipientID,
		fromAddressID, toAddressID, packageID, providerID,
		dto.PhoneNumber, dto.PhoneNumber2)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
