package order

import (
	"errors"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root tying one shipment together: the sender and
// recipient parties, the origin and destination addresses, the package, and
// the shipping provider that will carry it.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, both parties, both addresses,
//     and the package
//   - Belongs to at most one job; manually created orders have none
//   - The shipping provider is optional (it is detached rather than cascaded
//     when a provider is removed)
//   - Phone numbers are optional and default to empty
type Order struct {
	id            kernel.UUID
	jobID         *kernel.UUID
	senderID      kernel.UUID
	recipientID   kernel.UUID
	fromAddressID kernel.UUID
	toAddressID   kernel.UUID
	packageID     kernel.UUID
	providerID    *kernel.UUID
	phoneNumber   string
	phoneNumber2  string

	isConstructed bool
}

// NewOrder creates a validated Order referencing already-identified entities.
// jobID and providerID may be nil; every other identifier must be valid.
func NewOrder(
	id kernel.UUID,
	jobID *kernel.UUID,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	fromAddressID kernel.UUID,
	toAddressID kernel.UUID,
	packageID kernel.UUID,
	providerID *kernel.UUID,
	phoneNumber string,
	phoneNumber2 string,
) (*Order, error) {
	o := &Order{
		phoneNumber:   phoneNumber,
		phoneNumber2:  phoneNumber2,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID("id", id, &o.id),
		o.setID("senderID", senderID, &o.senderID),
		o.setID("recipientID", recipientID, &o.recipientID),
		o.setID("fromAddressID", fromAddressID, &o.fromAddressID),
		o.setID("toAddressID", toAddressID, &o.toAddressID),
		o.setID("packageID", packageID, &o.packageID),
		o.setOptionalID(jobID, &o.jobID),
		o.setOptionalID(providerID, &o.providerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id kernel.UUID,
	jobID *kernel.UUID,
	senderID kernel.UUID,
	recipientID kernel.UUID,
	fromAddressID kernel.UUID,
	toAddressID kernel.UUID,
	packageID kernel.UUID,
	providerID *kernel.UUID,
	phoneNumber string,
	phoneNumber2 string,
) (*Order, error) {
	return NewOrder(id, jobID, senderID, recipientID, fromAddressID, toAddressID,
		packageID, providerID, phoneNumber, phoneNumber2)
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// JobID returns the identifier of the owning job, or nil for manually
// created orders.
func (o *Order) JobID() *kernel.UUID {
	return o.jobID
}

// SenderID returns the identifier of the sending party.
func (o *Order) SenderID() kernel.UUID {
	return o.senderID
}

// RecipientID returns the identifier of the receiving party.
func (o *Order) RecipientID() kernel.UUID {
	return o.recipientID
}

// FromAddressID returns the identifier of the origin address.
func (o *Order) FromAddressID() kernel.UUID {
	return o.fromAddressID
}

// ToAddressID returns the identifier of the destination address.
func (o *Order) ToAddressID() kernel.UUID {
	return o.toAddressID
}

// PackageID returns the identifier of the shipped package.
func (o *Order) PackageID() kernel.UUID {
	return o.packageID
}

// ProviderID returns the identifier of the shipping provider, or nil when
// the order has no provider.
func (o *Order) ProviderID() *kernel.UUID {
	return o.providerID
}

// PhoneNumber returns the primary contact phone number, possibly empty.
func (o *Order) PhoneNumber() string {
	return o.phoneNumber
}

// PhoneNumber2 returns the secondary contact phone number, possibly empty.
func (o *Order) PhoneNumber2() string {
	return o.phoneNumber2
}

// AssignProvider replaces the order's shipping provider.
func (o *Order) AssignProvider(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}
	o.providerID = &providerID
	return nil
}

// DetachProvider removes the order's shipping provider. Orders without a
// provider are excluded from job cost aggregation.
func (o *Order) DetachProvider() {
	o.providerID = nil
}

func (o *Order) setID(param string, id kernel.UUID, target *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	*target = id
	return nil
}

func (o *Order) setOptionalID(id *kernel.UUID, target **kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	value := *id
	*target = &value
	return nil
}
