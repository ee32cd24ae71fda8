// Package party contains the Party entity: one side of an order, either the
// sender or the recipient.
package party

import (
	"errors"
	"strings"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/errs"
)

// ErrPartyIsNotConstructed is returned when a Party instance was not created
// through the NewParty or RestoreParty factory functions.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

// Party is a person on one end of an order. First name is required;
// last name may be empty.
type Party struct {
	id        kernel.UUID
	firstName string
	lastName  string

	isConstructed bool
}

// NewParty creates a validated Party. The first name must be non-blank;
// the last name defaults to empty.
func NewParty(id kernel.UUID, firstName, lastName string) (*Party, error) {
	p := &Party{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setFirstName(firstName),
	); err != nil {
		return nil, err
	}
	p.lastName = lastName

	return p, nil
}

// RestoreParty reconstructs a Party from persistence.
func RestoreParty(id kernel.UUID, firstName, lastName string) (*Party, error) {
	return NewParty(id, firstName, lastName)
}

// Validate ensures the Party was created through a factory function.
func (p *Party) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

// ID returns the party's unique identifier.
func (p *Party) ID() kernel.UUID {
	return p.id
}

// FirstName returns the party's first name.
func (p *Party) FirstName() string {
	return p.firstName
}

// LastName returns the party's last name, possibly empty.
func (p *Party) LastName() string {
	return p.lastName
}

// DisplayName returns the combined name used for address labels:
// first and last name joined by a space, with trailing space trimmed
// when the last name is empty.
func (p *Party) DisplayName() string {
	return strings.TrimSpace(p.firstName + " " + p.lastName)
}

func (p *Party) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Party) setFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	p.firstName = firstName
	return nil
}
