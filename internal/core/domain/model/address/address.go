// Package address contains the PostalAddress entity used for order origins
// and destinations.
package address

import (
	"errors"
	"strings"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress or RestoreAddress factory functions.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// DefaultCountry is applied when no country is given.
const DefaultCountry = "USA"

// Address is a postal address with a display name label.
//
// Invariants:
//   - Name, street line 1, city, state and zip code are required
//   - Street line 2 may be empty
//   - Country defaults to DefaultCountry
//
// The userCreated flag records provenance: addresses materialized by the
// spreadsheet ingestion pipeline carry false, addresses entered directly
// by a user carry true.
type Address struct {
	id          kernel.UUID
	name        string
	street      string
	street2     string
	city        string
	state       string
	zipCode     string
	country     string
	userCreated bool

	isConstructed bool
}

// NewAddress creates a validated Address with the default country.
func NewAddress(id kernel.UUID, name, street, street2, city, state, zipCode string,
	userCreated bool,
) (*Address, error) {
	a := &Address{
		street2:       street2,
		country:       DefaultCountry,
		userCreated:   userCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setRequired("name", name, &a.name),
		a.setRequired("street", street, &a.street),
		a.setRequired("city", city, &a.city),
		a.setRequired("state", state, &a.state),
		a.setRequired("zipCode", zipCode, &a.zipCode),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an Address from persistence, including its
// stored country.
func RestoreAddress(id kernel.UUID, name, street, street2, city, state, zipCode, country string,
	userCreated bool,
) (*Address, error) {
	a, err := NewAddress(id, name, street, street2, city, state, zipCode, userCreated)
	if err != nil {
		return nil, err
	}
	if country != "" {
		a.country = country
	}
	return a, nil
}

// Validate ensures the Address was created through a factory function.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// Name returns the display name label.
func (a *Address) Name() string {
	return a.name
}

// Street returns the first street line.
func (a *Address) Street() string {
	return a.street
}

// Street2 returns the second street line, possibly empty.
func (a *Address) Street2() string {
	return a.street2
}

// City returns the city.
func (a *Address) City() string {
	return a.city
}

// State returns the state or region abbreviation.
func (a *Address) State() string {
	return a.state
}

// ZipCode returns the postal code as entered, preserving leading zeros.
func (a *Address) ZipCode() string {
	return a.zipCode
}

// Country returns the country, defaulting to DefaultCountry.
func (a *Address) Country() string {
	return a.country
}

// IsUserCreated reports whether the address was entered directly by a user
// rather than materialized by the ingestion pipeline.
func (a *Address) IsUserCreated() bool {
	return a.userCreated
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setRequired(param, value string, target *string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*target = value
	return nil
}
