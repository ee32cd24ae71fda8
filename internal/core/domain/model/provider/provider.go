// Package provider contains the ShippingProvider entity. Providers are
// provisioned externally; the ingestion pipeline only resolves them.
package provider

import (
	"errors"
	"strings"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProviderIsNotConstructed is returned when a ShippingProvider instance was
// not created through the NewShippingProvider or RestoreShippingProvider
// factory functions.
var ErrProviderIsNotConstructed = errors.New(
	"ShippingProvider must be created via NewShippingProvider constructor")

// ShippingProvider is a carrier with a per-pound shipping rate. The rate is
// held as an exact decimal so cost aggregation never accumulates float error.
type ShippingProvider struct {
	id           kernel.UUID
	name         string
	description  string
	costPerPound decimal.Decimal

	isConstructed bool
}

// NewShippingProvider creates a validated ShippingProvider.
// The rate must not be negative.
func NewShippingProvider(id kernel.UUID, name, description string,
	costPerPound decimal.Decimal,
) (*ShippingProvider, error) {
	p := &ShippingProvider{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCostPerPound(costPerPound),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreShippingProvider reconstructs a ShippingProvider from persistence.
func RestoreShippingProvider(id kernel.UUID, name, description string,
	costPerPound decimal.Decimal,
) (*ShippingProvider, error) {
	return NewShippingProvider(id, name, description, costPerPound)
}

// Validate ensures the ShippingProvider was created through a factory function.
func (p *ShippingProvider) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProviderIsNotConstructed
	}
	return nil
}

// ID returns the provider's unique identifier.
func (p *ShippingProvider) ID() kernel.UUID {
	return p.id
}

// Name returns the provider name.
func (p *ShippingProvider) Name() string {
	return p.name
}

// Description returns the optional description, possibly empty.
func (p *ShippingProvider) Description() string {
	return p.description
}

// CostPerPound returns the exact decimal shipping rate per pound.
func (p *ShippingProvider) CostPerPound() decimal.Decimal {
	return p.costPerPound
}

func (p *ShippingProvider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *ShippingProvider) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *ShippingProvider) setCostPerPound(costPerPound decimal.Decimal) error {
	if costPerPound.IsNegative() {
		return errs.NewValueIsInvalidError("costPerPound")
	}
	p.costPerPound = costPerPound
	return nil
}
