// Package pack contains the Package entity: the physical parcel shipped by
// an order. Weight is stored in ounces; dimensions are whole units.
package pack

import (
	"errors"
	"fmt"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through the NewPackage or RestorePackage factory functions.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// OuncesPerPound is the conversion factor between the two weight inputs
// accepted by the spreadsheet template.
const OuncesPerPound = 16

// Package is a parcel with integer dimensions and a total weight in ounces.
//
// Invariants:
//   - Length, width and height must be positive
//   - Weight must not be negative (a zero weight is allowed when the
//     template leaves both weight columns blank)
//   - SKU may be empty
type Package struct {
	id          kernel.UUID
	length      int
	width       int
	height      int
	weightOz    int
	itemSKU     string
	userCreated bool

	isConstructed bool
}

// TotalOunces converts a pounds-and-ounces pair into total ounces.
func TotalOunces(lbs, oz int) int {
	return lbs*OuncesPerPound + oz
}

// NewPackage creates a validated Package.
func NewPackage(id kernel.UUID, length, width, height, weightOz int, itemSKU string,
	userCreated bool,
) (*Package, error) {
	p := &Package{
		itemSKU:       itemSKU,
		userCreated:   userCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDimension("length", length, &p.length),
		p.setDimension("width", width, &p.width),
		p.setDimension("height", height, &p.height),
		p.setWeight(weightOz),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a Package from persistence.
func RestorePackage(id kernel.UUID, length, width, height, weightOz int, itemSKU string,
	userCreated bool,
) (*Package, error) {
	return NewPackage(id, length, width, height, weightOz, itemSKU, userCreated)
}

// Validate ensures the Package was created through a factory function.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// Length returns the package length.
func (p *Package) Length() int {
	return p.length
}

// Width returns the package width.
func (p *Package) Width() int {
	return p.width
}

// Height returns the package height.
func (p *Package) Height() int {
	return p.height
}

// WeightOz returns the total weight in ounces.
func (p *Package) WeightOz() int {
	return p.weightOz
}

// ItemSKU returns the optional stock keeping unit, possibly empty.
func (p *Package) ItemSKU() string {
	return p.itemSKU
}

// IsUserCreated reports whether the package was entered directly by a user
// rather than materialized by the ingestion pipeline.
func (p *Package) IsUserCreated() bool {
	return p.userCreated
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setDimension(param string, value int, target *int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%d is not greater than 0", value))
	}
	*target = value
	return nil
}

func (p *Package) setWeight(weightOz int) error {
	if weightOz < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is negative", weightOz))
	}
	p.weightOz = weightOz
	return nil
}
