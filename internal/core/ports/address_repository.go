package ports

import (
	"context"

	"shiporders/internal/core/domain/model/address"
)

// AddressRepository defines the persistence contract for postal addresses.
type AddressRepository interface {
	// AddAll persists a batch of new addresses in a single insert,
	// preserving slice order.
	AddAll(ctx context.Context, addresses []*address.Address) error
}
