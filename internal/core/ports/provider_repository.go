package ports

import (
	"context"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for shipping providers.
type ProviderRepository interface {
	// Get retrieves a shipping provider by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such provider exists.
	Get(ctx context.Context, id kernel.UUID) (*provider.ShippingProvider, error)
}
