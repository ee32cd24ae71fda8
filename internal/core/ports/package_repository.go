package ports

import (
	"context"

	"shiporders/internal/core/domain/model/pack"
)

// PackageRepository defines the persistence contract for packages.
type PackageRepository interface {
	// AddAll persists a batch of new packages in a single insert,
	// preserving slice order.
	AddAll(ctx context.Context, packages []*pack.Package) error
}
