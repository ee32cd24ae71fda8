// Package ports defines repository interfaces for the shipping domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddAll persists a batch of new order aggregates in a single insert,
	// preserving slice order.
	AddAll(ctx context.Context, aggregates []*order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByJob retrieves all orders created by the given import job.
	GetByJob(ctx context.Context, jobID kernel.UUID) ([]*order.Order, error)
}
