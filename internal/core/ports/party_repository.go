package ports

import (
	"context"

	"shiporders/internal/core/domain/model/party"
)

// PartyRepository defines the persistence contract for order parties.
type PartyRepository interface {
	// AddAll persists a batch of new parties in a single insert,
	// preserving slice order.
	AddAll(ctx context.Context, parties []*party.Party) error
}
