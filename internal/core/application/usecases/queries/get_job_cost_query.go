// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return response DTOs,
// bypassing the domain aggregates.
package queries

import (
	"errors"

	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetJobCostQueryIsNotConstructed = errors.New(
	"GetJobCostQuery must be created via NewGetJobCostQuery constructor",
)

// GetJobCostQuery retrieves the total shipping cost of one import job.
// Only orders with an assigned provider contribute to the total; orders whose
// provider was removed are excluded rather than failing the query.
type GetJobCostQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobCostQuery creates a query for the given job identifier.
func NewGetJobCostQuery(jobID kernel.UUID) (GetJobCostQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobCostQuery{}, err
	}
	return GetJobCostQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetJobCostQueryIsNotConstructed if validation fails.
func (q GetJobCostQuery) Validate() error {
	return q.guard.Validate(ErrGetJobCostQueryIsNotConstructed)
}

// JobID returns the identifier of the job being costed.
func (q GetJobCostQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetJobCostQueryResponse is the costing summary of one job.
type GetJobCostQueryResponse struct {
	JobID        kernel.UUID
	CostedOrders int
	TotalCost    decimal.Decimal
}
