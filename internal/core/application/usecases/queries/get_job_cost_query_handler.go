package queries

import (
	"context"

	"shiporders/internal/core/domain/services"
	"shiporders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobCostQueryHandler computes the total shipping cost of an import job.
// The database supplies the raw weight and rate pairs; the exact decimal
// arithmetic happens in the domain cost service.
type GetJobCostQueryHandler struct {
	db *gorm.DB
}

// NewGetJobCostQueryHandler creates a handler for job cost queries.
// Requires a GORM database connection for query execution.
func NewGetJobCostQueryHandler(db *gorm.DB) GetJobCostQueryHandler {
	return GetJobCostQueryHandler{db: db}
}

// Handle executes the cost query. Returns errs.ObjectNotFoundError when the
// job does not exist; a job whose orders all lost their provider costs zero.
func (h GetJobCostQueryHandler) Handle(
	ctx context.Context,
	query GetJobCostQuery,
) (GetJobCostQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobCostQueryResponse{}, err
	}

	var jobCount int64
	if err := h.db.WithContext(ctx).
		Table("jobs").
		Where("id = ?", query.JobID().String()).
		Count(&jobCount).Error; err != nil {
		return GetJobCostQueryResponse{}, err
	}
	if jobCount == 0 {
		return GetJobCostQueryResponse{}, errs.NewObjectNotFoundError("jobID", query.JobID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			packages.weight_oz,
			shipping_providers.cost_per_pound
		FROM orders
		JOIN packages ON packages.id = orders.package_id
		JOIN shipping_providers ON shipping_providers.id = orders.provider_id
		WHERE orders.job_id = ?
		  AND orders.provider_id IS NOT NULL
		ORDER BY orders.seq
	`, query.JobID().String()).Rows()
	if err != nil {
		return GetJobCostQueryResponse{}, err
	}
	defer rows.Close()

	lines := make([]services.CostLine, 0)

	for rows.Next() {
		var line services.CostLine

		if err = rows.Scan(&line.WeightOz, &line.CostPerPound); err != nil {
			return GetJobCostQueryResponse{}, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetJobCostQueryResponse{}, err
	}

	return GetJobCostQueryResponse{
		JobID:        query.JobID(),
		CostedOrders: len(lines),
		TotalCost:    services.TotalCost(lines),
	}, nil
}
