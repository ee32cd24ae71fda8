// Package http exposes the application's use cases over HTTP.
package http

import (
	"errors"
	"io"
	"net/http"

	"shiporders/internal/core/application/usecases/commands"
	"shiporders/internal/core/application/usecases/queries"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for order import and job costing.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	importOrdersHandler commands.ImportOrdersCommandHandler
	getJobCostHandler   queries.GetJobCostQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	importOrdersHandler commands.ImportOrdersCommandHandler,
	getJobCostHandler queries.GetJobCostQueryHandler,
) *Server {
	return &Server{
		importOrdersHandler: importOrdersHandler,
		getJobCostHandler:   getJobCostHandler,
	}
}

// RegisterRoutes attaches all handlers to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders/import", s.ImportOrders)
	e.GET("/api/v1/jobs/:jobID/cost", s.GetJobCost)
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ImportErrorsResponse carries the upload's validation error map, keyed by
// "general" or by the reporting index of the offending spreadsheet row.
type ImportErrorsResponse struct {
	Errors map[string][]string `json:"errors"`
}

// ImportSuccessResponse reports a committed import.
type ImportSuccessResponse struct {
	JobID         string `json:"job_id"`
	OrdersCreated int    `json:"orders_created"`
}

// JobCostResponse reports the costing summary of one job. The total is a
// decimal string so clients never round it through a float.
type JobCostResponse struct {
	JobID        string `json:"job_id"`
	CostedOrders int    `json:"costed_orders"`
	TotalCost    string `json:"total_cost"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ImportOrders handles POST /api/v1/orders/import - imports orders from an
// uploaded spreadsheet export. The file is expected as the multipart form
// field "file".
func (s *Server) ImportOrders(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Missing file upload",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Could not read file upload",
		})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Could not read file upload",
		})
	}

	cmd, err := commands.NewImportOrdersCommand(content)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid upload: " + err.Error(),
		})
	}

	result, err := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		ctx.Logger().Errorf("order import failed: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to import orders",
		})
	}

	if len(result.Errors) > 0 {
		return ctx.JSON(http.StatusBadRequest, ImportErrorsResponse{Errors: result.Errors})
	}

	return ctx.JSON(http.StatusCreated, ImportSuccessResponse{
		JobID:         result.JobID.String(),
		OrdersCreated: result.OrdersCreated,
	})
}

// GetJobCost handles GET /api/v1/jobs/:jobID/cost - returns the total
// shipping cost of one import job.
func (s *Server) GetJobCost(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid job identifier",
		})
	}

	query, err := queries.NewGetJobCostQuery(jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid job identifier",
		})
	}

	result, err := s.getJobCostHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Job not found",
			})
		}
		ctx.Logger().Errorf("job cost query failed: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute job cost",
		})
	}

	return ctx.JSON(http.StatusOK, JobCostResponse{
		JobID:        result.JobID.String(),
		CostedOrders: result.CostedOrders,
		TotalCost:    result.TotalCost.String(),
	})
}
