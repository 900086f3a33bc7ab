package queries

import (
	"context"

	"docflow/internal/core/domain/services"
)

// GetAvailableStatusesQueryHandler computes the availability report of a package.
type GetAvailableStatusesQueryHandler struct {
	packages   PackageReader
	calculator *services.AvailabilityCalculator
}

// NewGetAvailableStatusesQueryHandler creates the handler.
func NewGetAvailableStatusesQueryHandler(
	packages PackageReader,
	calculator *services.AvailabilityCalculator,
) GetAvailableStatusesQueryHandler {
	return GetAvailableStatusesQueryHandler{packages: packages, calculator: calculator}
}

func (h GetAvailableStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableStatusesQuery,
) (GetAvailableStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableStatusesQueryResponse{}, err
	}

	pkg, err := h.packages.Get(ctx, query.PackageID())
	if err != nil {
		return GetAvailableStatusesQueryResponse{}, err
	}

	report, err := h.calculator.ComputeAvailability(ctx, pkg, query.Actor())
	if err != nil {
		return GetAvailableStatusesQueryResponse{}, err
	}

	return GetAvailableStatusesQueryResponse{
		PackageID: pkg.ID(),
		Current:   pkg.Status(),
		Entries:   report.Entries(),
	}, nil
}
