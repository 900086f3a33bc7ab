package queries

import (
	"context"

	"docflow/internal/core/domain/services"
)

type GetForwardActionSummaryQueryHandler struct {
	packages   PackageReader
	calculator *services.AvailabilityCalculator
}

// NewGetForwardActionSummaryQueryHandler creates the handler.
func NewGetForwardActionSummaryQueryHandler(
	packages PackageReader,
	calculator *services.AvailabilityCalculator,
) GetForwardActionSummaryQueryHandler {
	return GetForwardActionSummaryQueryHandler{packages: packages, calculator: calculator}
}

func (h GetForwardActionSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetForwardActionSummaryQuery,
) (services.ForwardActionSummary, error) {
	if err := query.Validate(); err != nil {
		return services.ForwardActionSummary{}, err
	}

	pkg, err := h.packages.Get(ctx, query.PackageID())
	if err != nil {
		return services.ForwardActionSummary{}, err
	}

	return h.calculator.ComputeForwardActionSummary(ctx, pkg, query.Actor())
}
