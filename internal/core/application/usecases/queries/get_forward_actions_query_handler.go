package queries

import (
	"context"

	"docflow/internal/core/domain/services"
)

type GetForwardActionsQueryHandler struct {
	packages   PackageReader
	calculator *services.AvailabilityCalculator
}

// NewGetForwardActionsQueryHandler creates the handler.
func NewGetForwardActionsQueryHandler(
	packages PackageReader,
	calculator *services.AvailabilityCalculator,
) GetForwardActionsQueryHandler {
	return GetForwardActionsQueryHandler{packages: packages, calculator: calculator}
}

func (h GetForwardActionsQueryHandler) Handle(
	ctx context.Context,
	query GetForwardActionsQuery,
) ([]services.ForwardAction, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pkg, err := h.packages.Get(ctx, query.PackageID())
	if err != nil {
		return nil, err
	}

	return h.calculator.ComputeForwardActions(ctx, pkg, query.Actor())
}
