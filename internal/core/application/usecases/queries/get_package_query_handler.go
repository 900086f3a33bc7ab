package queries

import (
	"context"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/transition"
)

// GetPackageQueryHandler loads a package and the state of its document slots.
type GetPackageQueryHandler struct {
	packages  PackageReader
	documents transition.DocumentSource
}

// NewGetPackageQueryHandler creates a handler reading packages and documents
// outside of any transaction.
func NewGetPackageQueryHandler(packages PackageReader, documents transition.DocumentSource) GetPackageQueryHandler {
	return GetPackageQueryHandler{packages: packages, documents: documents}
}

// Handle returns errs.ObjectNotFoundError when the package does not exist.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	pkg, err := h.packages.Get(ctx, query.PackageID())
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	requirements, err := h.documents.RequiredDocuments(ctx, pkg)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	documents := make([]PackageDocumentResponse, len(requirements))
	for i, req := range requirements {
		documents[i] = newPackageDocumentResponse(req)
	}

	return GetPackageQueryResponse{
		ID:             pkg.ID(),
		Type:           pkg.Type(),
		Status:         pkg.Status(),
		CounterpartyID: pkg.CounterpartyID(),
		OperatorID:     pkg.OperatorID(),
		Period:         pkg.Period(),
		CreatedAt:      pkg.CreatedAt(),
		UpdatedAt:      pkg.UpdatedAt(),
		Documents:      documents,
	}, nil
}

var signingRoles = []actor.Role{actor.Operator, actor.Counterparty}

func newPackageDocumentResponse(req document.Requirement) PackageDocumentResponse {
	doc := PackageDocumentResponse{
		DocumentID:            req.DocumentID,
		Slot:                  req.Slot,
		Title:                 req.Title,
		IsRequired:            req.IsRequired,
		IsUploaded:            req.IsUploaded,
		SignedBy:              []actor.Role{},
		AwaitingSignatureFrom: []actor.Role{},
	}
	for _, role := range signingRoles {
		if at := req.SignedAt[role]; at != nil && !at.IsZero() {
			doc.SignedBy = append(doc.SignedBy, role)
		}
		if req.MissingSignatureBy(role) {
			doc.AwaitingSignatureFrom = append(doc.AwaitingSignatureFrom, role)
		}
	}
	return doc
}
