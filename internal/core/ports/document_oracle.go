package ports

import (
	"context"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
)

// DocumentRequirementOracle answers which document slots a package has,
// whether each is required and uploaded, and who signed it.
type DocumentRequirementOracle interface {
	RequiredDocuments(ctx context.Context, pkg *docpackage.Package) ([]document.Requirement, error)
}
