package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery reads one package together with its document slots.
type GetPackageQuery struct {
	packageID kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for the package with the given ID.
func NewGetPackageQuery(packageID kernel.UUID, who actor.Actor) (GetPackageQuery, error) {
	if err := errors.Join(packageID.Validate(), who.Validate()); err != nil {
		return GetPackageQuery{}, err
	}
	return GetPackageQuery{
		packageID: packageID,
		actor:     who,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PackageID returns the ID of the requested package.
func (q GetPackageQuery) PackageID() kernel.UUID {
	return q.packageID
}

// Actor returns who is asking.
func (q GetPackageQuery) Actor() actor.Actor {
	return q.actor
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// PackageDocumentResponse describes one document slot of the package.
type PackageDocumentResponse struct {
	DocumentID *kernel.UUID
	Slot       string
	Title      string
	IsRequired bool
	IsUploaded bool

	// SignedBy lists the roles whose signature is on the document.
	SignedBy []actor.Role
	// AwaitingSignatureFrom lists the roles that still have to sign.
	AwaitingSignatureFrom []actor.Role
}

// GetPackageQueryResponse is a package with its documents in catalog order.
type GetPackageQueryResponse struct {
	ID             kernel.UUID
	Type           docpackage.Type
	Status         status.Status
	CounterpartyID kernel.UUID
	OperatorID     kernel.UUID
	Period         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Documents      []PackageDocumentResponse
}
