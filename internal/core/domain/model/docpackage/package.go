package docpackage

import (
	"errors"
	"strings"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/pkg/errs"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package was not created through
	// NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")
)

// Package is the aggregate root of a document exchange between an operator
// and a counterparty.
//
// Package follows these invariants:
//   - Must have valid identifiers for itself, its counterparty and its operator
//   - Status is always a member of the status catalog
//   - Status is changed only through ChangeStatus, which the status changer calls
type Package struct {
	// id is the unique identifier for the package
	id kernel.UUID

	// packageType selects the transition map
	packageType Type

	// status is the current lifecycle status
	status status.Status

	// counterpartyID references the external party signing the package
	counterpartyID kernel.UUID

	// operatorID references the employee responsible for the package
	operatorID kernel.UUID

	// period is the reporting period the documents cover (e.g. "2024-03")
	period string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPackage creates a package in the initial Draft status.
//
// Example:
//
//	pkg, err := docpackage.NewPackage(kernel.NewUUID(), docpackage.Act, counterpartyID, operatorID, "2024-03", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewPackage(
	id kernel.UUID,
	packageType Type,
	counterpartyID kernel.UUID,
	operatorID kernel.UUID,
	period string,
	now time.Time,
) (*Package, error) {
	return RestorePackage(id, packageType, status.Draft, counterpartyID, operatorID, period, now, now)
}

// RestorePackage rebuilds a package from persistence, validating every field.
func RestorePackage(
	id kernel.UUID,
	packageType Type,
	current status.Status,
	counterpartyID kernel.UUID,
	operatorID kernel.UUID,
	period string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Package, error) {
	pkg := &Package{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setType(packageType),
		pkg.setStatus(current),
		pkg.setCounterparty(counterpartyID),
		pkg.setOperator(operatorID),
		pkg.setPeriod(period),
	); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Validate ensures the package was built through one of its constructors.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// Type returns the package type that selects the transition graph.
func (p *Package) Type() Type {
	return p.packageType
}

// Status returns the current status.
func (p *Package) Status() status.Status {
	return p.status
}

// CounterpartyID returns the counterparty the package belongs to.
func (p *Package) CounterpartyID() kernel.UUID {
	return p.counterpartyID
}

// OperatorID returns the operator assigned to the package.
func (p *Package) OperatorID() kernel.UUID {
	return p.operatorID
}

// Period returns the reporting period, for example "2024-03".
func (p *Package) Period() string {
	return p.period
}

// CreatedAt returns the creation time.
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the time of the last status change.
func (p *Package) UpdatedAt() time.Time {
	return p.updatedAt
}

// ChangeStatus moves the package to next. The caller is responsible for
// having validated the transition.
func (p *Package) ChangeStatus(next status.Status, at time.Time) error {
	if err := p.setStatus(next); err != nil {
		return err
	}
	p.updatedAt = at
	return nil
}

// RevertStatus restores a previously observed status and timestamp after a failed change.
func (p *Package) RevertStatus(previous status.Status, updatedAt time.Time) {
	p.status = previous
	p.updatedAt = updatedAt
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.packageType = t
	return nil
}

func (p *Package) setStatus(s status.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p.status = s
	return nil
}

func (p *Package) setCounterparty(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("counterparty", err)
	}
	p.counterpartyID = id
	return nil
}

func (p *Package) setOperator(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("operator", err)
	}
	p.operatorID = id
	return nil
}

func (p *Package) setPeriod(period string) error {
	period = strings.TrimSpace(period)
	if period == "" {
		return errs.NewValueIsRequiredError("period")
	}
	p.period = period
	return nil
}
