package actor

import (
	"errors"
	"fmt"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through New.
var ErrActorIsNotConstructed = errors.New("Actor must be created via New constructor")

// Role separates the two parties of a package exchange. Each transition
// declares independently from which statuses each role may start it.
type Role int

const (
	UnknownRole Role = iota

	// Operator is the internal employee who prepares the package and verifies it.
	Operator

	// Counterparty is the external agent who reviews and signs the package.
	Counterparty
)

var roleNames = map[Role]string{
	Operator:     "OPERATOR",
	Counterparty: "COUNTERPARTY",
}

// RoleByName resolves "OPERATOR" / "COUNTERPARTY".
func RoleByName(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", name))
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "UNKNOWN"
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the user on whose behalf the engine evaluates or performs a transition.
// It is threaded explicitly through every call; there is no ambient "current user".
type Actor struct {
	id            kernel.UUID
	role          Role
	isConstructed bool
}

// New builds an Actor with a valid identifier and role.
func New(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, isConstructed: true}, nil
}

// ID returns the user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor acts in.
func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsOperator() bool {
	return a.role == Operator
}

func (a Actor) IsCounterparty() bool {
	return a.role == Counterparty
}

// Validate ensures the actor was built through New.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}
