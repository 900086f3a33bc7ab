package status

import (
	"fmt"
	"strconv"

	"docflow/internal/pkg/errs"
)

// Status is the lifecycle state of a document package.
//
// The set is fixed. The catalog only answers lookups; which statuses can
// follow which is decided by the transition map of each package type.
type Status int

const (
	// Unknown is the zero value and never a valid package status.
	Unknown Status = iota

	// Draft is the initial status. The operator prepares the documents.
	Draft

	// Approval means the package waits for the counterparty to review and sign.
	Approval

	// Revision means the counterparty returned the package to the operator.
	Revision

	// Verification means the counterparty signed and the operator checks the result.
	Verification

	// Canceled is terminal for ordinary actors.
	Canceled

	// Completed means the exchange is finished.
	Completed
)

type entry struct {
	name  string
	label string
}

// catalog is ordered by id; lookups by name return the first match.
var catalog = []struct {
	status Status
	entry
}{
	{Draft, entry{"DRAFT", "Draft"}},
	{Approval, entry{"APPROVAL", "Approval"}},
	{Revision, entry{"REVISION", "Returned for revision"}},
	{Verification, entry{"VERIFICATION", "Verification"}},
	{Canceled, entry{"CANCELED", "Canceled"}},
	{Completed, entry{"COMPLETED", "Document exchange completed"}},
}

func lookup(s Status) (entry, bool) {
	for _, c := range catalog {
		if c.status == s {
			return c.entry, true
		}
	}
	return entry{}, false
}

// All returns every valid status in id order.
func All() []Status {
	statuses := make([]Status, 0, len(catalog))
	for _, c := range catalog {
		statuses = append(statuses, c.status)
	}
	return statuses
}

// ByName resolves the symbolic name (e.g. "APPROVAL"). Matching is exact.
func ByName(name string) (Status, bool) {
	for _, c := range catalog {
		if c.name == name {
			return c.status, true
		}
	}
	return Unknown, false
}

// LabelOf returns the label of id, or id rendered as text when it is not in the catalog.
func LabelOf(id int) string {
	if e, ok := lookup(Status(id)); ok {
		return e.label
	}
	return strconv.Itoa(id)
}

// Validate returns an error for Unknown and any value outside the catalog.
func (s Status) Validate() error {
	if _, ok := lookup(s); !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Name returns the symbolic name, "UNKNOWN" outside the catalog.
func (s Status) Name() string {
	if e, ok := lookup(s); ok {
		return e.name
	}
	return "UNKNOWN"
}

// Label returns the human-readable label, falling back to the numeric id.
func (s Status) Label() string {
	return LabelOf(int(s))
}

// String implements fmt.Stringer with the symbolic name.
func (s Status) String() string {
	return s.Name()
}
