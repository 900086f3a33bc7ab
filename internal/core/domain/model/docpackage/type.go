package docpackage

import (
	"regexp"

	"docflow/internal/pkg/errs"
)

// Type selects the transition map and document catalog of a package.
// Any well-formed tag is accepted here; whether it is configured is decided
// by the transition registry.
type Type string

const (
	// Act is the closing-documents package: an act, its editable copy and an invoice.
	Act Type = "ACT"
)

var typePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// Validate checks that the tag is an upper-case identifier.
func (t Type) Validate() error {
	if t == "" {
		return errs.NewValueIsRequiredError("package type")
	}
	if !typePattern.MatchString(string(t)) {
		return errs.NewValueIsInvalidError("package type")
	}
	return nil
}

func (t Type) String() string {
	return string(t)
}
