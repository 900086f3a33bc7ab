package transition

import (
	"slices"

	"docflow/internal/core/domain/model/status"
)

// AvailabilityEntry describes one target status offered from the current one.
type AvailabilityEntry struct {
	ID        status.Status
	Name      string
	Label     string
	Direction status.Direction

	// Title and Message are the action wording for the UI.
	Title   string
	Message string

	Available       bool
	BlockingMessage string
	Remediation     Remediation
}

// AvailabilityReport keeps entries in transition map order.
type AvailabilityReport struct {
	entries []AvailabilityEntry
}

// NewAvailabilityReport creates a report from entries, keeping their order.
func NewAvailabilityReport(entries ...AvailabilityEntry) AvailabilityReport {
	return AvailabilityReport{entries: entries}
}

func (r *AvailabilityReport) Add(e AvailabilityEntry) {
	r.entries = append(r.entries, e)
}

func (r AvailabilityReport) Entries() []AvailabilityEntry {
	return slices.Clone(r.entries)
}

// Get returns the entry for target, if the report has one.
func (r AvailabilityReport) Get(target status.Status) (AvailabilityEntry, bool) {
	for _, e := range r.entries {
		if e.ID == target {
			return e, true
		}
	}
	return AvailabilityEntry{}, false
}

func (r AvailabilityReport) Len() int {
	return len(r.entries)
}

func (r AvailabilityReport) IsEmpty() bool {
	return len(r.entries) == 0
}
