// Package status provides the Status Catalog of document packages: the fixed
// set of statuses with id, symbolic name and label lookups, and the transition
// Direction tag.
//
// Key rules:
//   - Unknown (0) and values outside the catalog are invalid
//   - Name lookups are exact and return the first match
//   - Label lookups never fail; unknown ids render as their number
package status
