// Package docpackage provides the Package aggregate: a bundle of documents
// exchanged between an internal operator and a counterparty, moving through
// the statuses of the status catalog.
//
// The package includes:
//   - Package: the aggregate root holding identity, type, status and parties
//   - Type: the package-type tag that selects a transition map
//
// Key business rules:
//   - Packages start in Draft
//   - The status is always a catalog member
//   - Only the status changer mutates the status, through ChangeStatus
package docpackage
