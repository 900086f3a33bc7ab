// Package document describes the document slots of a package as the
// transition guards see them: whether a slot is required, uploaded, and
// signed by each party.
//
// Storage and signing of files live outside docflow; this package only joins
// the per-type catalog with what the document store reports.
package document
