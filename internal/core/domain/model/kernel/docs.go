// Package kernel provides the shared domain primitives of docflow.
//
// The package includes:
//   - UUID: the identifier value object used by packages, actors, counterparties and documents
//
// Primitives are immutable and validate themselves; their zero values are invalid.
package kernel
