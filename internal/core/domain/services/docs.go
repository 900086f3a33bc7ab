// Package services contains domain services that work across the package
// aggregate and the transition registry.
//
// AvailabilityCalculator answers which status changes an actor is offered
// and why the blocked ones are blocked. StatusChanger applies a change:
// it prepares the transition, mutates and persists the package, writes the
// audit record, runs commit hooks and follows cascades.
//
// Both read through the same guards, so a target reported as available is
// accepted by StatusChanger as long as the documents do not change in between.
package services
