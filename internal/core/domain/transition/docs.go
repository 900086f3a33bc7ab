// Package transition holds the status workflow of document packages.
//
// Each package type registers a Definition: a transition map saying which
// target statuses are offered from each status and in which direction, and
// one Action per target status. An Action knows which roles may request it
// from where, the guard that must pass before a forward move, its UI wording,
// an optional cascade and the hook that runs after commit.
//
// Prepare turns a request into a Transition or one of the typed errors in
// errors.go. Nothing in this package mutates a package or talks to storage;
// see services.StatusChanger for that.
package transition
