// Package actor models who acts on a package: an internal Operator or an
// external Counterparty. Permission checks are answered by the permission
// oracle port; the Actor itself only carries identity and role.
package actor
