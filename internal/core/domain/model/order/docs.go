// Package order provides domain entities and the status state machine for order
// fulfillment. It implements the Order read-model aggregate, its line items, and
// the canonical per-type status transition table.
//
// The package includes:
//   - Order: an immutable aggregate over a snapshot from the external order store
//   - Item: a single order line with its location assignment and fulfillment state
//   - Transition table: the single source of truth for legal forward status
//     transitions and their staff-facing labels, keyed by (order type, status)
//
// Key business rules:
//   - An order's status is always a member of the legal status set for its type
//   - Each order type has its own forward pipeline; cancelled is reachable from
//     any non-terminal status via an explicit cancel operation
//   - Unrecognized order types and statuses from the store fail loudly instead of
//     being mapped onto a guessed pipeline
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
