// Package services provides the pure domain services of the fulfillment engine:
// projections and resolutions computed over in-memory order snapshots.
//
// The package includes:
//   - LocationAggregator: partitions an order's items into per-location groups
//     and derives per-group and per-order completion
//   - ActionResolver: resolves the single next actionable step for an order, a
//     location group, or a board entry, always through the status transition table
//   - BoardAssembler: classifies, sorts, and caps the order set for the
//     operational dashboard
//
// All services are synchronous, side-effect-free functions over snapshots. They
// hold no caches and are rebuilt-from-scratch derivations: every fresh snapshot
// from the order store produces fresh groups, actions, and board entries.
package services
