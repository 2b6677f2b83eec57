// Package tracking provides the read projection of shipment progress.
//
// A Record mirrors the authoritative status of its Order aggregate and keeps
// the package's last known position, keyed by the customer-facing tracking
// identifier. A Snapshot is the assembled tracking view returned to callers,
// including progress derived from elapsed time by the Tracking Progression
// service. The projection never becomes a second source of truth: all
// authoritative mutations flow through the Order aggregate.
package tracking
