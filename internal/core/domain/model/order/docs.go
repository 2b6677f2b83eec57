// Package order provides the domain model for shipment orders: the Order
// aggregate root, its lifecycle Status and the append-only audit Timeline.
//
// The package includes:
//   - Order: the aggregate root owning authoritative status and timeline
//   - Status: the closed set of lifecycle states with wire and display forms
//   - Timeline / TimelineEvent: the timestamp-ordered audit trail
//
// Key business rules:
//   - Orders carry a unique order identifier and a 1:1 tracking identifier,
//     both immutable after creation
//   - The timeline begins with exactly one "Order Placed" event and every
//     status change appends exactly one new event
//   - Timeline timestamps are monotonically non-decreasing and never precede
//     the order's creation
//   - Status transitions are permissive by documented contract; the Delay
//     operation additionally records a reason and extends the delivery estimate
//
// The package follows Domain-Driven Design principles: construction only
// through validated factories, private state, behavior-rich methods.
package order
