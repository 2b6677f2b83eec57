// Package kernel contains shared value objects used across the logistics
// domain model: order and tracking identifiers and delivery-network locations.
//
// All types in this package are immutable value objects that can only be
// created through validated constructors. The zero value of every type is
// invalid and is rejected by its Validate method, preventing unvalidated
// instances from leaking into aggregates.
package kernel
