// Package services contains domain services that coordinate logic spanning
// multiple aggregates in the goods-distribution system.
//
// The package includes:
//   - DeliveryValidator: the validation engine run on every delivery write,
//     enforcing quantity, stock-ceiling, identifier and collision rules
//     against the current state of related records
//
// Domain services operate on narrow read/write interfaces so the checks stay
// independent of the persistence technology. Each violated rule aborts the
// whole write with a typed domain error.
package services
