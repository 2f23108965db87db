// Package good provides domain entities for the goods catalogue and stock
// availability in the goods-distribution system.
//
// The package includes:
//   - Category and Good: the catalogue of products and services to allocate
//   - Stock: per (delivery point, good) availability, optionally capped
//   - StockIdentifier: a serialized unit within a capped stock
//
// Key business rules:
//   - A good belongs to exactly one category
//   - A (delivery point, good) pair has at most one stock record
//   - A stock cap of zero means unlimited availability
//   - Serialized stocks require each delivery to reference one identifier
package good
