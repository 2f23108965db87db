// Package delivery provides the central aggregate of the goods-distribution
// system: a single allocation of a quantity of a good to a recipient,
// tracked through confirmation, return and disablement.
//
// The package includes:
//   - Delivery: the aggregate root carrying identifiers, quantity and the
//     recorded lifecycle transitions
//   - Status: the derived lifecycle state with fixed precedence
//   - StateChange: the event emitted by lifecycle transitions
//   - ReceiptPayload: the wire contract for signed delivery receipts
//   - Attachment: the deterministic storage path for attached files
//
// Key business rules:
//   - Quantity is never zero after a successful submission
//   - An identifier always denotes exactly one unit
//   - Transitions record point, actor and instant, and are never undone
//   - Disabled takes precedence over returned, returned over delivered
//
// Cross-record rules (stock ceilings, identifier collisions) are enforced by
// the validation engine in the services package on every submission.
package delivery
