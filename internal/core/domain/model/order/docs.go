// Package order provides domain entities and business logic for the order
// ledger. It implements the Order aggregate root with lifecycle management
// across two independent status axes.
//
// The package includes:
//   - Order: the aggregate root holding identity, monetary block, shipping
//     data, line items, and the set-once shipped/delivered timestamps
//   - Status: the fulfillment state machine (pending through delivered,
//     with cancelled and refunded terminals)
//   - PaymentStatus: the payment state machine (unpaid/paid with failed and
//     refunded terminals)
//   - TransitionPolicy: the configurable transition rules (skip permission,
//     paid-before-shipped requirement)
//   - Item: an order line with derived line total
//   - Amounts: the stored monetary block, validated but never recomputed
//
// Key business rules:
//   - Order numbers are unique and immutable once assigned
//   - ShippedAt/DeliveredAt are stamped exactly once and never reset
//   - A delivered order cannot be cancelled
//   - Backward fulfillment transitions are rejected; forward skips are
//     policy-controlled
//   - Unrecognized status values are rejected at the boundary, not coerced
package order
