// Package order provides the order aggregate of the storefront.
//
// The package includes:
//   - Order: The aggregate root assembled at checkout submission
//   - Status: The order's admin-managed lifecycle value
//   - Customer: The contact details captured by the checkout form
//   - Item: An immutable snapshot of one cart line
//
// Key business rules:
//   - An order is created exactly once, at checkout submission
//   - The item snapshot and all monetary fields are immutable after creation;
//     later catalog price changes never affect a placed order
//   - grandTotal is always cartTotal plus shippingPrice, computed at creation
//     and never edited independently
//   - Only the status may change after creation, and any status can follow any
//     other: the admin workflow enforces no transition rules
package order
