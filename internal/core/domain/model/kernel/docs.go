// Package kernel provides core domain primitives for the storefront.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - OrderType: The delivery mode of an order, home delivery or pickup point
//   - Destination: A validated region / sub-region pair used for address capture
//   - The region dataset: the enumerated delivery zones and their sub-regions
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
