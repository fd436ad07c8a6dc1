// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the storefront. It implements workflows that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CheckoutService: assembles a persistable Order from a cart snapshot,
//     customer input and the shipping price table
package services
