// Package order provides the Order aggregate and its status lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding identity, item, quantity, customer and status
//   - Status: a value object that owns the transition table
//
// Key business rules:
//   - Orders have a valid identifier, a non-empty item name and customer id, and a positive quantity
//   - New orders start in Pending
//   - Status follows: Pending -> Processing -> Shipped -> Delivered,
//     with Cancelled reachable from Pending and Processing
//   - Delivered and Cancelled are terminal
//   - Identifier, item, quantity and customer never change after creation
package order
