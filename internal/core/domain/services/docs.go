// Package services provides domain services: business rules that need more than one
// aggregate and so do not belong to any of them.
//
// The package includes:
//   - Pricing: quotes the total price of an order from its service and weight
package services
