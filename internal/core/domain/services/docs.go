// Package services holds domain logic that does not belong to a single
// aggregate.
//
// The package includes:
//   - PricingEngine: computes per-document line totals and order totals
//   - AccessGate: the role policy every use case consults before touching data
package services
