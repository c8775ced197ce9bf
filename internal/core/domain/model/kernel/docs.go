// Package kernel provides the shared value objects of the print ordering domain.
//
// The package includes:
//   - UUID: identifier for users, documents and orders; the nil UUID is never valid
//   - Money: a non-negative amount in whole rupees with a paise view for gateways
//   - DomainEvent: the contract for facts aggregates record for publication
//
// Both are immutable and safe for concurrent use.
package kernel
