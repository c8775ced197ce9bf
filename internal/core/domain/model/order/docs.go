// Package order provides the Order aggregate root of the print ordering domain
// and the state machine that governs its lifecycle.
//
// The package includes:
//   - Order: document references, delivery details, payment type and the computed total
//   - Status: the lifecycle state machine
//   - DeliveryInfo: the address and customer contact snapshot taken at order time
//   - PaymentType: cash or online
//   - StatusChanged: the event recorded on every transition
//
// State transitions:
//
//	pending ──> ordered ──> picked ──> delivered
//	   │                      ^
//	   ├──────────────────────┘
//	   v
//	cancelled
//
// Key business rules:
//   - The total is computed once at creation and never recomputed
//   - A courier is assigned exactly once, on the transition into picked
//   - Only the owner cancels, and only before the order is placed
//   - Only the assigned courier delivers
package order
