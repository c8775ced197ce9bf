package services

import (
	"fmt"

	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/errs"
)

// Operation names a use case guarded by the AccessGate.
type Operation string

const (
	OpUploadDocuments     Operation = "upload documents"
	OpCreateOrder         Operation = "create order"
	OpListOwnOrders       Operation = "list own orders"
	OpListAllOrders       Operation = "list all orders"
	OpCancelOrder         Operation = "cancel order"
	OpPayOrder            Operation = "pay order"
	OpListAvailableOrders Operation = "list available orders"
	OpPickOrder           Operation = "pick order"
	OpDeliverOrder        Operation = "deliver order"
	OpPromoteUser         Operation = "promote user"
	OpListUsers           Operation = "list users"
)

var anyRole = []user.Role{user.Customer, user.Courier, user.Admin}

// defaultPolicy maps every operation to the roles allowed to call it.
// Ownership and assignment are resource checks done by the aggregates.
var defaultPolicy = map[Operation][]user.Role{
	OpUploadDocuments:     anyRole,
	OpCreateOrder:         anyRole,
	OpListOwnOrders:       anyRole,
	OpListAllOrders:       {user.Admin},
	OpCancelOrder:         anyRole,
	OpPayOrder:            anyRole,
	OpListAvailableOrders: {user.Courier},
	OpPickOrder:           {user.Courier},
	OpDeliverOrder:        {user.Courier},
	OpPromoteUser:         {user.Admin},
	OpListUsers:           {user.Admin},
}

// AccessGate decides whether a role may run an operation. The role must come
// from the stored user record, never from the request.
type AccessGate struct {
	policy map[Operation][]user.Role
}

func NewAccessGate() AccessGate {
	return AccessGate{policy: defaultPolicy}
}

// Authorize returns an AccessDeniedError when role is not allowed to run op.
// Operations missing from the policy are denied.
func (g AccessGate) Authorize(role user.Role, op Operation) error {
	allowed, ok := g.policy[op]
	if !ok {
		return errs.NewAccessDeniedError(string(op), "operation is not covered by the access policy")
	}

	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return errs.NewAccessDeniedError(string(op), fmt.Sprintf("role %q is not allowed", role))
}
