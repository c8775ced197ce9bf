package order_test

import (
	"testing"

	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Ordered, order.Picked, order.Delivered, order.Cancelled} {
		parsed, err := order.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.StatusFromString("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.StatusFromString("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		action  func(order.Status) (order.Status, error)
		want    order.Status
		wantErr bool
	}{
		{"place pending", order.Pending, order.Status.Place, order.Ordered, false},
		{"place ordered", order.Ordered, order.Status.Place, order.Unknown, true},
		{"pick pending", order.Pending, order.Status.Pick, order.Picked, false},
		{"pick ordered", order.Ordered, order.Status.Pick, order.Picked, false},
		{"pick picked", order.Picked, order.Status.Pick, order.Unknown, true},
		{"pick delivered", order.Delivered, order.Status.Pick, order.Unknown, true},
		{"pick cancelled", order.Cancelled, order.Status.Pick, order.Unknown, true},
		{"deliver picked", order.Picked, order.Status.Deliver, order.Delivered, false},
		{"deliver ordered", order.Ordered, order.Status.Deliver, order.Unknown, true},
		{"deliver delivered", order.Delivered, order.Status.Deliver, order.Unknown, true},
		{"cancel pending", order.Pending, order.Status.Cancel, order.Cancelled, false},
		{"cancel ordered", order.Ordered, order.Status.Cancel, order.Unknown, true},
		{"cancel picked", order.Picked, order.Status.Cancel, order.Unknown, true},
		{"cancel delivered", order.Delivered, order.Status.Cancel, order.Unknown, true},
		{"cancel cancelled", order.Cancelled, order.Status.Cancel, order.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.action(tt.from)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrStateIsInvalid)
				assert.Contains(t, err.Error(), tt.from.String())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	require.NoError(t, order.Picked.ValidateCanHaveCourier(true))
	require.NoError(t, order.Delivered.ValidateCanHaveCourier(true))
	require.NoError(t, order.Ordered.ValidateCanHaveCourier(false))
	require.NoError(t, order.Cancelled.ValidateCanHaveCourier(false))

	require.Error(t, order.Pending.ValidateCanHaveCourier(true))
	require.Error(t, order.Picked.ValidateCanHaveCourier(false))
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.False(t, order.Picked.IsFinal())

	_, err := order.Delivered.Cancel()
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Contains(t, err.Error(), "already delivered")

	_, err = order.Picked.Cancel()
	assert.Contains(t, err.Error(), "in status picked")
	assert.Equal(t, "unknown", order.Status(42).String())
	require.Error(t, order.Status(42).Validate())
}
