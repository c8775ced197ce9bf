package commands_test

import (
	"errors"
	"testing"

	"printdrop/internal/core/application/usecases/commands"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustOrderAction(actor user.Actor, orderID kernel.UUID) commands.OrderActionCommand {
	cmd, err := commands.NewOrderActionCommand(actor, orderID)
	if err != nil {
		panic(err)
	}
	return cmd
}

func TestNewOrderActionCommand(t *testing.T) {
	_, err := commands.NewOrderActionCommand(user.Actor{}, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	require.ErrorIs(t, commands.OrderActionCommand{}.Validate(), commands.ErrOrderActionCommandIsNotConstructed)
}

func TestPickOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courier := mustActor(user.Courier)
	stored := restoreOrder(kernel.NewUUID(), order.Ordered, nil, order.Cash)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPickOrderCommandHandler(factory)
	picked, err := h.Handle(ctx, mustOrderAction(courier, stored.ID()))

	require.NoError(t, err)
	assert.Equal(t, order.Picked, picked.Status())
	assert.True(t, picked.IsAssignedTo(courier.ID()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPickOrderCommandHandler_Handle_Errors(t *testing.T) {
	ctx := t.Context()

	t.Run("customer is denied before storage is touched", func(t *testing.T) {
		factory := new(MockUoWFactory)
		h := commands.NewPickOrderCommandHandler(factory)

		_, err := h.Handle(ctx, mustOrderAction(mustActor(user.Customer), kernel.NewUUID()))

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("unknown order is unavailable", func(t *testing.T) {
		id := kernel.NewUUID()
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewPickOrderCommandHandler(factory).Handle(ctx, mustOrderAction(mustActor(user.Courier), id))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})

	t.Run("already picked order", func(t *testing.T) {
		other := kernel.NewUUID()
		stored := restoreOrder(kernel.NewUUID(), order.Picked, &other, order.Cash)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewPickOrderCommandHandler(factory).Handle(ctx, mustOrderAction(mustActor(user.Courier), stored.ID()))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("lost compare-and-swap", func(t *testing.T) {
		stored := restoreOrder(kernel.NewUUID(), order.Ordered, nil, order.Cash)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
		repo.On("Update", ctx, stored).Return(errs.NewStateIsInvalidError("order", "modified concurrently")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewPickOrderCommandHandler(factory).Handle(ctx, mustOrderAction(mustActor(user.Courier), stored.ID()))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestDeliverOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	courier := mustActor(user.Courier)
	courierID := courier.ID()

	t.Run("assigned courier delivers", func(t *testing.T) {
		stored := restoreOrder(kernel.NewUUID(), order.Picked, &courierID, order.Cash)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
			repo.On("Update", ctx, stored).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		delivered, err := commands.NewDeliverOrderCommandHandler(factory).Handle(ctx, mustOrderAction(courier, stored.ID()))

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, delivered.Status())
		uow.AssertExpectations(t)
	})

	t.Run("other courier is forbidden", func(t *testing.T) {
		stored := restoreOrder(kernel.NewUUID(), order.Picked, &courierID, order.Cash)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewDeliverOrderCommandHandler(factory).Handle(ctx, mustOrderAction(mustActor(user.Courier), stored.ID()))

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Equal(t, order.Picked, stored.Status())
	})

	t.Run("unknown order is forbidden", func(t *testing.T) {
		id := kernel.NewUUID()
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewDeliverOrderCommandHandler(factory).Handle(ctx, mustOrderAction(courier, id))

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("storage errors propagate", func(t *testing.T) {
		id := kernel.NewUUID()
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errors.New("connection reset")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewDeliverOrderCommandHandler(factory).Handle(ctx, mustOrderAction(courier, id))

		require.EqualError(t, err, "connection reset")
	})
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(user.Customer)

	setup := func(stored *order.Order, getErr error) (*MockUoWFactory, *MockUoW, *MockOrderRepository) {
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		if getErr != nil {
			repo.On("Get", ctx, mock.Anything).Return(nil, getErr).Once()
		} else {
			repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
		}
		return factory, uow, repo
	}

	t.Run("owner cancels pending order", func(t *testing.T) {
		stored := restoreOrder(customer.ID(), order.Pending, nil, order.Cash)
		factory, uow, repo := setup(stored, nil)
		repo.On("Update", ctx, stored).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cancelled, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, mustOrderAction(customer, stored.ID()))

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, cancelled.Status())
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := kernel.NewUUID()
		factory, _, _ := setup(nil, errs.NewObjectNotFoundError("order", id))

		_, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, mustOrderAction(customer, id))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("not owner", func(t *testing.T) {
		stored := restoreOrder(kernel.NewUUID(), order.Ordered, nil, order.Cash)
		factory, _, _ := setup(stored, nil)

		_, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, mustOrderAction(customer, stored.ID()))

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("placed order is no longer cancellable", func(t *testing.T) {
		stored := restoreOrder(customer.ID(), order.Ordered, nil, order.Cash)
		factory, _, repo := setup(stored, nil)

		_, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, mustOrderAction(customer, stored.ID()))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Equal(t, order.Ordered, stored.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("delivered order", func(t *testing.T) {
		courier := kernel.NewUUID()
		stored := restoreOrder(customer.ID(), order.Delivered, &courier, order.Cash)
		factory, _, repo := setup(stored, nil)

		_, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, mustOrderAction(customer, stored.ID()))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
