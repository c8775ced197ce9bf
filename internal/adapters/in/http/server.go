// Package http is the REST adapter. Handlers translate requests into
// commands and queries, and every error is rendered by NewErrorHandler.
package http

import (
	"context"
	"log/slog"

	"printdrop/internal/core/application/usecases/commands"
	"printdrop/internal/core/application/usecases/queries"
	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/core/ports"
)

// UseCase is implemented by every command and query handler.
type UseCase[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// ChangePasswordUseCase has no result.
type ChangePasswordUseCase interface {
	Handle(ctx context.Context, cmd commands.ChangePasswordCommand) error
}

// UserFinder loads the stored user behind a verified token.
type UserFinder interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}

type Handlers struct {
	RegisterUser   UseCase[commands.RegisterUserCommand, *user.User]
	LoginUser      UseCase[commands.LoginUserCommand, commands.LoginResult]
	ChangePassword ChangePasswordUseCase
	CurrentUser    UseCase[queries.GetCurrentUserQuery, queries.UserView]
	PromoteUser    UseCase[commands.PromoteUserCommand, *user.User]
	ListUsers      UseCase[queries.ListUsersQuery, []queries.UserView]

	UploadDocuments UseCase[commands.UploadDocumentsCommand, []*document.Document]
	ListMyDocuments UseCase[queries.ListMyDocumentsQuery, []queries.DocumentView]
	GetMyDocument   UseCase[queries.GetMyDocumentQuery, queries.DocumentView]

	CreateOrder         UseCase[commands.CreateOrderCommand, *order.Order]
	CancelOrder         UseCase[commands.OrderActionCommand, *order.Order]
	PickOrder           UseCase[commands.OrderActionCommand, *order.Order]
	DeliverOrder        UseCase[commands.OrderActionCommand, *order.Order]
	MarkOrderPaid       UseCase[commands.MarkOrderPaidCommand, *order.Order]
	ListMyOrders        UseCase[queries.ListMyOrdersQuery, []queries.OrderView]
	ListAllOrders       UseCase[queries.ListAllOrdersQuery, []queries.OrderView]
	ListAvailableOrders UseCase[queries.ListAvailableOrdersQuery, []queries.OrderView]
}

// Server holds the use cases behind the /api/v1 routes.
type Server struct {
	handlers Handlers
	tokens   ports.TokenVerifier
	users    UserFinder
	logger   *slog.Logger
}

func NewServer(handlers Handlers, tokens ports.TokenVerifier, users UserFinder, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		users:    users,
		logger:   logger.With("component", "http"),
	}
}
