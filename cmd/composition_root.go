package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	api "printdrop/internal/adapters/in/http"
	"printdrop/internal/adapters/out/blobstore"
	"printdrop/internal/adapters/out/emailjs"
	"printdrop/internal/adapters/out/identity"
	"printdrop/internal/adapters/out/kafka"
	"printdrop/internal/adapters/out/payment"
	"printdrop/internal/adapters/out/pdfpages"
	"printdrop/internal/adapters/out/postgres"
	"printdrop/internal/adapters/out/postgres/userrepo"
	"printdrop/internal/adapters/out/redisstore"
	"printdrop/internal/core/application/usecases/commands"
	"printdrop/internal/core/application/usecases/queries"
	"printdrop/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	idempotencyPrefix = "printdrop"
	notifyTimeout     = 15 * time.Second
)

// CompositionRoot owns every adapter of the process and builds the use cases
// on top of them.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger

	tokens      *identity.TokenService
	hasher      identity.BcryptHasher
	blobs       *blobstore.FileStore
	pages       pdfpages.Counter
	verifier    payment.RazorpayVerifier
	notifier    ports.Notifier
	idempotency ports.IdempotencyStore

	closers []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	tokens, err := identity.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}
	blobs, err := blobstore.NewFileStore(cfg.BlobDir, cfg.BlobBaseURL)
	if err != nil {
		return nil, fmt.Errorf("blob store: %w", err)
	}

	c := &CompositionRoot{
		gormDB:   gormDB,
		logger:   logger,
		tokens:   tokens,
		hasher:   identity.NewBcryptHasher(bcrypt.DefaultCost),
		blobs:    blobs,
		pages:    pdfpages.NewCounter(),
		verifier: payment.NewRazorpayVerifier(cfg.PaymentKeySecret),
		notifier: emailjs.Noop{},
	}

	var publisher ports.EventPublisher
	if brokers := kafka.ParseBrokers(cfg.KafkaHost); len(brokers) > 0 {
		p := kafka.NewPublisher(brokers, cfg.KafkaOrderChangedTopic)
		c.closers = append(c.closers, p.Close)
		publisher = p
	} else {
		logger.Info("kafka is not configured, order events are not published")
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger)

	mailCfg := emailjs.Config{
		Endpoint:   cfg.EmailJSURL,
		ServiceID:  cfg.EmailJSServiceID,
		TemplateID: cfg.EmailJSTemplateID,
		PrivateKey: cfg.EmailJSPrivateKey,
	}
	if mailCfg.Enabled() {
		async := emailjs.NewAsyncNotifier(emailjs.NewNotifier(mailCfg), notifyTimeout, logger)
		c.closers = append(c.closers, func() error {
			async.Close()
			return nil
		})
		c.notifier = async
	} else {
		logger.Info("emailjs is not configured, order confirmations are not sent")
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		c.closers = append(c.closers, client.Close)
		c.idempotency = redisstore.NewIdempotencyStore(client, idempotencyPrefix, cfg.IdempotencyTTL)
	} else {
		logger.Info("redis is not configured, Idempotency-Key is ignored")
	}

	return c, nil
}

// Close flushes pending notifications and closes broker connections.
func (c *CompositionRoot) Close(_ context.Context) error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) TokenVerifier() ports.TokenVerifier {
	return c.tokens
}

func (c *CompositionRoot) UserFinder() api.UserFinder {
	return userrepo.NewGormUserRepository(c.gormDB)
}

func (c *CompositionRoot) BlobDir() string {
	return c.blobs.Dir()
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() *commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.uowFactory, c.hasher)
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() *commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.uowFactory, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() *commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.uowFactory, c.hasher)
}

func (c *CompositionRoot) CreatePromoteUserCommandHandler() *commands.PromoteUserCommandHandler {
	return commands.NewPromoteUserCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateUploadDocumentsCommandHandler() *commands.UploadDocumentsCommandHandler {
	return commands.NewUploadDocumentsCommandHandler(c.uowFactory, c.blobs, c.pages)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory, c.notifier, c.idempotency, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreatePickOrderCommandHandler() *commands.PickOrderCommandHandler {
	return commands.NewPickOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() *commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() *commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.uowFactory, c.verifier)
}

func (c *CompositionRoot) CreateGetCurrentUserQueryHandler() queries.GetCurrentUserQueryHandler {
	return queries.NewGetCurrentUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyDocumentsQueryHandler() queries.ListMyDocumentsQueryHandler {
	return queries.NewListMyDocumentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDocumentQueryHandler() queries.GetMyDocumentQueryHandler {
	return queries.NewGetMyDocumentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyOrdersQueryHandler() queries.ListMyOrdersQueryHandler {
	return queries.NewListMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableOrdersQueryHandler() queries.ListAvailableOrdersQueryHandler {
	return queries.NewListAvailableOrdersQueryHandler(c.gormDB)
}

// Handlers collects every use case the REST adapter serves.
func (c *CompositionRoot) Handlers() api.Handlers {
	return api.Handlers{
		RegisterUser:   c.CreateRegisterUserCommandHandler(),
		LoginUser:      c.CreateLoginUserCommandHandler(),
		ChangePassword: c.CreateChangePasswordCommandHandler(),
		CurrentUser:    c.CreateGetCurrentUserQueryHandler(),
		PromoteUser:    c.CreatePromoteUserCommandHandler(),
		ListUsers:      c.CreateListUsersQueryHandler(),

		UploadDocuments: c.CreateUploadDocumentsCommandHandler(),
		ListMyDocuments: c.CreateListMyDocumentsQueryHandler(),
		GetMyDocument:   c.CreateGetMyDocumentQueryHandler(),

		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		PickOrder:           c.CreatePickOrderCommandHandler(),
		DeliverOrder:        c.CreateDeliverOrderCommandHandler(),
		MarkOrderPaid:       c.CreateMarkOrderPaidCommandHandler(),
		ListMyOrders:        c.CreateListMyOrdersQueryHandler(),
		ListAllOrders:       c.CreateListAllOrdersQueryHandler(),
		ListAvailableOrders: c.CreateListAvailableOrdersQueryHandler(),
	}
}
