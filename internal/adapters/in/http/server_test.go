package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "printdrop/internal/adapters/in/http"
	"printdrop/internal/core/application/usecases/commands"
	"printdrop/internal/core/application/usecases/queries"
	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const validToken = "valid-token"

type MockUseCase[In, Out any] struct{ mock.Mock }

func (m *MockUseCase[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(Out)
	return out, args.Error(1)
}

type MockChangePassword struct{ mock.Mock }

func (m *MockChangePassword) Handle(ctx context.Context, cmd commands.ChangePasswordCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockTokenVerifier struct{ mock.Mock }

func (m *MockTokenVerifier) Verify(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUserFinder struct{ mock.Mock }

func (m *MockUserFinder) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type ServerTestSuite struct {
	suite.Suite

	caller *user.User
	tokens *MockTokenVerifier
	users  *MockUserFinder

	createOrder  *MockUseCase[commands.CreateOrderCommand, *order.Order]
	cancelOrder  *MockUseCase[commands.OrderActionCommand, *order.Order]
	pickOrder    *MockUseCase[commands.OrderActionCommand, *order.Order]
	deliverOrder *MockUseCase[commands.OrderActionCommand, *order.Order]
	listMyOrders *MockUseCase[queries.ListMyOrdersQuery, []queries.OrderView]
	upload       *MockUseCase[commands.UploadDocumentsCommand, []*document.Document]
	register     *MockUseCase[commands.RegisterUserCommand, *user.User]
	markPaid     *MockUseCase[commands.MarkOrderPaidCommand, *order.Order]

	e *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	var err error
	suite.caller, err = user.RestoreUser(kernel.NewUUID(), "Asha Rao", "asha@example.com", []byte("hash"),
		user.Customer, "98450", "MG Road", time.Now().UTC())
	suite.Require().NoError(err)

	suite.tokens = new(MockTokenVerifier)
	suite.tokens.On("Verify", validToken).Return(suite.caller.ID(), nil).Maybe()
	suite.tokens.On("Verify", mock.Anything).Return(kernel.UUID{}, errs.NewUnauthenticatedError("invalid token")).Maybe()
	suite.users = new(MockUserFinder)
	suite.users.On("Get", mock.Anything, suite.caller.ID()).Return(suite.caller, nil).Maybe()

	suite.createOrder = new(MockUseCase[commands.CreateOrderCommand, *order.Order])
	suite.cancelOrder = new(MockUseCase[commands.OrderActionCommand, *order.Order])
	suite.pickOrder = new(MockUseCase[commands.OrderActionCommand, *order.Order])
	suite.deliverOrder = new(MockUseCase[commands.OrderActionCommand, *order.Order])
	suite.listMyOrders = new(MockUseCase[queries.ListMyOrdersQuery, []queries.OrderView])
	suite.upload = new(MockUseCase[commands.UploadDocumentsCommand, []*document.Document])
	suite.register = new(MockUseCase[commands.RegisterUserCommand, *user.User])
	suite.markPaid = new(MockUseCase[commands.MarkOrderPaidCommand, *order.Order])

	server := api.NewServer(api.Handlers{
		RegisterUser:    suite.register,
		CreateOrder:     suite.createOrder,
		CancelOrder:     suite.cancelOrder,
		PickOrder:       suite.pickOrder,
		DeliverOrder:    suite.deliverOrder,
		ListMyOrders:    suite.listMyOrders,
		UploadDocuments: suite.upload,
		MarkOrderPaid:   suite.markPaid,
	}, suite.tokens, suite.users, slog.New(slog.NewTextHandler(io.Discard, nil)))

	doc, err := api.LoadOpenAPI(context.Background())
	suite.Require().NoError(err)
	suite.e = api.NewEcho(server, api.NewMetrics(prometheus.NewRegistry()), doc)
}

func (suite *ServerTestSuite) do(method, path string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if _, ok := header[echo.HeaderContentType]; !ok && body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) authed(method, path string, body io.Reader) *httptest.ResponseRecorder {
	return suite.do(method, path, body, map[string]string{echo.HeaderAuthorization: "Bearer " + validToken})
}

func (suite *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) api.Error {
	var body api.Error
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *ServerTestSuite) placedOrder() *order.Order {
	delivery, err := order.NewDeliveryInfo("12 MG Road", "Asha Rao", "98450", "asha@example.com")
	suite.Require().NoError(err)
	total, _ := kernel.NewMoney(65)
	o, err := order.NewOrder(kernel.NewUUID(), suite.caller.ID(), []kernel.UUID{kernel.NewUUID()}, delivery, order.Cash, total)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Place())
	return o
}

func (suite *ServerTestSuite) TestMissingTokenIsUnauthorized() {
	rec := suite.do(http.MethodGet, "/api/v1/orders/my", nil, nil)

	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal(http.StatusUnauthorized, suite.decodeError(rec).Code)
	suite.listMyOrders.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestInvalidTokenIsUnauthorized() {
	rec := suite.do(http.MethodGet, "/api/v1/orders/my", nil,
		map[string]string{echo.HeaderAuthorization: "Bearer forged"})

	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ServerTestSuite) TestDeletedUserIsUnauthorized() {
	ghost := kernel.NewUUID()
	tokens := new(MockTokenVerifier)
	tokens.On("Verify", "ghost").Return(ghost, nil)
	users := new(MockUserFinder)
	users.On("Get", mock.Anything, ghost).Return(nil, errs.NewObjectNotFoundError("user", ghost.String()))
	server := api.NewServer(api.Handlers{}, tokens, users, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := api.NewEcho(server, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/my", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer ghost")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *ServerTestSuite) TestCreateOrder() {
	created := suite.placedOrder()
	docID := kernel.NewUUID()
	suite.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.Actor().ID().IsEqual(suite.caller.ID()) &&
			cmd.Actor().Role() == user.Customer &&
			len(cmd.DocumentIDs()) == 1 && cmd.DocumentIDs()[0].IsEqual(docID) &&
			cmd.PaymentType() == order.Cash &&
			cmd.IdempotencyKey() == "abc-123"
	})).Return(created, nil).Once()

	body := `{"documentIds":["` + docID.String() + `"],"deliveryAddress":"12 MG Road",` +
		`"customerName":"Asha Rao","customerPhone":"98450","customerEmail":"asha@example.com","paymentType":"cash"}`
	rec := suite.do(http.MethodPost, "/api/v1/orders", strings.NewReader(body), map[string]string{
		echo.HeaderAuthorization: "Bearer " + validToken,
		api.HeaderIdempotencyKey: "abc-123",
	})

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var resp api.OrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(created.ID().String(), resp.ID)
	suite.Equal("ordered", resp.Status)
	suite.Equal(int64(65), resp.TotalAmount)
	suite.Equal(int64(6500), resp.TotalPaise)
	suite.Nil(resp.CourierID)
	suite.createOrder.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestCreateOrderValidation() {
	tests := map[string]string{
		"empty documents": `{"documentIds":[],"deliveryAddress":"a","customerName":"b","paymentType":"cash"}`,
		"bad document id": `{"documentIds":["nope"],"deliveryAddress":"a","customerName":"b","paymentType":"cash"}`,
		"bad payment":     `{"documentIds":["` + kernel.NewUUID().String() + `"],"deliveryAddress":"a","customerName":"b","paymentType":"card"}`,
		"no address":      `{"documentIds":["` + kernel.NewUUID().String() + `"],"customerName":"b","paymentType":"cash"}`,
		"malformed json":  `{"documentIds":`,
	}
	for name, body := range tests {
		suite.Run(name, func() {
			rec := suite.authed(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
			suite.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
	suite.createOrder.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestCreateOrderMissingDocument() {
	suite.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("document", "x")).Once()

	body := `{"documentIds":["` + kernel.NewUUID().String() + `"],"deliveryAddress":"a","customerName":"b","paymentType":"cash"}`
	rec := suite.authed(http.MethodPost, "/api/v1/orders", strings.NewReader(body))

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Contains(suite.decodeError(rec).Message, "document")
}

func (suite *ServerTestSuite) TestOrderActionErrors() {
	orderID := kernel.NewUUID()
	suite.cancelOrder.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewAccessDeniedError("cancel order", "caller is not the owner")).Once()
	suite.pickOrder.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewStateIsInvalidError("order", "order is not available")).Once()
	suite.deliverOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.OrderActionCommand) bool {
		return cmd.OrderID().IsEqual(orderID)
	})).Return(nil, errs.NewAccessDeniedError("deliver order", "not assigned")).Once()

	suite.Equal(http.StatusForbidden, suite.authed(http.MethodPut, "/api/v1/orders/cancel/"+orderID.String(), nil).Code)
	suite.Equal(http.StatusBadRequest, suite.authed(http.MethodPatch, "/api/v1/courier/orders/"+orderID.String()+"/pick", nil).Code)
	suite.Equal(http.StatusForbidden, suite.authed(http.MethodPatch, "/api/v1/courier/orders/"+orderID.String()+"/deliver", nil).Code)
}

func (suite *ServerTestSuite) TestOrderActionRejectsMalformedID() {
	rec := suite.authed(http.MethodPut, "/api/v1/orders/cancel/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.cancelOrder.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestPickOrderSuccess() {
	picked := suite.placedOrder()
	courierID := kernel.NewUUID()
	suite.Require().NoError(picked.Pick(courierID))
	suite.pickOrder.On("Handle", mock.Anything, mock.Anything).Return(picked, nil).Once()

	rec := suite.authed(http.MethodPatch, "/api/v1/courier/orders/"+picked.ID().String()+"/pick", nil)

	suite.Require().Equal(http.StatusOK, rec.Code)
	var resp api.OrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("picked", resp.Status)
	suite.Require().NotNil(resp.CourierID)
	suite.Equal(courierID.String(), *resp.CourierID)
}

func (suite *ServerTestSuite) TestListMyOrders() {
	now := time.Now().UTC()
	courier := queries.UserSummary{ID: kernel.NewUUID(), Fullname: "Ravi", Email: "ravi@example.com"}
	view := queries.OrderView{
		ID:          kernel.NewUUID(),
		Owner:       queries.UserSummary{ID: suite.caller.ID(), Fullname: "Asha Rao", Email: "asha@example.com"},
		Documents:   []queries.DocumentView{{ID: kernel.NewUUID(), OwnerID: suite.caller.ID(), PageCount: 3, Size: "A4", ColorType: "bw", Copies: 1, CreatedAt: now}},
		PaymentType: "online",
		TotalAmount: 6,
		Status:      "picked",
		Courier:     &courier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	suite.listMyOrders.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderView{view}, nil).Once()

	rec := suite.authed(http.MethodGet, "/api/v1/orders/my", nil)

	suite.Require().Equal(http.StatusOK, rec.Code)
	var resp []api.OrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(view.ID.String(), resp[0].ID)
	suite.Require().Len(resp[0].Documents, 1)
	suite.Equal([]string{view.Documents[0].ID.String()}, resp[0].DocumentIDs)
	suite.Require().NotNil(resp[0].Courier)
	suite.Equal("Ravi", resp[0].Courier.Fullname)
	suite.Equal(courier.ID.String(), *resp[0].CourierID)
	suite.Equal(int64(600), resp[0].TotalPaise)
}

func (suite *ServerTestSuite) TestUploadDocuments() {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range []string{"a.pdf", "b.png"} {
		part, err := w.CreateFormFile("documents", name)
		suite.Require().NoError(err)
		_, err = part.Write([]byte("content of " + name))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(w.WriteField("colorType", "color"))
	suite.Require().NoError(w.WriteField("copies", "2"))
	suite.Require().NoError(w.WriteField("binding", "true"))
	suite.Require().NoError(w.Close())

	opts, err := document.NewPrintOptions(document.A4, document.Color, true, 2)
	suite.Require().NoError(err)
	stored, err := document.NewDocument(kernel.NewUUID(), suite.caller.ID(), "http://files/a.pdf", "a.pdf", 3, opts)
	suite.Require().NoError(err)
	suite.upload.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UploadDocumentsCommand) bool {
		files := cmd.Files()
		return len(files) == 2 &&
			files[0].Name == "a.pdf" &&
			string(files[1].Data) == "content of b.png" &&
			cmd.Options() == opts
	})).Return([]*document.Document{stored}, nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/documents/upload", &buf, map[string]string{
		echo.HeaderAuthorization: "Bearer " + validToken,
		echo.HeaderContentType:   w.FormDataContentType(),
	})

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var resp []api.DocumentResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("color", resp[0].ColorType)
	suite.Equal(2, resp[0].Copies)
	suite.upload.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestUploadRejectsBadOptions() {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("documents", "a.pdf")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte("x"))
	suite.Require().NoError(w.WriteField("copies", "many"))
	suite.Require().NoError(w.Close())

	rec := suite.do(http.MethodPost, "/api/v1/documents/upload", &buf, map[string]string{
		echo.HeaderAuthorization: "Bearer " + validToken,
		echo.HeaderContentType:   w.FormDataContentType(),
	})

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.upload.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestRegisterDuplicateEmailConflicts() {
	suite.register.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectAlreadyExistsError("email", "asha@example.com")).Once()

	body := `{"fullname":"Asha","email":"asha@example.com","password":"secret1","role":"admin"}`
	rec := suite.do(http.MethodPost, "/api/v1/users/register", strings.NewReader(body), nil)

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *ServerTestSuite) TestVerifyPaymentPassesProof() {
	paid := suite.placedOrder()
	suite.markPaid.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkOrderPaidCommand) bool {
		return cmd.Proof().GatewayOrderID == "order_1" &&
			cmd.Proof().PaymentID == "pay_1" &&
			cmd.Proof().Signature == "sig"
	})).Return(paid, nil).Once()

	body := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`
	rec := suite.authed(http.MethodPatch, "/api/v1/payment/orders/"+paid.ID().String()+"/verify", strings.NewReader(body))

	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.markPaid.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestUnexpectedErrorsAreHidden() {
	suite.listMyOrders.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection reset by peer")).Once()

	rec := suite.authed(http.MethodGet, "/api/v1/orders/my", nil)

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.Equal("internal server error", suite.decodeError(rec).Message)
}

func (suite *ServerTestSuite) TestDependencyFailureIsBadGateway() {
	suite.upload.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewDependencyFailedError("blob store", errors.New("disk full"))).Once()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("documents", "a.pdf")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte("x"))
	suite.Require().NoError(w.Close())

	rec := suite.do(http.MethodPost, "/api/v1/documents/upload", &buf, map[string]string{
		echo.HeaderAuthorization: "Bearer " + validToken,
		echo.HeaderContentType:   w.FormDataContentType(),
	})

	suite.Equal(http.StatusBadGateway, rec.Code)
}

func (suite *ServerTestSuite) TestOpenAPIAndMetrics() {
	rec := suite.do(http.MethodGet, "/api/v1/openapi.json", nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var doc map[string]any
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	suite.Equal("3.0.3", doc["openapi"])

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/health", nil, nil).Code)

	rec = suite.do(http.MethodGet, "/metrics", nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `printdrop_http_requests_total{method="GET",route="/api/v1/openapi.json",status="200"} 1`)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
