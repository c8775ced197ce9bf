package http

import (
	"net/http"

	"printdrop/internal/core/application/usecases/commands"
	"printdrop/internal/core/application/usecases/queries"
	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type CreateOrderRequest struct {
	DocumentIDs     []string `json:"documentIds"`
	DeliveryAddress string   `json:"deliveryAddress"`
	CustomerName    string   `json:"customerName"`
	CustomerPhone   string   `json:"customerPhone"`
	CustomerEmail   string   `json:"customerEmail"`
	PaymentType     string   `json:"paymentType"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	docIDs, err := parseUUIDs("documentIds", req.DocumentIDs)
	if err != nil {
		return err
	}
	delivery, err := order.NewDeliveryInfo(req.DeliveryAddress, req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		return err
	}
	paymentType, err := order.PaymentTypeFromString(req.PaymentType)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(actor, docIDs, delivery, paymentType,
		c.Request().Header.Get(HeaderIdempotencyKey))
	if err != nil {
		return err
	}
	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderResponse(created))
}

// ListMyOrders handles GET /api/v1/orders/my.
func (s *Server) ListMyOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListMyOrdersQuery(actor)
	if err != nil {
		return err
	}
	views, err := s.handlers.ListMyOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, orderViewResponse))
}

// ListAllOrders handles GET and PUT /api/v1/orders/all. PUT is kept for
// clients of the first API version.
func (s *Server) ListAllOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListAllOrdersQuery(actor)
	if err != nil {
		return err
	}
	views, err := s.handlers.ListAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, orderViewResponse))
}

// CancelOrder handles PUT /api/v1/orders/cancel/:orderId.
func (s *Server) CancelOrder(c echo.Context) error {
	return s.orderAction(c, "orderId", s.handlers.CancelOrder)
}

// ListAvailableOrders handles GET /api/v1/courier/available-orders.
func (s *Server) ListAvailableOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListAvailableOrdersQuery(actor)
	if err != nil {
		return err
	}
	views, err := s.handlers.ListAvailableOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, orderViewResponse))
}

// PickOrder handles PATCH /api/v1/courier/orders/:id/pick.
func (s *Server) PickOrder(c echo.Context) error {
	return s.orderAction(c, "id", s.handlers.PickOrder)
}

// DeliverOrder handles PATCH /api/v1/courier/orders/:id/deliver.
func (s *Server) DeliverOrder(c echo.Context) error {
	return s.orderAction(c, "id", s.handlers.DeliverOrder)
}

// VerifyPayment handles PATCH /api/v1/payment/orders/:id/verify.
func (s *Server) VerifyPayment(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req VerifyPaymentRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderPaidCommand(actor, orderID, ports.PaymentProof{
		GatewayOrderID: req.RazorpayOrderID,
		PaymentID:      req.RazorpayPaymentID,
		Signature:      req.RazorpaySignature,
	})
	if err != nil {
		return err
	}
	paid, err := s.handlers.MarkOrderPaid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse(paid))
}

func (s *Server) orderAction(
	c echo.Context,
	param string,
	handler UseCase[commands.OrderActionCommand, *order.Order],
) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := uuidParam(c, param)
	if err != nil {
		return err
	}

	cmd, err := commands.NewOrderActionCommand(actor, orderID)
	if err != nil {
		return err
	}
	updated, err := handler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse(updated))
}
