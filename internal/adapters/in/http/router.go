package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	APIPrefix   = "/api/v1"
	OpenAPIPath = APIPrefix + "/openapi.json"
)

// NewEcho builds the echo instance with every route of the service.
// metrics and doc may be nil.
func NewEcho(s *Server, metrics *Metrics, doc *openapi3.T) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("110M"))
	if metrics != nil {
		e.Use(metrics.Middleware)
		e.GET("/metrics", metrics.Handler())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if doc != nil {
		e.GET(OpenAPIPath, openAPIHandler(doc))
		e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL(OpenAPIPath)))
	}

	s.RegisterRoutes(e.Group(APIPrefix))
	return e
}

// RegisterRoutes mounts the API. Role checks happen in the use cases.
func (s *Server) RegisterRoutes(g *echo.Group) {
	auth := s.authenticate

	g.POST("/users/register", s.RegisterUser)
	g.POST("/users/login", s.LoginUser)
	g.GET("/users/current-user", s.CurrentUser, auth)
	g.POST("/users/change-password", s.ChangePassword, auth)

	g.POST("/documents/upload", s.UploadDocuments, auth)
	g.GET("/documents/my", s.ListMyDocuments, auth)
	g.GET("/documents/my/:id", s.GetMyDocument, auth)

	g.POST("/orders", s.CreateOrder, auth)
	g.GET("/orders/my", s.ListMyOrders, auth)
	g.PUT("/orders/cancel/:orderId", s.CancelOrder, auth)
	g.GET("/orders/all", s.ListAllOrders, auth)
	g.PUT("/orders/all", s.ListAllOrders, auth)

	g.GET("/courier/available-orders", s.ListAvailableOrders, auth)
	g.PATCH("/courier/orders/:id/pick", s.PickOrder, auth)
	g.PATCH("/courier/orders/:id/deliver", s.DeliverOrder, auth)

	g.GET("/admin/users", s.ListUsers, auth)
	g.PATCH("/admin/users/:id/promote", s.PromoteUser, auth)

	g.PATCH("/payment/orders/:id/verify", s.VerifyPayment, auth)
}
