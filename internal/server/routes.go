package server

import (
	"net/http"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Member      *handler.MemberHandler
	Product     *handler.ProductHandler
	Checkout    *handler.CheckoutHandler
	Shipment    *handler.ShipmentHandler
	Transaction *handler.TransactionHandler
	Store       *handler.StoreHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Member.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Shipment.RegisterRoutes(e)
	h.Transaction.RegisterRoutes(e)
	h.Store.RegisterRoutes(e)
}
