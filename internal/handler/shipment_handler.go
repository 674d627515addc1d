package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /shipments のHTTP
type ShipmentHandler struct {
	uc *usecase.ShipmentUsecase
}

// DI
func NewShipmentHandler(uc *usecase.ShipmentUsecase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

type OrderProductRequest struct {
	ProductID int `json:"product_id"`
}

func (h *ShipmentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/shipments", h.listOutstanding)
	e.POST("/shipments", h.orderProduct)
	e.POST("/shipments/:product_id/process", h.processShipment)
}

func (h *ShipmentHandler) listOutstanding(c echo.Context) error {
	out, err := h.uc.ListOutstanding(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShipmentHandler) orderProduct(c echo.Context) error {
	var req OrderProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Order(c.Request().Context(), req.ProductID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "product on order"})
}

func (h *ShipmentHandler) processShipment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Process(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
