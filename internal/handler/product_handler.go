package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products のHTTP
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type AddProductRequest struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	RestockAmount int     `json:"restock_amount"`
}

type UpdatePriceRequest struct {
	Price float64 `json:"price"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/products", h.addProduct)
	e.GET("/products", h.listProducts)
	e.GET("/products/:id", h.getProduct)
	e.PATCH("/products/:id/price", h.updatePrice)
}

func (h *ProductHandler) addProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Add(c.Request().Context(), usecase.AddProductInput{
		ID:            req.ID,
		Name:          req.Name,
		Price:         req.Price,
		Stock:         req.Stock,
		RestockAmount: req.RestockAmount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// name クエリがあれば商品名検索、無ければ全件。
func (h *ProductHandler) listProducts(c echo.Context) error {
	if name := c.QueryParam("name"); name != "" {
		p, err := h.uc.GetByName(c.Request().Context(), name)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, p)
	}

	ps, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *ProductHandler) getProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) updatePrice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.UpdatePrice(c.Request().Context(), id, req.Price)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
