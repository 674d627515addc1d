package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /store のHTTP。データ一式の保存と復元。
type StoreHandler struct {
	uc *usecase.StoreUsecase
}

// DI
func NewStoreHandler(uc *usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

type StoreFileRequest struct {
	// 省略時は既定のファイル名を使う。
	File string `json:"file"`
}

func (h *StoreHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/store/save", h.save)
	e.POST("/store/load", h.load)
}

func (h *StoreHandler) save(c echo.Context) error {
	var req StoreFileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Save(c.Request().Context(), req.File)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *StoreHandler) load(c echo.Context) error {
	var req StoreFileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Load(c.Request().Context(), req.File)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
