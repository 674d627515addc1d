package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /members のHTTP
type MemberHandler struct {
	uc *usecase.MemberUsecase
}

// DI
func NewMemberHandler(uc *usecase.MemberUsecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

type EnrollMemberRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type UpdateMemberRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (h *MemberHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/members", h.enroll)
	e.GET("/members", h.listMembers)
	e.PATCH("/members/:id", h.updateMember)
	e.DELETE("/members/:id", h.removeMember)
}

func (h *MemberHandler) enroll(c echo.Context) error {
	var req EnrollMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	m, err := h.uc.Enroll(c.Request().Context(), usecase.EnrollMemberInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// name クエリがあれば名前検索、無ければ全件。
func (h *MemberHandler) listMembers(c echo.Context) error {
	if name := c.QueryParam("name"); name != "" {
		ms, err := h.uc.SearchByName(c.Request().Context(), name)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, ms)
	}

	ms, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ms)
}

func (h *MemberHandler) updateMember(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	m, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateMemberInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MemberHandler) removeMember(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Remove(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "member removed"})
}
