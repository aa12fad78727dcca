package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"teamhub/internal/service"
)

// NoticeHandler handles notice board endpoints.
type NoticeHandler struct {
	svc service.NoticeService
}

// NewNoticeHandler creates a new notice handler.
func NewNoticeHandler(svc service.NoticeService) *NoticeHandler {
	return &NoticeHandler{svc: svc}
}

// CreateNoticeRequest represents a notice creation request.
type CreateNoticeRequest struct {
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	TypeID      string     `json:"typeId" validate:"required,uuid"`
	Tags        []string   `json:"tags"`
	Deadline    *time.Time `json:"deadline"`
	RenewalDate *time.Time `json:"renewalDate"`
}

// UpdateNoticeRequest represents a partial notice update.
type UpdateNoticeRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	TypeID      *string    `json:"typeId" validate:"omitempty,uuid"`
	Tags        []string   `json:"tags"`
	Deadline    *time.Time `json:"deadline"`
	RenewalDate *time.Time `json:"renewalDate"`
	IsActive    *bool      `json:"isActive"`
}

// CreateClassifierRequest represents a notice type or tag creation request.
type CreateClassifierRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// ListNotices godoc
// @Summary List active notices, newest first
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Notice
// @Failure 401 {object} errors.ErrorResponse
// @Router /notices [get]
func (h *NoticeHandler) ListNotices(c echo.Context) error {
	notices, err := h.svc.ListNotices(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, notices)
}

// CreateNotice godoc
// @Summary Create a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNoticeRequest true "Notice payload"
// @Success 201 {object} model.Notice
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notices [post]
func (h *NoticeHandler) CreateNotice(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req CreateNoticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid typeId")
	}

	notice, err := h.svc.CreateNotice(c.Request().Context(), user.ID, service.CreateNoticeInput{
		Title:       req.Title,
		Content:     req.Content,
		TypeID:      typeID,
		Tags:        req.Tags,
		Deadline:    req.Deadline,
		RenewalDate: req.RenewalDate,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, notice)
}

// UpdateNotice godoc
// @Summary Partially update a notice
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Param request body UpdateNoticeRequest true "Fields to update"
// @Success 200 {object} model.Notice
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notices/{id} [put]
func (h *NoticeHandler) UpdateNotice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateNoticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.UpdateNoticeInput{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		Deadline:    req.Deadline,
		RenewalDate: req.RenewalDate,
		IsActive:    req.IsActive,
	}
	if req.TypeID != nil {
		typeID, err := uuid.Parse(*req.TypeID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid typeId")
		}
		in.TypeID = &typeID
	}

	notice, err := h.svc.UpdateNotice(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, notice)
}

// DeleteNotice godoc
// @Summary Soft-delete a notice
// @Tags notices
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /notices/{id} [delete]
func (h *NoticeHandler) DeleteNotice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.DeleteNotice(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTypes godoc
// @Summary List notice types
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.NoticeType
// @Router /notice-types [get]
func (h *NoticeHandler) ListTypes(c echo.Context) error {
	types, err := h.svc.ListTypes(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, types)
}

// CreateType godoc
// @Summary Create a notice type
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClassifierRequest true "Type payload"
// @Success 201 {object} model.NoticeType
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /notice-types [post]
func (h *NoticeHandler) CreateType(c echo.Context) error {
	var req CreateClassifierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.svc.CreateType(c.Request().Context(), req.Name, req.Color)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// DeleteType godoc
// @Summary Delete a notice type
// @Tags notices
// @Security BearerAuth
// @Param id path string true "Type ID"
// @Success 204
// @Router /notice-types/{id} [delete]
func (h *NoticeHandler) DeleteType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteType(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTags godoc
// @Summary List notice tags
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.NoticeTag
// @Router /notice-tags [get]
func (h *NoticeHandler) ListTags(c echo.Context) error {
	tags, err := h.svc.ListTags(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tags)
}

// CreateTag godoc
// @Summary Create a notice tag
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClassifierRequest true "Tag payload"
// @Success 201 {object} model.NoticeTag
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /notice-tags [post]
func (h *NoticeHandler) CreateTag(c echo.Context) error {
	var req CreateClassifierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.svc.CreateTag(c.Request().Context(), req.Name, req.Color)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// DeleteTag godoc
// @Summary Delete a notice tag
// @Tags notices
// @Security BearerAuth
// @Param id path string true "Tag ID"
// @Success 204
// @Router /notice-tags/{id} [delete]
func (h *NoticeHandler) DeleteTag(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteTag(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
