package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"teamhub/internal/model"
	"teamhub/internal/service"
)

// CalendarHandler handles calendar event endpoints.
type CalendarHandler struct {
	svc service.CalendarService
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(svc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// CreateEventRequest represents an event creation request.
type CreateEventRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"startDate" validate:"required"`
	EndDate     *time.Time      `json:"endDate"`
	Type        model.EventType `json:"type" validate:"required,oneof=lembrete folga treinamento"`
	AssignedTo  []string        `json:"assignedTo"`
	IsAllUsers  bool            `json:"isAllUsers"`
}

// UpdateEventRequest represents a partial event update.
type UpdateEventRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Type        *model.EventType `json:"type" validate:"omitempty,oneof=lembrete folga treinamento"`
	AssignedTo  []string         `json:"assignedTo"`
	IsAllUsers  *bool            `json:"isAllUsers"`
}

// List godoc
// @Summary List calendar events
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CalendarEvent
// @Failure 401 {object} errors.ErrorResponse
// @Router /calendar [get]
func (h *CalendarHandler) List(c echo.Context) error {
	events, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary Create a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} model.CalendarEvent
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /calendar [post]
func (h *CalendarHandler) Create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.svc.Create(c.Request().Context(), user.ID, service.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Type:        req.Type,
		AssignedTo:  req.AssignedTo,
		IsAllUsers:  req.IsAllUsers,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, event)
}

// Update godoc
// @Summary Partially update a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body UpdateEventRequest true "Fields to update"
// @Success 200 {object} model.CalendarEvent
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /calendar/{id} [put]
func (h *CalendarHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.svc.Update(c.Request().Context(), id, service.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Type:        req.Type,
		AssignedTo:  req.AssignedTo,
		IsAllUsers:  req.IsAllUsers,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, event)
}

// Delete godoc
// @Summary Delete a calendar event
// @Tags calendar
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /calendar/{id} [delete]
func (h *CalendarHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
