package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"teamhub/internal/model"
	"teamhub/internal/service"
)

// TrackingHandler handles daily attendance endpoints.
type TrackingHandler struct {
	svc service.TrackingService
}

// NewTrackingHandler creates a new tracking handler.
func NewTrackingHandler(svc service.TrackingService) *TrackingHandler {
	return &TrackingHandler{svc: svc}
}

// CreateTrackingRequest represents a tracking record creation request.
type CreateTrackingRequest struct {
	UserID            string               `json:"userId" validate:"required,uuid"`
	Date              string               `json:"date" validate:"required"`
	Status            model.TrackingStatus `json:"status" validate:"required,oneof=trabalhou atestado ferias"`
	WeeklyAttendances int                  `json:"weeklyAttendances" validate:"gte=0"`
}

// UpdateTrackingRequest represents a partial tracking update.
type UpdateTrackingRequest struct {
	Status            *model.TrackingStatus `json:"status" validate:"omitempty,oneof=trabalhou atestado ferias"`
	WeeklyAttendances *int                  `json:"weeklyAttendances" validate:"omitempty,gte=0"`
}

// List godoc
// @Summary List tracking records, optionally for an exact date
// @Tags tracking
// @Produce json
// @Security BearerAuth
// @Param date query string false "ISO date (YYYY-MM-DD)"
// @Success 200 {array} model.DailyTracking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /daily-tracking [get]
func (h *TrackingHandler) List(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// Create godoc
// @Summary Create a tracking record
// @Tags tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTrackingRequest true "Tracking payload"
// @Success 201 {object} model.DailyTracking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /daily-tracking [post]
func (h *TrackingHandler) Create(c echo.Context) error {
	var req CreateTrackingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid userId")
	}

	tracking, err := h.svc.Create(c.Request().Context(), service.CreateTrackingInput{
		UserID:            userID,
		Date:              req.Date,
		Status:            req.Status,
		WeeklyAttendances: req.WeeklyAttendances,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, tracking)
}

// Update godoc
// @Summary Partially update a tracking record
// @Tags tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tracking ID"
// @Param request body UpdateTrackingRequest true "Fields to update"
// @Success 200 {object} model.DailyTracking
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /daily-tracking/{id} [put]
func (h *TrackingHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateTrackingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tracking, err := h.svc.Update(c.Request().Context(), id, service.UpdateTrackingInput{
		Status:            req.Status,
		WeeklyAttendances: req.WeeklyAttendances,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, tracking)
}
