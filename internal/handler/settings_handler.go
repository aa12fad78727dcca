package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"teamhub/internal/service"
)

// SettingsHandler handles app-wide settings endpoints.
type SettingsHandler struct {
	svc service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// UpdateAppSettingsRequest represents an app settings update.
type UpdateAppSettingsRequest struct {
	DarkMode bool `json:"darkMode"`
}

// Get godoc
// @Summary Get app settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AppSettings
// @Router /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.svc.Get(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Update app settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateAppSettingsRequest true "Settings payload"
// @Success 200 {object} model.AppSettings
// @Failure 403 {object} errors.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req UpdateAppSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	settings, err := h.svc.Update(c.Request().Context(), req.DarkMode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}
