package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"teamhub/internal/model"
	"teamhub/internal/service"
)

// ChatHandler handles chat message and chat settings endpoints.
type ChatHandler struct {
	svc service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// CreateMessageRequest represents a message post.
type CreateMessageRequest struct {
	Content    string            `json:"content" validate:"required"`
	Type       model.MessageType `json:"type" validate:"omitempty,oneof=text emoji image priority"`
	ImageURL   string            `json:"imageUrl"`
	IsPriority bool              `json:"isPriority"`
}

// UpdateMessageRequest represents a message edit.
type UpdateMessageRequest struct {
	Content    *string            `json:"content"`
	Type       *model.MessageType `json:"type" validate:"omitempty,oneof=text emoji image priority"`
	ImageURL   *string            `json:"imageUrl"`
	IsPriority *bool              `json:"isPriority"`
}

// UpdateChatSettingsRequest represents a chat settings update.
type UpdateChatSettingsRequest struct {
	IsPaused bool `json:"isPaused"`
}

// ListMessages godoc
// @Summary List recent chat messages, newest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum messages to return (default 100)"
// @Success 200 {array} model.ChatMessage
// @Failure 401 {object} errors.ErrorResponse
// @Router /chat/messages [get]
func (h *ChatHandler) ListMessages(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	messages, err := h.svc.ListMessages(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// CreateMessage godoc
// @Summary Post a chat message
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMessageRequest true "Message payload"
// @Success 201 {object} model.ChatMessage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /chat/messages [post]
func (h *ChatHandler) CreateMessage(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.svc.CreateMessage(c.Request().Context(), user.ID, service.CreateMessageInput{
		Content:    req.Content,
		Type:       req.Type,
		ImageURL:   req.ImageURL,
		IsPriority: req.IsPriority,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, msg)
}

// UpdateMessage godoc
// @Summary Edit a chat message
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body UpdateMessageRequest true "Fields to update"
// @Success 200 {object} model.ChatMessage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /chat/messages/{id} [put]
func (h *ChatHandler) UpdateMessage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.svc.UpdateMessage(c.Request().Context(), id, service.UpdateMessageInput{
		Content:    req.Content,
		Type:       req.Type,
		ImageURL:   req.ImageURL,
		IsPriority: req.IsPriority,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, msg)
}

// DeleteMessage godoc
// @Summary Delete a chat message
// @Tags chat
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /chat/messages/{id} [delete]
func (h *ChatHandler) DeleteMessage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.DeleteMessage(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSettings godoc
// @Summary Get chat settings
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ChatSettings
// @Router /chat/settings [get]
func (h *ChatHandler) GetSettings(c echo.Context) error {
	settings, err := h.svc.GetSettings(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Update chat settings
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateChatSettingsRequest true "Settings payload"
// @Success 200 {object} model.ChatSettings
// @Failure 403 {object} errors.ErrorResponse
// @Router /chat/settings [put]
func (h *ChatHandler) UpdateSettings(c echo.Context) error {
	var req UpdateChatSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	settings, err := h.svc.UpdateSettings(c.Request().Context(), req.IsPaused)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}
