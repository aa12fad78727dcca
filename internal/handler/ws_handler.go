package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"teamhub/internal/auth"
	"teamhub/internal/hub"
	"teamhub/internal/repository"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The API is consumed cross-origin by the SPA. Tighten in production.
		return true
	},
}

// WSHandler upgrades chat connections after validating the session token.
type WSHandler struct {
	hub      *hub.Hub
	jwt      *auth.JWTService
	userRepo repository.UserRepository
}

// NewWSHandler creates a new websocket handler.
func NewWSHandler(h *hub.Hub, jwt *auth.JWTService, userRepo repository.UserRepository) *WSHandler {
	return &WSHandler{hub: h, jwt: jwt, userRepo: userRepo}
}

// Serve godoc
// @Summary Open the chat websocket
// @Tags chat
// @Param token query string false "Session token (alternative to Authorization header)"
// @Success 101
// @Failure 401 {object} errors.ErrorResponse
// @Router /ws [get]
func (h *WSHandler) Serve(c echo.Context) error {
	// Browsers cannot set headers on websocket upgrades, so the token is
	// also accepted as a query parameter.
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	claims, err := h.jwt.ValidateToken(tokenString)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	userID, err := claims.SubjectID()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	user, err := h.userRepo.FindByID(c.Request().Context(), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusUnauthorized, "user not found or inactive")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	if !user.IsActive {
		return echo.NewHTTPError(http.StatusUnauthorized, "user not found or inactive")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return nil
	}

	client := hub.NewClient(conn, user)
	h.hub.Register(client)
	go h.hub.ReadLoop(client)

	return nil
}
