package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"teamhub/docs"
	"teamhub/internal/auth"
	"teamhub/internal/config"
	"teamhub/internal/handler"
	"teamhub/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	calendarHandler *handler.CalendarHandler,
	noticeHandler *handler.NoticeHandler,
	chatHandler *handler.ChatHandler,
	trackingHandler *handler.TrackingHandler,
	settingsHandler *handler.SettingsHandler,
	wsHandler *handler.WSHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Chat websocket; token is checked inside the handler since browsers
	// cannot attach headers on upgrade requests.
	e.GET("/ws", wsHandler.Serve)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a valid session token and an active user)
	secured := api.Group("", jwtAuth(jwtService), loadUser(userRepo))

	secured.GET("/auth/user", authHandler.Me)

	// User management
	secured.GET("/users", userHandler.List, requireAction(auth.ActionUsersRead))
	secured.POST("/users", userHandler.Create, requireAction(auth.ActionUsersWrite))
	secured.PUT("/users/:id", userHandler.Update, requireAction(auth.ActionUsersWrite))

	// Calendar
	secured.GET("/calendar", calendarHandler.List, requireAction(auth.ActionCalendarRead))
	secured.POST("/calendar", calendarHandler.Create, requireAction(auth.ActionCalendarWrite))
	secured.PUT("/calendar/:id", calendarHandler.Update, requireAction(auth.ActionCalendarWrite))
	secured.DELETE("/calendar/:id", calendarHandler.Delete, requireAction(auth.ActionCalendarWrite))

	// Notices and their classifiers
	secured.GET("/notices", noticeHandler.ListNotices, requireAction(auth.ActionNoticesRead))
	secured.POST("/notices", noticeHandler.CreateNotice, requireAction(auth.ActionNoticesWrite))
	secured.PUT("/notices/:id", noticeHandler.UpdateNotice, requireAction(auth.ActionNoticesWrite))
	secured.DELETE("/notices/:id", noticeHandler.DeleteNotice, requireAction(auth.ActionNoticesWrite))

	secured.GET("/notice-types", noticeHandler.ListTypes, requireAction(auth.ActionNoticesRead))
	secured.POST("/notice-types", noticeHandler.CreateType, requireAction(auth.ActionNoticeTypesWrite))
	secured.DELETE("/notice-types/:id", noticeHandler.DeleteType, requireAction(auth.ActionNoticeTypesWrite))

	secured.GET("/notice-tags", noticeHandler.ListTags, requireAction(auth.ActionNoticesRead))
	secured.POST("/notice-tags", noticeHandler.CreateTag, requireAction(auth.ActionNoticeTagsWrite))
	secured.DELETE("/notice-tags/:id", noticeHandler.DeleteTag, requireAction(auth.ActionNoticeTagsWrite))

	// Chat
	secured.GET("/chat/messages", chatHandler.ListMessages, requireAction(auth.ActionChatRead))
	secured.POST("/chat/messages", chatHandler.CreateMessage, requireAction(auth.ActionChatWrite))
	secured.PUT("/chat/messages/:id", chatHandler.UpdateMessage, requireAction(auth.ActionChatWrite))
	secured.DELETE("/chat/messages/:id", chatHandler.DeleteMessage, requireAction(auth.ActionChatWrite))
	secured.GET("/chat/settings", chatHandler.GetSettings, requireAction(auth.ActionChatRead))
	secured.PUT("/chat/settings", chatHandler.UpdateSettings, requireAction(auth.ActionChatSettingsWrite))

	// Daily tracking
	secured.GET("/daily-tracking", trackingHandler.List, requireAction(auth.ActionTrackingRead))
	secured.POST("/daily-tracking", trackingHandler.Create, requireAction(auth.ActionTrackingWrite))
	secured.PUT("/daily-tracking/:id", trackingHandler.Update, requireAction(auth.ActionTrackingWrite))

	// App settings
	secured.GET("/settings", settingsHandler.Get, requireAction(auth.ActionSettingsRead))
	secured.PUT("/settings", settingsHandler.Update, requireAction(auth.ActionSettingsWrite))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
