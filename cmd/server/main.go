package main

import (
	"log"
	"net/http"
	"os"

	_ "teamhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"teamhub/internal/auth"
	"teamhub/internal/cache"
	"teamhub/internal/config"
	"teamhub/internal/db"
	"teamhub/internal/handler"
	"teamhub/internal/hub"
	"teamhub/internal/model"
	"teamhub/internal/repository"
	"teamhub/internal/router"
	"teamhub/internal/service"
)

// @title TeamHub API
// @version 1.0
// @description Team management API: authentication, calendar, notices, live chat, daily attendance and user administration behind a role-gated REST surface.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.DailyTracking{},
			&model.ChatMessage{},
			&model.ChatSettings{},
			&model.AppSettings{},
			&model.Notice{},
			&model.NoticeTag{},
			&model.NoticeType{},
			&model.CalendarEvent{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CalendarEvent{},
		&model.NoticeType{},
		&model.NoticeTag{},
		&model.Notice{},
		&model.ChatMessage{},
		&model.DailyTracking{},
		&model.ChatSettings{},
		&model.AppSettings{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	calendarRepo := repository.NewCalendarRepository(gormDB)
	noticeRepo := repository.NewNoticeRepository(gormDB)
	chatRepo := repository.NewChatRepository(gormDB)
	trackingRepo := repository.NewTrackingRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Chat broadcast hub
	chatHub := hub.New()
	go chatHub.Run()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	calendarService := service.NewCalendarService(calendarRepo)
	noticeService := service.NewNoticeService(noticeRepo)
	chatService := service.NewChatService(chatRepo, cacheClient, chatHub)
	trackingService := service.NewTrackingService(trackingRepo)
	settingsService := service.NewSettingsService(settingsRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	noticeHandler := handler.NewNoticeHandler(noticeService)
	chatHandler := handler.NewChatHandler(chatService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	wsHandler := handler.NewWSHandler(chatHub, jwtService, userRepo)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		calendarHandler,
		noticeHandler,
		chatHandler,
		trackingHandler,
		settingsHandler,
		wsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
