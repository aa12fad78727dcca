package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"teamhub/internal/config"
	"teamhub/internal/db"
	"teamhub/internal/model"
	"teamhub/internal/repository"
	"teamhub/internal/service"
)

// Default classifiers created for a fresh installation.
var defaultNoticeTypes = []model.NoticeType{
	{Name: "Informativo", Color: "#6366f1"},
	{Name: "Urgente", Color: "#ef4444"},
	{Name: "Manutenção", Color: "#f59e0b"},
}

var defaultNoticeTags = []model.NoticeTag{
	{Name: "Geral", Color: "#6366f1"},
	{Name: "RH", Color: "#10b981"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.NoticeType{},
		&model.NoticeTag{},
		&model.ChatSettings{},
		&model.AppSettings{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	for _, t := range defaultNoticeTypes {
		if err := upsertByName(gormDB, &model.NoticeType{}, t.Name, &t); err != nil {
			log.Fatalf("Failed to seed notice type %q: %v", t.Name, err)
		}
	}
	for _, t := range defaultNoticeTags {
		if err := upsertByName(gormDB, &model.NoticeTag{}, t.Name, &t); err != nil {
			log.Fatalf("Failed to seed notice tag %q: %v", t.Name, err)
		}
	}

	// Settings singletons are created with defaults on first read.
	if _, err := repository.NewChatRepository(gormDB).GetOrCreateSettings(ctx); err != nil {
		log.Fatalf("Failed to seed chat settings: %v", err)
	}
	if _, err := repository.NewSettingsRepository(gormDB).GetOrCreate(ctx); err != nil {
		log.Fatalf("Failed to seed app settings: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the initial admin account when no user exists yet.
func seedAdmin(ctx context.Context, repo repository.UserRepository) error {
	existing, err := repo.FindByUsername(ctx, "admin")
	if err == nil && existing != nil {
		log.Println("Admin user already exists, skipping")
		return nil
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := service.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     "admin",
		PasswordHash: hashed,
		FirstName:    "Admin",
		LastName:     "User",
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	log.Println("Admin user created (username: admin, password: admin123, change it after first login)")
	return nil
}

// upsertByName creates the record when its name is not taken yet.
func upsertByName(db *gorm.DB, probe interface{}, name string, value interface{}) error {
	err := db.Where("name = ?", name).First(probe).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return db.Create(value).Error
}
