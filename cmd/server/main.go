package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	"coursehub/internal/cache"
	"coursehub/internal/config"
	"coursehub/internal/db"
	"coursehub/internal/handler"
	"coursehub/internal/model"
	"coursehub/internal/repository"
	"coursehub/internal/router"
	"coursehub/internal/service"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Course{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)

	// Initialize services
	sessions := auth.NewSessionService(cfg.SessionSecret)
	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(courseRepo, cacheClient)

	// Seed the catalog on first boot
	seeded, err := catalogService.SeedDefaultCourses(context.Background())
	if err != nil {
		log.Fatalf("seed courses: %v", err)
	}
	if seeded > 0 {
		log.Printf("seeded %d courses", seeded)
	}

	// Initialize handlers
	pageHandler := handler.NewPageHandler(authService, catalogService, sessions)
	apiHandler := handler.NewAPIHandler(authService, catalogService)

	e := echo.New()
	router.Register(e, sessions, pageHandler, apiHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
