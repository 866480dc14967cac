package main

import (
	"context"
	"log"

	"coursehub/internal/config"
	"coursehub/internal/db"
	"coursehub/internal/model"
	"coursehub/internal/repository"
	"coursehub/internal/service"
)

// Standalone catalog seeder. Safe to run repeatedly: it only inserts when
// the course table is empty.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Course{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	courseRepo := repository.NewCourseRepository(gormDB)
	catalog := service.NewCatalogService(courseRepo, nil)

	ctx := context.Background()
	seeded, err := catalog.SeedDefaultCourses(ctx)
	if err != nil {
		log.Fatalf("Failed to seed courses: %v", err)
	}

	total, err := courseRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count courses: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New courses created: %d", seeded)
	log.Printf("  - Total courses in catalog: %d", total)
}
