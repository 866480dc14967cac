package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coursehub/internal/cache"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

const (
	coursesCacheKey = "courses:all"
	coursesCacheTTL = 5 * time.Minute
)

// DefaultCourses is the fixed catalog seeded on first boot.
var DefaultCourses = []model.Course{
	{Title: "Full Stack Web Development", Description: "Master HTML, CSS, JavaScript, Python, Flask & React", Price: 600000, Duration: "12 weeks", Level: "Beginner to Pro"},
	{Title: "UI/UX Design Mastery", Description: "Learn Figma, user research, prototyping & design thinking", Price: 350000, Duration: "10 weeks", Level: "Beginner"},
	{Title: "Mobile App Development", Description: "Build iOS & Android apps with React Native", Price: 400000, Duration: "10 weeks", Level: "Intermediate"},
	{Title: "Data Science & Machine Learning", Description: "Python, Pandas, TensorFlow, and real projects", Price: 400000, Duration: "14 weeks", Level: "Intermediate"},
	{Title: "Digital Marketing", Description: "SEO, Google Ads, Social Media & Content Strategy", Price: 250000, Duration: "8 weeks", Level: "Beginner"},
	{Title: "Product Management", Description: "From idea to launch: Agile, Jira, Roadmapping", Price: 250000, Duration: "8 weeks", Level: "All Levels"},
}

// CatalogService handles course catalog reads and the one-time seed.
type CatalogService interface {
	Courses(ctx context.Context) ([]model.Course, error)
	SeedDefaultCourses(ctx context.Context) (int, error)
}

type catalogService struct {
	repo  repository.CourseRepository
	cache *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CourseRepository, cache *cache.Client) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

// Courses lists the catalog with caching. The catalog is immutable once
// seeded, so a cached copy can never go stale within a deployment.
func (s *catalogService) Courses(ctx context.Context) ([]model.Course, error) {
	if data, _ := s.cache.Get(ctx, coursesCacheKey); data != nil {
		var cached []model.Course
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	if payload, err := json.Marshal(courses); err == nil {
		_ = s.cache.Set(ctx, coursesCacheKey, payload, coursesCacheTTL)
	}
	return courses, nil
}

// SeedDefaultCourses inserts the fixed catalog if the table is empty.
// The count and insert run in one transaction, so seeding twice (or from
// two processes) still yields exactly one catalog.
func (s *catalogService) SeedDefaultCourses(ctx context.Context) (int, error) {
	seeded := 0
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.CourseRepository) error {
		n, err := repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count courses: %w", err)
		}
		if n > 0 {
			return nil
		}
		courses := make([]model.Course, len(DefaultCourses))
		copy(courses, DefaultCourses)
		if err := repo.CreateBatch(ctx, courses); err != nil {
			return fmt.Errorf("insert courses: %w", err)
		}
		seeded = len(courses)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seeded, nil
}
