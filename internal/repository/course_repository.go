package repository

import (
	"context"

	"gorm.io/gorm"

	"coursehub/internal/model"
)

// CourseRepository defines catalog persistence operations.
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, courses []model.Course) error
	// WithTransaction runs fn against a transaction-scoped repository.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CourseRepository) error) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// List returns all courses in storage order.
func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// Count returns the number of catalog rows.
func (r *courseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Course{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CreateBatch inserts courses in a single statement.
func (r *courseRepository) CreateBatch(ctx context.Context, courses []model.Course) error {
	return r.db.WithContext(ctx).Create(&courses).Error
}

// WithTransaction executes a function within a database transaction.
func (r *courseRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CourseRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &courseRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
