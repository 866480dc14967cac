package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"coursehub/internal/model"
	"coursehub/internal/repository"
)

// MockCourseRepository is a mock implementation of CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepository) CreateBatch(ctx context.Context, courses []model.Course) error {
	args := m.Called(ctx, courses)
	return args.Error(0)
}

func (m *MockCourseRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.CourseRepository) error) error {
	args := m.Called(ctx, mock.Anything)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m)
}

func TestCatalogService_Courses(t *testing.T) {
	want := []model.Course{{ID: 1, Title: "Full Stack Web Development"}}

	mockRepo := new(MockCourseRepository)
	mockRepo.On("List", mock.Anything).Return(want, nil)

	svc := NewCatalogService(mockRepo, nil)
	got, err := svc.Courses(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, want, got)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_SeedDefaultCourses_EmptyTable(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("Count", mock.Anything).Return(int64(0), nil)
	mockRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(courses []model.Course) bool {
		return len(courses) == len(DefaultCourses)
	})).Return(nil)

	svc := NewCatalogService(mockRepo, nil)
	seeded, err := svc.SeedDefaultCourses(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, len(DefaultCourses), seeded)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_SeedDefaultCourses_Idempotent(t *testing.T) {
	// The table already holds the catalog: seeding again inserts nothing.
	mockRepo := new(MockCourseRepository)
	mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("Count", mock.Anything).Return(int64(len(DefaultCourses)), nil)

	svc := NewCatalogService(mockRepo, nil)

	for i := 0; i < 2; i++ {
		seeded, err := svc.SeedDefaultCourses(context.Background())
		assert.NoError(t, err)
		assert.Zero(t, seeded)
	}

	mockRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestDefaultCourses_CatalogShape(t *testing.T) {
	assert.Len(t, DefaultCourses, 6)
	for _, course := range DefaultCourses {
		assert.NotEmpty(t, course.Title)
		assert.NotEmpty(t, course.Description)
		assert.Positive(t, course.Price)
		assert.NotEmpty(t, course.Duration)
		assert.NotEmpty(t, course.Level)
	}
}
