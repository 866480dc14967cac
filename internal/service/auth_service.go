package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"coursehub/internal/auth"
	"coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

// AuthService handles registration, credential verification and identity
// resolution. It never renders user-facing text; handlers classify the
// returned domain errors.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, phone, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	CurrentUser(ctx context.Context, id uint) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// NormalizeEmail lowercases and trims an address so lookups and the unique
// index agree on what "the same email" means.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a hashed password. No session is
// established here; the caller sends the user to the login form.
func (s *authService) Register(ctx context.Context, firstName, lastName, email, phone, password string) (*model.User, error) {
	email = NormalizeEmail(email)

	// Friendly-path check. A concurrent registration slipping past it is
	// still rejected by the unique index in Create.
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if stderrors.Is(err, errors.ErrEmailTaken) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password collapse into
// the same error so responses cannot be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, errors.ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser resolves a session-carried id into a user. A stale id (account
// deleted since the cookie was issued) reports ErrUserNotFound.
func (s *authService) CurrentUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
