package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"pagamentos/models"
	"pagamentos/repository"
	"pagamentos/validation"
)

// Registration messages
const (
	MsgWeakPassword = "The password must have at least 8 characters, including upper-case and lower-case letters, numbers and symbols."
	MsgEmailTaken   = "Email already registered."
)

// UserStore persistence used by AuthService
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthService account registration and credential checks
type AuthService struct {
	users UserStore
}

// NewAuthService creates an auth service
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account after the password strength and duplicate
// email checks. Only the bcrypt hash is stored.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	input := map[string]string{"name": name, "email": email, "password": password}
	if msgs := validation.RequiredFields(input, []string{"name", "email", "password"}); len(msgs) > 0 {
		return nil, newValidationError(msgs...)
	}

	if !validation.IsStrongPassword(password) {
		return nil, newValidationError(MsgWeakPassword)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, newValidationError(MsgEmailTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Name: name, Email: email, Password: string(hashed)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newValidationError(MsgEmailTaken)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate checks email and password.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Current loads the account behind actor.
func (s *AuthService) Current(ctx context.Context, actor Actor) (*models.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, actor.UserID)
}
