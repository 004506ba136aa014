package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rpggio/curriculum/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Service handles admin user operations.
type Service struct {
	repo     Repository
	logger   *slog.Logger
	validate *validator.Validate
	cost     int
}

// NewService creates a new admin service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		repo:     repo,
		logger:   logger,
		validate: validator.New(),
		cost:     bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost (tests use bcrypt.MinCost).
func (s *Service) WithCost(cost int) *Service {
	s.cost = cost
	return s
}

// EnsureRequest defines the bootstrap account.
type EnsureRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

// Ensure creates the admin user if no account with that email exists. An
// existing account is returned untouched; its password is not changed.
func (s *Service) Ensure(ctx context.Context, req EnsureRequest) (*User, bool, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validate.Struct(req); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		s.logger.Info("admin user exists", "email", req.Email)
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("getting admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, false, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("creating admin user: %w", err)
	}
	s.logger.Info("created admin user", "email", user.Email)
	return user, true, nil
}

// CheckPassword verifies password against the stored hash for email.
func (s *Service) CheckPassword(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting admin user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return user, nil
}
