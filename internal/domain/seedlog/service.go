package seedlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Service handles seed log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new seed log service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Log records an entry, stamping the current time if missing.
func (s *Service) Log(ctx context.Context, entry *Entry) error {
	if entry == nil || strings.TrimSpace(entry.RunID) == "" || entry.Kind == "" {
		return ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging seed entry: %w", err)
	}
	s.logger.Debug("seed log", "run_id", entry.RunID, "kind", entry.Kind, "slug", entry.Slug)
	return nil
}

// Recent lists entries, newest first.
func (s *Service) Recent(ctx context.Context, opts ListOptions) ([]Entry, error) {
	return s.repo.List(ctx, opts)
}
