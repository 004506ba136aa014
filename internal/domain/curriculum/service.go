package curriculum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rpggio/curriculum/internal/domain/seedlog"
	"github.com/rpggio/curriculum/internal/repository"
)

// Service seeds and reads the persisted curriculum.
type Service struct {
	repo   Repository
	log    SeedLog
	logger *slog.Logger
}

// NewService creates a new curriculum service. log may be nil.
func NewService(repo Repository, log SeedLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, log: log, logger: logger}
}

// SeedResult reports which journeys a seed run wrote.
type SeedResult struct {
	RunID   string
	Created []string
	Skipped []string
}

// Seed stores journeys under a new run id. See SeedRun.
func (s *Service) Seed(ctx context.Context, journeys []Journey) (*SeedResult, error) {
	return s.SeedRun(ctx, uuid.NewString(), journeys)
}

// SeedRun stores each journey with its subtree, logging under runID (a
// new one when empty).
// Journeys whose slug already exists are skipped so reseeding is safe; the
// whole tree is validated before anything is written.
func (s *Service) SeedRun(ctx context.Context, runID string, journeys []Journey) (*SeedResult, error) {
	if _, err := NewIndex(journeys); err != nil {
		return nil, err
	}

	if runID == "" {
		runID = uuid.NewString()
	}
	result := &SeedResult{RunID: runID}
	for i := range journeys {
		j := journeys[i]
		_, err := s.repo.GetJourneyBySlug(ctx, j.Slug)
		switch {
		case err == nil:
			result.Skipped = append(result.Skipped, j.Slug)
			s.logger.Info("journey exists, skipping", "slug", j.Slug)
			s.record(ctx, result.RunID, seedlog.KindJourneySkipped, j.Slug, fmt.Sprintf("skipped existing journey %s", j.Slug))
			continue
		case !errors.Is(err, repository.ErrNotFound):
			return result, fmt.Errorf("checking journey %s: %w", j.Slug, err)
		}

		if err := s.repo.SaveJourney(ctx, &j); err != nil {
			return result, fmt.Errorf("saving journey %s: %w", j.Slug, err)
		}
		result.Created = append(result.Created, j.Slug)
		s.logger.Info("seeded journey", "slug", j.Slug, "levels", len(j.Levels), "lessons", j.LessonCount())
		s.record(ctx, result.RunID, seedlog.KindJourneyCreated, j.Slug, fmt.Sprintf("created journey %s with %d lessons", j.Slug, j.LessonCount()))
	}
	return result, nil
}

func (s *Service) record(ctx context.Context, runID string, kind seedlog.Kind, slug, summary string) {
	if s.log == nil {
		return
	}
	if err := s.log.Log(ctx, &seedlog.Entry{RunID: runID, Kind: kind, Slug: slug, Summary: summary}); err != nil {
		s.logger.Warn("failed to write seed log", "error", err, "slug", slug)
	}
}

// Journeys returns every persisted journey with its full tree.
func (s *Service) Journeys(ctx context.Context) ([]Journey, error) {
	journeys, err := s.repo.ListJourneys(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing journeys: %w", err)
	}
	return journeys, nil
}

// Tree loads the persisted curriculum and indexes it.
func (s *Service) Tree(ctx context.Context) (*Index, error) {
	journeys, err := s.Journeys(ctx)
	if err != nil {
		return nil, err
	}
	return NewIndex(journeys)
}

// JourneyBySlug returns one journey by its stable key.
func (s *Service) JourneyBySlug(ctx context.Context, slug string) (*Journey, error) {
	j, err := s.repo.GetJourneyBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJourneyNotFound
		}
		return nil, fmt.Errorf("getting journey: %w", err)
	}
	return j, nil
}
