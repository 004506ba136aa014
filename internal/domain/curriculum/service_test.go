package curriculum_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/rpggio/curriculum/internal/domain/seedlog"
	"github.com/rpggio/curriculum/internal/repository"
	"github.com/rpggio/curriculum/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCurriculumService_SeedSavesEachJourney(t *testing.T) {
	ctx := context.Background()
	journeys := buildSample(t)

	repo := &mocks.CurriculumRepository{}
	var saved []*curriculum.Journey
	repo.On("GetJourneyBySlug", ctx, mock.Anything).Return((*curriculum.Journey)(nil), repository.ErrNotFound)
	repo.On("SaveJourney", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(1).(*curriculum.Journey))
	}).Return(nil)

	log := &mocks.SeedLogRepository{}
	log.On("Log", ctx, mock.MatchedBy(func(e *seedlog.Entry) bool {
		return e.Kind == seedlog.KindJourneyCreated && e.RunID != ""
	})).Return(nil).Twice()

	svc := curriculum.NewService(repo, log, nil)
	result, err := svc.Seed(ctx, journeys)
	require.NoError(t, err)
	require.Equal(t, []string{curriculum.BeginnerSlug, curriculum.IntermediateSlug}, result.Created)
	require.Empty(t, result.Skipped)
	require.NotEmpty(t, result.RunID)

	require.Len(t, saved, 2)
	var levels, lessons, activities int
	for _, j := range saved {
		levels += len(j.Levels)
		for _, level := range j.Levels {
			lessons += len(level.Lessons)
			for _, lesson := range level.Lessons {
				activities += len(lesson.Activities)
			}
		}
	}
	require.Equal(t, 4, levels)
	require.Equal(t, 9, lessons)
	require.Equal(t, 12, activities)
	log.AssertExpectations(t)
}

func TestCurriculumService_SeedRunUsesGivenRunID(t *testing.T) {
	ctx := context.Background()
	journeys := buildSample(t)

	repo := &mocks.CurriculumRepository{}
	repo.On("GetJourneyBySlug", ctx, curriculum.BeginnerSlug).Return(&journeys[0], nil)
	repo.On("GetJourneyBySlug", ctx, curriculum.IntermediateSlug).Return((*curriculum.Journey)(nil), repository.ErrNotFound)
	repo.On("SaveJourney", ctx, mock.Anything).Return(nil)

	log := &mocks.SeedLogRepository{}
	log.On("Log", ctx, mock.MatchedBy(func(e *seedlog.Entry) bool {
		return e.RunID == "run-42"
	})).Return(nil).Twice()

	svc := curriculum.NewService(repo, log, nil)
	result, err := svc.SeedRun(ctx, "run-42", journeys)
	require.NoError(t, err)
	require.Equal(t, "run-42", result.RunID)
	log.AssertExpectations(t)
}

func TestCurriculumService_SeedSkipsExistingSlugs(t *testing.T) {
	ctx := context.Background()
	journeys := buildSample(t)

	repo := &mocks.CurriculumRepository{}
	repo.On("GetJourneyBySlug", ctx, curriculum.BeginnerSlug).Return(&journeys[0], nil)
	repo.On("GetJourneyBySlug", ctx, curriculum.IntermediateSlug).Return((*curriculum.Journey)(nil), repository.ErrNotFound)
	repo.On("SaveJourney", ctx, mock.MatchedBy(func(j *curriculum.Journey) bool {
		return j.Slug == curriculum.IntermediateSlug
	})).Return(nil).Once()

	svc := curriculum.NewService(repo, nil, nil)
	result, err := svc.Seed(ctx, journeys)
	require.NoError(t, err)
	require.Equal(t, []string{curriculum.BeginnerSlug}, result.Skipped)
	require.Equal(t, []string{curriculum.IntermediateSlug}, result.Created)
	repo.AssertNumberOfCalls(t, "SaveJourney", 1)
}

func TestCurriculumService_SeedRejectsInvalidTree(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.CurriculumRepository{}

	svc := curriculum.NewService(repo, nil, nil)
	_, err := svc.Seed(ctx, []curriculum.Journey{
		{ID: 1, Slug: "a", Title: "A"},
		{ID: 2, Slug: "a", Title: "B"},
	})
	require.ErrorIs(t, err, curriculum.ErrValidation)
	repo.AssertNotCalled(t, "GetJourneyBySlug", mock.Anything, mock.Anything)
}

func TestCurriculumService_SeedStopsOnWriteError(t *testing.T) {
	ctx := context.Background()
	journeys := buildSample(t)
	boom := errors.New("disk full")

	repo := &mocks.CurriculumRepository{}
	repo.On("GetJourneyBySlug", ctx, mock.Anything).Return((*curriculum.Journey)(nil), repository.ErrNotFound)
	repo.On("SaveJourney", ctx, mock.Anything).Return(boom)

	svc := curriculum.NewService(repo, nil, nil)
	result, err := svc.Seed(ctx, journeys)
	require.ErrorIs(t, err, boom)
	require.Empty(t, result.Created)
	repo.AssertNumberOfCalls(t, "SaveJourney", 1)
}

func TestCurriculumService_SeedLogFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	j := buildSample(t)[:1]

	repo := &mocks.CurriculumRepository{}
	repo.On("GetJourneyBySlug", ctx, mock.Anything).Return(&j[0], nil)

	log := &mocks.SeedLogRepository{}
	log.On("Log", ctx, mock.Anything).Return(errors.New("locked"))

	svc := curriculum.NewService(repo, log, nil)
	result, err := svc.Seed(ctx, j)
	require.NoError(t, err)
	require.Len(t, result.Skipped, 1)
}

func TestCurriculumService_JourneyBySlug(t *testing.T) {
	ctx := context.Background()
	journeys := buildSample(t)

	repo := &mocks.CurriculumRepository{}
	repo.On("GetJourneyBySlug", ctx, curriculum.BeginnerSlug).Return(&journeys[0], nil)
	repo.On("GetJourneyBySlug", ctx, "missing").Return((*curriculum.Journey)(nil), repository.ErrNotFound)

	svc := curriculum.NewService(repo, nil, nil)
	j, err := svc.JourneyBySlug(ctx, curriculum.BeginnerSlug)
	require.NoError(t, err)
	require.Equal(t, int64(1), j.ID)

	_, err = svc.JourneyBySlug(ctx, "missing")
	require.ErrorIs(t, err, curriculum.ErrJourneyNotFound)
}

func TestCurriculumService_Tree(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.CurriculumRepository{}
	repo.On("ListJourneys", ctx).Return(buildSample(t), nil)

	svc := curriculum.NewService(repo, nil, nil)
	idx, err := svc.Tree(ctx)
	require.NoError(t, err)
	require.Equal(t, 27, idx.Size())
}
