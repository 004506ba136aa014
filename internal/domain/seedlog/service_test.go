package seedlog_test

import (
	"context"
	"testing"

	"github.com/rpggio/curriculum/internal/domain/seedlog"
	"github.com/rpggio/curriculum/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func TestSeedLogService_LogAndRecent(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.SeedLogRepository{}
	entry := &seedlog.Entry{
		RunID:   "run1",
		Kind:    seedlog.KindJourneyCreated,
		Slug:    "beginner-english-journey",
		Summary: "created",
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, seedlog.ListOptions{RunID: "run1"}).Return([]seedlog.Entry{*entry}, nil)

	svc := seedlog.NewService(repo, nil)
	require.NoError(t, svc.Log(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.Recent(ctx, seedlog.ListOptions{RunID: "run1"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSeedLogService_LogValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SeedLogRepository{}
	svc := seedlog.NewService(repo, nil)

	require.ErrorIs(t, svc.Log(ctx, nil), seedlog.ErrInvalidInput)
	require.ErrorIs(t, svc.Log(ctx, &seedlog.Entry{Kind: seedlog.KindJourneySkipped}), seedlog.ErrInvalidInput)
	require.ErrorIs(t, svc.Log(ctx, &seedlog.Entry{RunID: "run1"}), seedlog.ErrInvalidInput)
	repo.AssertNotCalled(t, "Log")
}
