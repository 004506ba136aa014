package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/curriculum/internal/domain/admin"
	"github.com/rpggio/curriculum/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	user := &admin.User{
		ID:           "u1",
		Email:        "admin@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))

	retrieved, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", retrieved.ID)
	require.Equal(t, "hash", retrieved.PasswordHash)
	require.WithinDuration(t, user.CreatedAt, retrieved.CreatedAt, time.Second)
}

func TestAdminRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAdminRepository(db)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAdminRepository_DuplicateEmail(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &admin.User{ID: "u1", Email: "a@example.com", PasswordHash: "h", CreatedAt: time.Now()}))
	err := repo.Create(ctx, &admin.User{ID: "u2", Email: "a@example.com", PasswordHash: "h", CreatedAt: time.Now()})
	require.ErrorIs(t, err, repository.ErrConflict)
}
