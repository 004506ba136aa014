package admin_test

import (
	"context"
	"testing"

	"github.com/rpggio/curriculum/internal/domain/admin"
	"github.com/rpggio/curriculum/internal/repository"
	"github.com/rpggio/curriculum/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminService_EnsureCreates(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.AdminRepository{}
	repo.On("GetByEmail", ctx, "admin@example.com").Return((*admin.User)(nil), repository.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := admin.NewService(repo, nil).WithCost(bcrypt.MinCost)
	user, created, err := svc.Ensure(ctx, admin.EnsureRequest{Email: " Admin@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	require.True(t, created)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "admin@example.com", user.Email)
	require.NotEqual(t, "correct horse", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
}

func TestAdminService_EnsureKeepsExisting(t *testing.T) {
	ctx := context.Background()
	existing := &admin.User{ID: "u1", Email: "admin@example.com", PasswordHash: "old"}

	repo := &mocks.AdminRepository{}
	repo.On("GetByEmail", ctx, "admin@example.com").Return(existing, nil)

	svc := admin.NewService(repo, nil)
	user, created, err := svc.Ensure(ctx, admin.EnsureRequest{Email: "admin@example.com", Password: "new password"})
	require.NoError(t, err)
	require.False(t, created)
	require.Same(t, existing, user)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_EnsureValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AdminRepository{}
	svc := admin.NewService(repo, nil)

	_, _, err := svc.Ensure(ctx, admin.EnsureRequest{Email: "not-an-email", Password: "long enough"})
	require.ErrorIs(t, err, admin.ErrInvalidInput)

	_, _, err = svc.Ensure(ctx, admin.EnsureRequest{Email: "admin@example.com", Password: "short"})
	require.ErrorIs(t, err, admin.ErrInvalidInput)
}

func TestAdminService_CheckPassword(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mocks.AdminRepository{}
	repo.On("GetByEmail", ctx, "admin@example.com").Return(&admin.User{ID: "u1", Email: "admin@example.com", PasswordHash: string(hash)}, nil)
	repo.On("GetByEmail", ctx, "nobody@example.com").Return((*admin.User)(nil), repository.ErrNotFound)

	svc := admin.NewService(repo, nil)
	user, err := svc.CheckPassword(ctx, "ADMIN@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)

	_, err = svc.CheckPassword(ctx, "admin@example.com", "wrong")
	require.ErrorIs(t, err, admin.ErrInvalidPassword)

	_, err = svc.CheckPassword(ctx, "nobody@example.com", "correct horse")
	require.ErrorIs(t, err, admin.ErrUserNotFound)
}
