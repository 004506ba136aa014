package mocks

import (
	"context"

	"github.com/rpggio/curriculum/internal/domain/admin"
	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/rpggio/curriculum/internal/domain/seedlog"
	"github.com/stretchr/testify/mock"
)

// CurriculumRepository is a mock for curriculum.Repository.
type CurriculumRepository struct {
	mock.Mock
}

func (m *CurriculumRepository) SaveJourney(ctx context.Context, j *curriculum.Journey) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *CurriculumRepository) ListJourneys(ctx context.Context) ([]curriculum.Journey, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]curriculum.Journey); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CurriculumRepository) GetJourneyBySlug(ctx context.Context, slug string) (*curriculum.Journey, error) {
	args := m.Called(ctx, slug)
	if j, ok := args.Get(0).(*curriculum.Journey); ok {
		return j, args.Error(1)
	}
	return nil, args.Error(1)
}

// AdminRepository is a mock for admin.Repository.
type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) Create(ctx context.Context, user *admin.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*admin.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// SeedLogRepository is a mock for seedlog.Repository.
type SeedLogRepository struct {
	mock.Mock
}

func (m *SeedLogRepository) Log(ctx context.Context, entry *seedlog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *SeedLogRepository) List(ctx context.Context, opts seedlog.ListOptions) ([]seedlog.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]seedlog.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
