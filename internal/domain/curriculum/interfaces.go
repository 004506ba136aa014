package curriculum

import (
	"context"

	"github.com/rpggio/curriculum/internal/domain/seedlog"
)

// Repository persists curriculum nodes with the builder's ids.
type Repository interface {
	// SaveJourney stores a journey and its whole subtree atomically: on
	// error no row of the journey is kept.
	SaveJourney(ctx context.Context, j *Journey) error
	ListJourneys(ctx context.Context) ([]Journey, error)
	GetJourneyBySlug(ctx context.Context, slug string) (*Journey, error)
}

// SeedLog records what a seed run did.
type SeedLog interface {
	Log(ctx context.Context, entry *seedlog.Entry) error
}
