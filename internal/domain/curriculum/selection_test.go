package curriculum_test

import (
	"testing"

	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/stretchr/testify/require"
)

func TestSelection_DefaultsToFirstJourneyAndLevel(t *testing.T) {
	sel := curriculum.NewSelection(buildSample(t))

	j, ok := sel.Journey()
	require.True(t, ok)
	require.Equal(t, curriculum.BeginnerSlug, j.Slug)

	level, ok := sel.Level()
	require.True(t, ok)
	require.Equal(t, int64(2), level.ID)
	require.Equal(t, 0, sel.JourneyPosition())
	require.Equal(t, 0, sel.LevelPosition())
}

func TestSelection_SwitchJourneyResetsLevel(t *testing.T) {
	sel := curriculum.NewSelection(buildSample(t))
	sel.SelectLevel(11)

	level, ok := sel.Level()
	require.True(t, ok)
	require.Equal(t, int64(11), level.ID)
	require.Equal(t, 1, sel.LevelPosition())

	require.True(t, sel.SelectJourney(18))
	level, ok = sel.Level()
	require.True(t, ok)
	require.Equal(t, int64(19), level.ID)
	require.Equal(t, 1, sel.JourneyPosition())
}

func TestSelection_StaleLevelFallsBack(t *testing.T) {
	sel := curriculum.NewSelection(buildSample(t))
	require.True(t, sel.SelectJourney(18))

	// A level of the other journey.
	sel.SelectLevel(11)
	level, ok := sel.Level()
	require.True(t, ok)
	require.Equal(t, int64(19), level.ID)
	require.Equal(t, 0, sel.LevelPosition())
}

func TestSelection_UnknownJourney(t *testing.T) {
	sel := curriculum.NewSelection(buildSample(t))
	require.False(t, sel.SelectJourney(999))

	j, ok := sel.Journey()
	require.True(t, ok)
	require.Equal(t, int64(1), j.ID)
}

func TestSelection_Empty(t *testing.T) {
	sel := curriculum.NewSelection(nil)

	_, ok := sel.Journey()
	require.False(t, ok)
	_, ok = sel.Level()
	require.False(t, ok)
	require.Equal(t, -1, sel.JourneyPosition())
	require.Equal(t, -1, sel.LevelPosition())
}
