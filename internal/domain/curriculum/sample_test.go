package curriculum_test

import (
	"testing"

	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) []curriculum.Journey {
	t.Helper()
	journeys, err := curriculum.BuildSampleCurriculum(curriculum.NewAllocator())
	require.NoError(t, err)
	return journeys
}

func TestBuildSampleCurriculum_IDs(t *testing.T) {
	journeys := buildSample(t)
	require.Len(t, journeys, 2)

	idx, err := curriculum.NewIndex(journeys)
	require.NoError(t, err)
	require.Equal(t, 27, idx.Size())

	beginner, intermediate := journeys[0], journeys[1]
	require.Equal(t, int64(1), beginner.ID)
	require.Equal(t, int64(2), beginner.Levels[0].ID)
	require.Equal(t, int64(11), beginner.Levels[1].ID)
	require.Equal(t, int64(18), intermediate.ID)
	require.Equal(t, int64(19), intermediate.Levels[0].ID)
	require.Equal(t, int64(23), intermediate.Levels[1].ID)

	for id := int64(1); id <= 27; id++ {
		_, isJourney := idx.Journey(id)
		_, isLevel := idx.Level(id)
		_, isLesson := idx.Lesson(id)
		_, isActivity := idx.Activity(id)
		found := 0
		for _, ok := range []bool{isJourney, isLevel, isLesson, isActivity} {
			if ok {
				found++
			}
		}
		require.Equal(t, 1, found, "id %d should name exactly one node", id)
	}
}

func TestBuildSampleCurriculum_Deterministic(t *testing.T) {
	ids := curriculum.NewAllocator()
	first, err := curriculum.BuildSampleCurriculum(ids)
	require.NoError(t, err)

	ids.Reset()
	second, err := curriculum.BuildSampleCurriculum(ids)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestBuildSampleCurriculum_OrdersAscend(t *testing.T) {
	for _, j := range buildSample(t) {
		for i, level := range j.Levels {
			require.Equal(t, i+1, level.Order)
			for k, lesson := range level.Lessons {
				require.Equal(t, k+1, lesson.Order)
				for m, a := range lesson.Activities {
					require.Equal(t, m+1, a.Order)
					require.NoError(t, curriculum.ValidateContent(a.Type, a.Content))
				}
			}
		}
	}
}

func TestBuildSampleCurriculum_BeginnerCoversEveryType(t *testing.T) {
	beginner := buildSample(t)[0]
	require.Equal(t, curriculum.BeginnerSlug, beginner.Slug)
	require.True(t, beginner.IsPublished)

	seen := map[curriculum.ActivityType]bool{}
	for _, level := range beginner.Levels {
		require.True(t, level.IsPublished)
		for _, lesson := range level.Lessons {
			require.True(t, lesson.IsPublished)
			for _, a := range lesson.Activities {
				require.True(t, a.IsPublished)
				seen[a.Type] = true
			}
		}
	}
	for _, typ := range curriculum.ActivityTypes {
		require.True(t, seen[typ], "missing %s activity", typ)
	}
}

func TestBuildSampleCurriculum_IntermediateDrafts(t *testing.T) {
	intermediate := buildSample(t)[1]
	require.Equal(t, curriculum.IntermediateSlug, intermediate.Slug)
	require.False(t, intermediate.IsPublished)
	require.Len(t, intermediate.Levels, 2)

	level1, level2 := intermediate.Levels[0], intermediate.Levels[1]
	require.True(t, level1.IsPublished)
	require.False(t, level2.IsPublished)

	var draftLessons, draftActivities []string
	for _, level := range intermediate.Levels {
		for _, lesson := range level.Lessons {
			if !lesson.IsPublished {
				draftLessons = append(draftLessons, lesson.Title)
			}
			for _, a := range lesson.Activities {
				if !a.IsPublished {
					draftActivities = append(draftActivities, string(a.Type))
				}
			}
		}
	}
	require.Equal(t, []string{"Speaking: Phone Call"}, draftLessons)
	require.Equal(t, []string{"SPEAKING"}, draftActivities)
	require.Equal(t, level2.ID, level2.Lessons[1].LevelID)
}

func collectIDs(journeys []curriculum.Journey) []int64 {
	var ids []int64
	for _, j := range journeys {
		ids = append(ids, j.ID)
		for _, level := range j.Levels {
			ids = append(ids, level.ID)
			for _, lesson := range level.Lessons {
				ids = append(ids, lesson.ID)
				for _, a := range lesson.Activities {
					ids = append(ids, a.ID)
				}
			}
		}
	}
	return ids
}

func TestBuildSampleCurriculum_SharedAllocatorGivesDisjointIDs(t *testing.T) {
	ids := curriculum.NewAllocator()

	first, err := curriculum.BuildSampleCurriculum(ids)
	require.NoError(t, err)
	second, err := curriculum.BuildSampleCurriculum(ids)
	require.NoError(t, err)

	firstIDs := collectIDs(first)
	secondIDs := collectIDs(second)
	require.Len(t, secondIDs, 27)
	require.ElementsMatch(t, firstIDs, seq(1, 27))
	require.ElementsMatch(t, secondIDs, seq(28, 54))
	require.Equal(t, int64(28), second[0].ID)
	require.Equal(t, int64(54), ids.Peek())

	// Slugs repeat between the two builds; ids must not.
	for i := range second {
		second[i].Slug += "-copy"
	}
	idx, err := curriculum.NewIndex(append(first, second...))
	require.NoError(t, err)
	require.Equal(t, 54, idx.Size())
}

func seq(from, to int64) []int64 {
	out := make([]int64, 0, to-from+1)
	for id := from; id <= to; id++ {
		out = append(out, id)
	}
	return out
}
