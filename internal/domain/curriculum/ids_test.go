package curriculum_test

import (
	"testing"

	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/stretchr/testify/require"
)

func TestAllocator_NextIsSequential(t *testing.T) {
	ids := curriculum.NewAllocator()
	require.Equal(t, int64(0), ids.Peek())
	require.Equal(t, int64(1), ids.Next())
	require.Equal(t, int64(2), ids.Next())
	require.Equal(t, int64(2), ids.Peek())

	ids.Reset()
	require.Equal(t, int64(1), ids.Next())
}

func TestAllocator_SkipPast(t *testing.T) {
	ids := curriculum.NewAllocator()
	ids.SkipPast(27)
	require.Equal(t, int64(28), ids.Next())

	ids.SkipPast(5)
	require.Equal(t, int64(29), ids.Next(), "never moves backwards")
}
