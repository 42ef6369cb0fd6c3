package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mancala-client/internal/apperror"
	"github.com/rocketscienceinc/mancala-client/internal/entity"
)

func TestArrange(t *testing.T) {
	t.Run("Standard board puts stores at both ends", func(t *testing.T) {
		board := newBoard(t, 4)
		snapshot := board.Snapshot()

		store1, _ := snapshot.Pit(6)
		store2, _ := snapshot.Pit(13)
		first, _ := snapshot.Pit(0)
		opposite, _ := snapshot.Pit(12)

		assert.Equal(t, Rect{X: 7 * PitWidth, Y: 0, W: PitWidth, H: 2 * PitHeight}, store1.Rect)
		assert.Equal(t, Rect{X: 0, Y: 0, W: PitWidth, H: 2 * PitHeight}, store2.Rect)
		assert.Equal(t, Rect{X: PitWidth, Y: PitHeight, W: PitWidth, H: PitHeight}, first.Rect)
		assert.Equal(t, Rect{X: PitWidth, Y: 0, W: PitWidth, H: PitHeight}, opposite.Rect)
	})

	t.Run("Irregular board falls back to a single row", func(t *testing.T) {
		rects := arrange([]int{4, 2, 9}, map[int]bool{})

		assert.Equal(t, 0, rects[2].X)
		assert.Equal(t, PitWidth, rects[4].X)
		assert.Equal(t, 2*PitWidth, rects[9].X)
	})
}

func TestBoard_Highlight(t *testing.T) {
	t.Run("Paints source and target then restores them", func(t *testing.T) {
		// Given: a board without highlights
		board := newBoard(t, 4)

		// When: highlighting a relocation from 2 to 6
		highlight, err := board.Highlight(2, 6)
		require.NoError(t, err)

		// Then: the source is depleting and the target receiving
		snapshot := board.Snapshot()
		source, _ := snapshot.Pit(2)
		target, _ := snapshot.Pit(6)
		assert.Equal(t, Depleting, source.Background)
		assert.Equal(t, Receiving, target.Background)

		// When: restoring
		board.Restore(highlight)

		// Then: both backgrounds are back to their previous value
		snapshot = board.Snapshot()
		source, _ = snapshot.Pit(2)
		target, _ = snapshot.Pit(6)
		assert.Equal(t, NoBackground, source.Background)
		assert.Equal(t, NoBackground, target.Background)
	})

	t.Run("Same source and target restore to the original background", func(t *testing.T) {
		board := newBoard(t, 4)

		highlight, err := board.Highlight(3, 3)
		require.NoError(t, err)
		board.Restore(highlight)

		pit, _ := board.Snapshot().Pit(3)
		assert.Equal(t, NoBackground, pit.Background)
	})

	t.Run("Unknown pit is reported", func(t *testing.T) {
		board := newBoard(t, 4)

		_, err := board.Highlight(3, 77)

		require.ErrorIs(t, err, apperror.ErrPitNotFound)
	})
}

func TestBoard_LiftAndDrop(t *testing.T) {
	t.Run("First stone travels to the target", func(t *testing.T) {
		// Given: pit 2 with 4 stones and store 6 empty
		board := newBoard(t, 4)

		// When: lifting the first stone of pit 2 towards 6
		token, err := board.Lift(2, 6)
		require.NoError(t, err)
		require.NotNil(t, token)

		// Then: the first stone is translated by the distance between both pits
		snapshot := board.Snapshot()
		source, _ := snapshot.Pit(2)
		target, _ := snapshot.Pit(6)
		assert.True(t, source.Stones[0].Moving)
		assert.Equal(t, Offset{DX: target.Rect.X - source.Rect.X, DY: target.Rect.Y - source.Rect.Y}, source.Stones[0].Offset)

		// When: dropping it
		board.Drop(token, 2, 6)

		// Then: it belongs to the target with no offset
		snapshot = board.Snapshot()
		source, _ = snapshot.Pit(2)
		target, _ = snapshot.Pit(6)
		require.Len(t, source.Stones, 3)
		require.Len(t, target.Stones, 1)
		assert.Equal(t, Red, target.Stones[0].Color)
		assert.Equal(t, Offset{}, target.Stones[0].Offset)
		assert.False(t, target.Stones[0].Moving)
	})

	t.Run("Empty source has nothing to lift", func(t *testing.T) {
		board := newBoard(t, 4)

		token, err := board.Lift(6, 7)

		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("Drop after re-render is ignored", func(t *testing.T) {
		// Given: a lifted stone whose pit is re-rendered before it lands
		board := newBoard(t, 4)
		token, err := board.Lift(0, 1)
		require.NoError(t, err)
		require.NoError(t, board.Render(0, 4))

		// When: the stone is dropped
		board.Drop(token, 0, 1)

		// Then: counts are untouched
		counts := board.Counts()
		assert.Equal(t, 4, counts[0])
		assert.Equal(t, 4, counts[1])
	})

	t.Run("Unknown pit is reported", func(t *testing.T) {
		board, err := New(&entity.Layout{Pits: []entity.Pit{{Index: 0, Stones: 1}}})
		require.NoError(t, err)

		_, err = board.Lift(0, 5)

		require.ErrorIs(t, err, apperror.ErrPitNotFound)
	})
}
