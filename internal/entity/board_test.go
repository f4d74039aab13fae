package entity

import (
	"slices"
	"testing"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// When: X plays the center
		err := board.ApplyMove(5, MarkX)

		// Then: the center holds X and one cell is occupied
		require.NoError(t, err)
		assert.Equal(t, MarkX, board.Cell(5))
		assert.Equal(t, 1, board.OccupiedCount())
		assert.False(t, board.IsEmpty(5))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds position 1
		board := &Board{}
		require.NoError(t, board.ApplyMove(1, MarkX))

		// When: O plays the same position
		err := board.ApplyMove(1, MarkO)

		// Then: ErrCellOccupied is returned and the cell keeps X
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, MarkX, board.Cell(1))
		assert.Equal(t, 1, board.OccupiedCount())
	})

	t.Run("Error on invalid position", func(t *testing.T) {
		board := &Board{}

		for _, position := range []Position{0, -1, 10, 20} {
			// When: a position outside 1-9 is played
			err := board.ApplyMove(position, MarkX)

			// Then: ErrInvalidPosition is returned
			require.ErrorIs(t, err, apperror.ErrInvalidPosition, "position %d", position)
		}

		assert.Equal(t, 0, board.OccupiedCount())
	})
}

func TestBoard_EmptyPositions(t *testing.T) {
	t.Run("Yields empty cells in ascending order", func(t *testing.T) {
		// Given: a board with 1, 5 and 9 taken
		board := &Board{}
		require.NoError(t, board.ApplyMove(9, MarkX))
		require.NoError(t, board.ApplyMove(1, MarkO))
		require.NoError(t, board.ApplyMove(5, MarkX))

		// When: collecting the empty positions
		empty := slices.Collect(board.EmptyPositions())

		// Then: the remaining cells come in ascending order
		assert.Equal(t, []Position{2, 3, 4, 6, 7, 8}, empty)
	})

	t.Run("Is restartable and idempotent", func(t *testing.T) {
		// Given: a board with one move
		board := &Board{}
		require.NoError(t, board.ApplyMove(3, MarkX))
		seq := board.EmptyPositions()

		// When: the sequence is walked twice without a move in between
		first := slices.Collect(seq)
		second := slices.Collect(seq)

		// Then: both walks are equal
		assert.Equal(t, first, second)
		assert.Len(t, first, 8)
	})

	t.Run("Stops early when the caller breaks", func(t *testing.T) {
		board := &Board{}

		var seen []Position
		for position := range board.EmptyPositions() {
			seen = append(seen, position)
			if len(seen) == 2 {
				break
			}
		}

		assert.Equal(t, []Position{1, 2}, seen)
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with moves
	board := &Board{}
	require.NoError(t, board.ApplyMove(1, MarkX))
	require.NoError(t, board.ApplyMove(2, MarkO))

	// When: the board is reset
	board.Reset()

	// Then: every cell is empty again
	assert.Equal(t, 0, board.OccupiedCount())
	assert.Len(t, slices.Collect(board.EmptyPositions()), 9)
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board and its clone
	board := &Board{}
	require.NoError(t, board.ApplyMove(1, MarkX))
	clone := board.Clone()

	// When: the clone is changed
	require.NoError(t, clone.ApplyMove(2, MarkO))

	// Then: the original is untouched
	assert.True(t, board.IsEmpty(2))
	assert.Equal(t, 2, clone.OccupiedCount())
}

func TestBoard_String(t *testing.T) {
	board := &Board{}
	require.NoError(t, board.ApplyMove(1, MarkX))
	require.NoError(t, board.ApplyMove(5, MarkO))

	assert.Equal(t, "X|2|3\n4|O|6\n7|8|9", board.String())
}
