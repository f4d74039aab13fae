package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(t *testing.T, movesX, movesO PositionSet) *Board {
	t.Helper()

	board := &Board{}
	for position := range movesX.All() {
		require.NoError(t, board.ApplyMove(position, MarkX))
	}
	for position := range movesO.All() {
		require.NoError(t, board.ApplyMove(position, MarkO))
	}

	return board
}

func TestHasWon(t *testing.T) {
	t.Run("Every winning line wins", func(t *testing.T) {
		for _, line := range WinningLines {
			assert.True(t, HasWon(line.Set()), "line %v", line)
		}
	})

	t.Run("A superset of a line wins", func(t *testing.T) {
		assert.True(t, HasWon(NewPositionSet(2, 3, 5, 7)))
	})

	t.Run("Fewer than three positions never win", func(t *testing.T) {
		for a := MinPosition; a <= MaxPosition; a++ {
			for b := MinPosition; b <= MaxPosition; b++ {
				assert.False(t, HasWon(NewPositionSet(a, b)))
			}
		}
	})

	t.Run("Three positions off every line do not win", func(t *testing.T) {
		assert.False(t, HasWon(NewPositionSet(1, 2, 4)))
		assert.False(t, HasWon(NewPositionSet(2, 4, 6, 8)))
	})
}

func TestWinningLinesNeedingOneMove(t *testing.T) {
	t.Run("Finds the completing cell on the diagonal", func(t *testing.T) {
		// Given: O holds 1 and 5, X holds 3
		movesO := NewPositionSet(1, 5)
		board := boardWith(t, NewPositionSet(3), movesO)

		// When: looking for O's completions
		completions := WinningLinesNeedingOneMove(movesO, board)

		// Then: 9 completes 1-5-9
		assert.True(t, completions.Has(9))
		assert.Equal(t, []Position{9}, completions.Positions())
	})

	t.Run("Ignores lines whose third cell is taken", func(t *testing.T) {
		// Given: X holds 1 and 2, O blocks 3
		movesX := NewPositionSet(1, 2)
		board := boardWith(t, movesX, NewPositionSet(3))

		// When: looking for X's completions
		completions := WinningLinesNeedingOneMove(movesX, board)

		// Then: there is none
		assert.True(t, completions.IsEmpty())
	})

	t.Run("Empty set when nothing is one move away", func(t *testing.T) {
		board := &Board{}

		assert.True(t, WinningLinesNeedingOneMove(NewPositionSet(1), board).IsEmpty())
		assert.True(t, WinningLinesNeedingOneMove(PositionSet(0), board).IsEmpty())
	})

	t.Run("Several lines yield several cells", func(t *testing.T) {
		// Given: X holds 1, 3 and 9
		movesX := NewPositionSet(1, 3, 9)
		board := boardWith(t, movesX, PositionSet(0))

		// When: looking for X's completions
		completions := WinningLinesNeedingOneMove(movesX, board)

		// Then: 2 (1-2-3), 5 (1-5-9) and 6 (3-6-9) all complete a line
		assert.Equal(t, []Position{2, 5, 6}, completions.Positions())
	})
}

func TestThreatLines(t *testing.T) {
	t.Run("Counts lines, not cells", func(t *testing.T) {
		// Given: X holds 2, 3, 4 and 7; both 1-2-3 and 1-4-7 miss only 1
		movesX := NewPositionSet(2, 3, 4, 7)
		board := boardWith(t, movesX, NewPositionSet(5, 6, 8, 9))

		// Then: two lines but one cell
		assert.Equal(t, 2, ThreatLines(movesX, board))
		assert.Equal(t, 1, WinningLinesNeedingOneMove(movesX, board).Len())
	})
}

func TestIsDraw(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// X O X / X O O / O X X
		movesX := NewPositionSet(1, 3, 4, 8, 9)
		movesO := NewPositionSet(2, 5, 6, 7)
		board := boardWith(t, movesX, movesO)

		assert.True(t, IsDraw(board, movesX, movesO))
	})

	t.Run("Full board with a line is not a draw", func(t *testing.T) {
		// X X X / O O X / X O O
		movesX := NewPositionSet(1, 2, 3, 6, 7)
		movesO := NewPositionSet(4, 5, 8, 9)
		board := boardWith(t, movesX, movesO)

		assert.False(t, IsDraw(board, movesX, movesO))
	})

	t.Run("Board with empty cells is not a draw", func(t *testing.T) {
		movesX := NewPositionSet(1)
		board := boardWith(t, movesX, PositionSet(0))

		assert.False(t, IsDraw(board, movesX, PositionSet(0)))
	})
}
