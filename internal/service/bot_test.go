package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
	"github.com/rocketscienceinc/xando-series/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource makes every Intn(n) return value%n for small n.
type fixedSource struct {
	value int64
}

func (that fixedSource) Int63() int64 { return that.value << 32 }

func (that fixedSource) Seed(int64) {}

// position builds a board where the bot plays O and the opponent X.
func position(t *testing.T, mine, opponent []entity.Position) (entity.Board, entity.PositionSet, entity.PositionSet) {
	t.Helper()

	board := entity.Board{}
	for _, p := range mine {
		require.NoError(t, board.ApplyMove(p, entity.MarkO))
	}
	for _, p := range opponent {
		require.NoError(t, board.ApplyMove(p, entity.MarkX))
	}

	return board, entity.NewPositionSet(mine...), entity.NewPositionSet(opponent...)
}

func TestBotService_DecideMove_Errors(t *testing.T) {
	bot := NewBotService(rand.New(rand.NewSource(1)))

	t.Run("Full board is a round that is not in progress", func(t *testing.T) {
		board, mine, opponent := position(t, []entity.Position{2, 5, 6, 7}, []entity.Position{1, 3, 4, 8, 9})

		_, err := bot.DecideMove(board, mine, opponent, entity.TierHard)

		require.ErrorIs(t, err, apperror.ErrRoundNotInProgress)
	})

	t.Run("Unknown tier", func(t *testing.T) {
		_, err := bot.DecideMove(entity.Board{}, 0, 0, entity.Tier(7))

		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
	})
}

func TestBotService_DecideMove_Easy(t *testing.T) {
	t.Run("Smart branch takes the win", func(t *testing.T) {
		// Given: a source that always lands in the 30% smart branch
		bot := NewBotService(rand.New(fixedSource{value: 0}))
		board, mine, opponent := position(t, []entity.Position{4, 5}, []entity.Position{1, 2})

		// When: the easy bot decides
		move, err := bot.DecideMove(board, mine, opponent, entity.TierEasy)

		// Then: it completes 4-5-6 instead of blocking 3
		require.NoError(t, err)
		assert.Equal(t, entity.Position(6), move)
	})

	t.Run("Random branch picks among empty cells", func(t *testing.T) {
		// Given: a source that always lands in the random branch (9 >= 3)
		bot := NewBotService(rand.New(fixedSource{value: 9}))
		board, mine, opponent := position(t, []entity.Position{4, 5}, []entity.Position{1, 2})

		// When: the easy bot decides
		move, err := bot.DecideMove(board, mine, opponent, entity.TierEasy)

		// Then: it plays index 9 % 5 = 4 of the empty cells 3, 6, 7, 8, 9
		require.NoError(t, err)
		assert.Equal(t, entity.Position(9), move)
	})

	t.Run("Always returns an empty cell", func(t *testing.T) {
		bot := NewBotService(rand.New(rand.NewSource(42)))
		board, mine, opponent := position(t, []entity.Position{1}, []entity.Position{5, 9})

		for range 200 {
			move, err := bot.DecideMove(board, mine, opponent, entity.TierEasy)

			require.NoError(t, err)
			assert.True(t, board.IsEmpty(move), "move %d", move)
		}
	})
}

func TestBotService_DecideMove_Medium(t *testing.T) {
	bot := NewBotService(rand.New(rand.NewSource(1)))

	cases := []struct {
		name     string
		mine     []entity.Position
		opponent []entity.Position
		want     entity.Position
	}{
		{name: "Wins before blocking", mine: []entity.Position{7, 8}, opponent: []entity.Position{1, 2}, want: 9},
		{name: "Blocks the opponent", mine: []entity.Position{}, opponent: []entity.Position{1, 5}, want: 9},
		{name: "Takes the center", mine: []entity.Position{}, opponent: []entity.Position{1}, want: 5},
		{name: "Takes the first free corner", mine: []entity.Position{}, opponent: []entity.Position{5}, want: 1},
		{name: "Corners in fixed order", mine: []entity.Position{1, 6}, opponent: []entity.Position{5, 9}, want: 3},
		{name: "Edges after corners", mine: []entity.Position{1, 3, 8}, opponent: []entity.Position{2, 5, 7, 9}, want: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board, mine, opponent := position(t, tc.mine, tc.opponent)

			move, err := bot.DecideMove(board, mine, opponent, entity.TierMedium)

			require.NoError(t, err)
			assert.Equal(t, tc.want, move)
		})
	}
}

func TestBotService_DecideMove_Hard(t *testing.T) {
	bot := NewBotService(rand.New(rand.NewSource(1)))

	cases := []struct {
		name     string
		mine     []entity.Position
		opponent []entity.Position
		want     entity.Position
	}{
		{name: "Opens in the top-left corner", want: 1},
		{name: "Answers a center reply with another corner", mine: []entity.Position{1}, opponent: []entity.Position{5}, want: 3},
		{name: "Completes 1-5-9", mine: []entity.Position{1, 5}, opponent: []entity.Position{3}, want: 9},
		{name: "Blocks 1-5-9", opponent: []entity.Position{1, 5}, want: 9},
		{name: "Second move against the center takes a corner", opponent: []entity.Position{5}, want: 1},
		{name: "Second move against a corner takes the center", opponent: []entity.Position{1}, want: 5},
		{name: "Second move against an edge takes the center", opponent: []entity.Position{2}, want: 5},
		{name: "Creates a fork", mine: []entity.Position{1, 5}, opponent: []entity.Position{4, 9}, want: 2},
		{name: "Denies a diagonal corner fork with an edge threat", mine: []entity.Position{5}, opponent: []entity.Position{1, 9}, want: 2},
		{name: "Denies an edge fork with a forcing corner", mine: []entity.Position{5}, opponent: []entity.Position{2, 4}, want: 3},
		{name: "Takes the center when nothing is urgent", mine: []entity.Position{1}, opponent: []entity.Position{9}, want: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board, mine, opponent := position(t, tc.mine, tc.opponent)

			move, err := bot.DecideMove(board, mine, opponent, entity.TierHard)

			require.NoError(t, err)
			assert.Equal(t, tc.want, move)
		})
	}
}

func TestBotService_DecideMove_DoesNotTouchBoard(t *testing.T) {
	bot := NewBotService(rand.New(rand.NewSource(1)))
	board, mine, opponent := position(t, []entity.Position{5}, []entity.Position{1, 9})
	before := board.Clone()

	_, err := bot.DecideMove(board, mine, opponent, entity.TierHard)

	require.NoError(t, err)
	assert.Equal(t, before, board)
}

// TestHardBot_NeverLosesMovingFirst plays every legal opponent reply against the hard bot.
func TestHardBot_NeverLosesMovingFirst(t *testing.T) {
	bot := NewBotService(rand.New(rand.NewSource(1)))

	var games, losses int

	var play func(board entity.Board, mine, opponent entity.PositionSet, botTurn bool, line []entity.Position)
	play = func(board entity.Board, mine, opponent entity.PositionSet, botTurn bool, line []entity.Position) {
		if entity.HasWon(mine) || entity.HasWon(opponent) || board.IsFull() {
			games++
			if entity.HasWon(opponent) {
				losses++
				t.Errorf("hard bot lost: %v", line)
			}
			return
		}

		if botTurn {
			move, err := bot.DecideMove(board, mine, opponent, entity.TierHard)
			require.NoError(t, err)
			require.NoError(t, board.ApplyMove(move, entity.MarkX))

			play(board, mine.With(move), opponent, false, append(line, move))
			return
		}

		for reply := range board.EmptyPositions() {
			next := board.Clone()
			require.NoError(t, next.ApplyMove(reply, entity.MarkO))

			play(next, mine, opponent.With(reply), true, append(slicesClone(line), reply))
		}
	}

	play(entity.Board{}, 0, 0, true, nil)

	assert.Positive(t, games)
	assert.Zero(t, losses)
}

func slicesClone(line []entity.Position) []entity.Position {
	return append([]entity.Position(nil), line...)
}
