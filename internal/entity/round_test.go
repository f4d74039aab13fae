package entity

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound_Record(t *testing.T) {
	t.Run("Marks the board and the mover's history", func(t *testing.T) {
		// Given: a fresh round started by side B
		round := NewRound(SideB)

		// When: both sides move
		require.NoError(t, round.Record(SideB, 5))
		require.NoError(t, round.Record(SideA, 1))

		// Then: B's O and A's X are on the board and in the right histories
		assert.Equal(t, MarkO, round.Board.Cell(5))
		assert.Equal(t, MarkX, round.Board.Cell(1))
		assert.Equal(t, NewPositionSet(5), round.MovesO)
		assert.Equal(t, NewPositionSet(1), round.MovesX)
		assert.Equal(t, round.Board.OccupiedCount(), round.MovesX.Len()+round.MovesO.Len())
	})

	t.Run("A rejected move changes nothing", func(t *testing.T) {
		round := NewRound(SideA)
		require.NoError(t, round.Record(SideA, 5))
		before := round

		err := round.Record(SideB, 5)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		err = round.Record(SideB, 0)
		require.ErrorIs(t, err, apperror.ErrInvalidPosition)

		assert.Equal(t, before, round)
	})
}

func TestRoundOutcome(t *testing.T) {
	assert.Equal(t, RoundOutcome{Kind: OutcomeContinue, NextSide: SideB}, Continue(SideB))
	assert.Equal(t, RoundOutcome{Kind: OutcomeWin, Winner: SideA}, RoundWin(SideA))
	assert.Equal(t, RoundOutcome{Kind: OutcomeDraw}, RoundDraw())

	assert.False(t, RoundResult{Status: RoundInProgress}.IsOver())
	assert.True(t, RoundResult{Status: RoundDrawn}.IsOver())
	assert.True(t, RoundResult{Status: RoundWon, Winner: SideB}.IsOver())
}

func TestNewSeriesRecord(t *testing.T) {
	finished := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	t.Run("Names the champion", func(t *testing.T) {
		series := &Series{
			ID: "s-1",
			Match: MatchState{
				SideAName: "Alice", SideBName: DefaultAIName,
				RoundsToWin: 2, WinsA: 1, WinsB: 2,
				Tier: TierHard, IsAIOpponent: true, RoundNumber: 4,
			},
		}

		record := NewSeriesRecord(series, finished)

		assert.Equal(t, SeriesRecord{
			SeriesID: "s-1", SideAName: "Alice", SideBName: DefaultAIName, Champion: DefaultAIName,
			WinsA: 1, WinsB: 2, RoundsToWin: 2, Rounds: 4,
			IsAIOpponent: true, Tier: TierHard, FinishedAt: finished,
		}, record)
	})

	t.Run("No champion yet", func(t *testing.T) {
		series := &Series{Match: MatchState{SideAName: "Alice", SideBName: "Bob", RoundsToWin: 2}}

		assert.Empty(t, NewSeriesRecord(series, finished).Champion)
	})
}
