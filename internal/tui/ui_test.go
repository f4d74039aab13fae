package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/xando-series/internal/entity"
)

func aiMatch() entity.MatchState {
	return entity.MatchState{
		SideAName:    "Alice",
		SideBName:    entity.DefaultAIName,
		RoundsToWin:  2,
		WinsA:        1,
		Tier:         entity.TierMedium,
		IsAIOpponent: true,
		RoundNumber:  2,
	}
}

func TestKeyPosition(t *testing.T) {
	position, ok := keyPosition('7')
	assert.True(t, ok)
	assert.Equal(t, entity.Position(7), position)

	for _, key := range []rune{'0', 'a', 'n', ' '} {
		_, ok = keyPosition(key)
		assert.False(t, ok, string(key))
	}
}

func TestStatusText(t *testing.T) {
	t.Run("Human to move", func(t *testing.T) {
		// Given: a round where side A is to move
		round := entity.NewRound(entity.SideA)

		// When: the status is rendered
		text := statusText(aiMatch(), round, false, "")

		// Then: it shows the score, the tier and who is to move
		assert.Contains(t, text, "Alice [1] - [0] AI")
		assert.Contains(t, text, "AI: medium")
		assert.Contains(t, text, "Round 2: Alice (X) to move")
	})

	t.Run("AI thinking", func(t *testing.T) {
		text := statusText(aiMatch(), entity.NewRound(entity.SideB), true, "")

		assert.Contains(t, text, "AI is thinking")
		assert.NotContains(t, text, "to move")
	})

	t.Run("Finished round shows the message only", func(t *testing.T) {
		round := entity.NewRound(entity.SideA)
		round.Result = entity.RoundResult{Status: entity.RoundDrawn}
		round.ToMove = entity.NoSide

		text := statusText(aiMatch(), round, false, "draw!")

		assert.NotContains(t, text, "to move")
		assert.Contains(t, text, "draw!")
	})
}

func TestOutcomeMessage(t *testing.T) {
	match := aiMatch()

	assert.Empty(t, outcomeMessage(match, entity.Continue(entity.SideB)))
	assert.Contains(t, outcomeMessage(match, entity.RoundDraw()), "Round 2 is a draw")
	assert.Contains(t, outcomeMessage(match, entity.RoundWin(entity.SideA)), "Alice wins round 2")

	match.WinsA = 2
	assert.Contains(t, outcomeMessage(match, entity.RoundWin(entity.SideA)), "Alice wins the series")
}
