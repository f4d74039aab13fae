package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
)

const (
	SideA Side = "A"
	SideB Side = "B"

	NoSide Side = ""
)

const (
	TierEasy   Tier = 1
	TierMedium Tier = 2
	TierHard   Tier = 3
)

// DefaultAIName is used for side B when the opponent is the computer.
const DefaultAIName = "AI"

// Side is one of the two seats of a series. Side A always plays X, side B plays O.
type Side string

func (that Side) Other() Side {
	if that == SideA {
		return SideB
	}
	return SideA
}

func (that Side) Mark() Mark {
	if that == SideA {
		return MarkX
	}
	return MarkO
}

// Tier is the AI difficulty level.
type Tier int

func (that Tier) IsValid() bool {
	return that >= TierEasy && that <= TierHard
}

func (that Tier) String() string {
	switch that {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return fmt.Sprintf("tier(%d)", int(that))
	}
}

// ParseTier - accepts a tier name or its number.
func ParseTier(value string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy", "1":
		return TierEasy, nil
	case "medium", "2":
		return TierMedium, nil
	case "hard", "3":
		return TierHard, nil
	default:
		return 0, fmt.Errorf("%w: unknown tier %q", apperror.ErrInvalidConfiguration, value)
	}
}

// RoundsToWinForBestOf - converts "best of n" into the number of round wins needed.
func RoundsToWinForBestOf(bestOf int) (int, error) {
	if bestOf < 1 || bestOf%2 == 0 {
		return 0, fmt.Errorf("%w: best of %d", apperror.ErrInvalidConfiguration, bestOf)
	}
	return bestOf/2 + 1, nil
}

// MatchState is the series-level state that outlives a single round.
type MatchState struct {
	SideAName      string `json:"side_a_name"`
	SideBName      string `json:"side_b_name"`
	RoundsToWin    int    `json:"rounds_to_win"`
	WinsA          int    `json:"wins_a"`
	WinsB          int    `json:"wins_b"`
	CurrentStarter Side   `json:"current_starter"`
	Tier           Tier   `json:"tier,omitempty"`
	IsAIOpponent   bool   `json:"is_ai_opponent"`
	RoundNumber    int    `json:"round_number"`
}

func (that MatchState) Wins(side Side) int {
	if side == SideA {
		return that.WinsA
	}
	return that.WinsB
}

func (that MatchState) Name(side Side) string {
	if side == SideA {
		return that.SideAName
	}
	return that.SideBName
}

// IsAIControlled - side B is the computer in a human-vs-AI series.
func (that MatchState) IsAIControlled(side Side) bool {
	return that.IsAIOpponent && side == SideB
}

// AlwaysAIStarts - the hard AI opens every round.
func (that MatchState) AlwaysAIStarts() bool {
	return that.IsAIOpponent && that.Tier == TierHard
}

// Champion - returns the side whose wins reached RoundsToWin.
func (that MatchState) Champion() (Side, bool) {
	switch {
	case that.WinsA >= that.RoundsToWin:
		return SideA, true
	case that.WinsB >= that.RoundsToWin:
		return SideB, true
	default:
		return NoSide, false
	}
}

// Score - formats the score line shown to players.
func (that MatchState) Score() string {
	return fmt.Sprintf("%s [%d] - [%d] %s", that.SideAName, that.WinsA, that.WinsB, that.SideBName)
}
