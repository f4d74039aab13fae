package tictactoe

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
	"github.com/rocketscienceinc/xando-series/internal/entity"
)

// Bot decides the computer's moves. service.BotService satisfies it.
type Bot interface {
	DecideMove(board entity.Board, mine, opponent entity.PositionSet, tier entity.Tier) (entity.Position, error)
}

// SeriesConfig is what the setup form collects.
type SeriesConfig struct {
	SideAName    string
	SideBName    string
	IsAIOpponent bool
	Tier         entity.Tier
	RoundsToWin  int
}

// Validate - checks the setup before a series can start.
func (that SeriesConfig) Validate() error {
	if that.RoundsToWin < 1 {
		return fmt.Errorf("%w: rounds to win must be at least 1, got %d", apperror.ErrInvalidConfiguration, that.RoundsToWin)
	}

	nameA := strings.TrimSpace(that.SideAName)
	nameB := strings.TrimSpace(that.SideBName)

	if that.IsAIOpponent {
		if !that.Tier.IsValid() {
			return fmt.Errorf("%w: unknown tier %d", apperror.ErrInvalidConfiguration, that.Tier)
		}

		if nameA == "" {
			return fmt.Errorf("%w: player name is empty", apperror.ErrInvalidConfiguration)
		}

		return nil
	}

	if nameA == "" || nameB == "" {
		return fmt.Errorf("%w: both player names are required", apperror.ErrInvalidConfiguration)
	}

	if nameA == nameB {
		return fmt.Errorf("%w: player names must differ", apperror.ErrInvalidConfiguration)
	}

	return nil
}

// SeriesController runs the rounds of one series. It owns the match state and the
// live round and is not safe for concurrent use.
type SeriesController struct {
	series entity.Series
	bot    Bot
	rnd    *rand.Rand
}

// NewSeries - validates the setup and picks the first starter. Call StartRound to play.
func NewSeries(cfg SeriesConfig, bot Bot, rnd *rand.Rand) (*SeriesController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sideBName := strings.TrimSpace(cfg.SideBName)
	if cfg.IsAIOpponent && sideBName == "" {
		sideBName = entity.DefaultAIName
	}

	controller := &SeriesController{
		series: entity.Series{
			Match: entity.MatchState{
				SideAName:    strings.TrimSpace(cfg.SideAName),
				SideBName:    sideBName,
				RoundsToWin:  cfg.RoundsToWin,
				Tier:         cfg.Tier,
				IsAIOpponent: cfg.IsAIOpponent,
			},
		},
		bot: bot,
		rnd: rnd,
	}

	controller.series.Match.CurrentStarter = controller.openingStarter()

	return controller, nil
}

// Restore - rebuilds a controller from a stored snapshot.
func Restore(series entity.Series, bot Bot, rnd *rand.Rand) (*SeriesController, error) {
	cfg := SeriesConfig{
		SideAName:    series.Match.SideAName,
		SideBName:    series.Match.SideBName,
		IsAIOpponent: series.Match.IsAIOpponent,
		Tier:         series.Match.Tier,
		RoundsToWin:  series.Match.RoundsToWin,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	if err := checkSnapshot(series); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidConfiguration, err)
	}

	return &SeriesController{
		series: series,
		bot:    bot,
		rnd:    rnd,
	}, nil
}

// StartRound - discards the previous board and starts the next round.
// Rounds after the first rotate the starter.
func (that *SeriesController) StartRound() (entity.Board, entity.Side, error) {
	if that.roundInProgress() {
		return entity.Board{}, entity.NoSide, fmt.Errorf("%w: finish the current round first", apperror.ErrRoundNotInProgress)
	}

	if _, over := that.IsSeriesOver(); over {
		return entity.Board{}, entity.NoSide, fmt.Errorf("%w: series is over", apperror.ErrRoundNotInProgress)
	}

	match := &that.series.Match
	if match.RoundNumber > 0 {
		match.CurrentStarter = that.nextStarter()
	}

	match.RoundNumber++
	that.series.Round = entity.NewRound(match.CurrentStarter)

	return that.series.Round.Board.Clone(), match.CurrentStarter, nil
}

// ApplyHumanMove - plays position for the side to move, which must be human.
func (that *SeriesController) ApplyHumanMove(position entity.Position) (entity.RoundOutcome, error) {
	side, err := that.sideToMove()
	if err != nil {
		return entity.RoundOutcome{}, err
	}

	if that.series.Match.IsAIControlled(side) {
		return entity.RoundOutcome{}, fmt.Errorf("%w: waiting for the AI move", apperror.ErrNotYourTurn)
	}

	return that.play(side, position)
}

// RequestAIMove - asks the bot for its move and plays it.
func (that *SeriesController) RequestAIMove() (entity.Position, entity.RoundOutcome, error) {
	side, err := that.sideToMove()
	if err != nil {
		return 0, entity.RoundOutcome{}, err
	}

	if !that.series.Match.IsAIControlled(side) {
		return 0, entity.RoundOutcome{}, fmt.Errorf("%w: waiting for %s", apperror.ErrNotYourTurn, that.series.Match.Name(side))
	}

	round := &that.series.Round
	position, err := that.bot.DecideMove(round.Board.Clone(), round.Moves(side), round.Moves(side.Other()), that.series.Match.Tier)
	if err != nil {
		return 0, entity.RoundOutcome{}, fmt.Errorf("bot failed to decide move: %w", err)
	}

	outcome, err := that.play(side, position)
	if err != nil {
		return 0, entity.RoundOutcome{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return position, outcome, nil
}

// IsSeriesOver - returns the champion once a side has reached RoundsToWin.
func (that *SeriesController) IsSeriesOver() (entity.Side, bool) {
	return that.series.Match.Champion()
}

// ReplaySeries - zeroes the score, keeps names and configuration, and starts a new first round.
func (that *SeriesController) ReplaySeries() entity.MatchState {
	match := &that.series.Match
	match.WinsA = 0
	match.WinsB = 0
	match.RoundNumber = 1
	match.CurrentStarter = that.openingStarter()

	that.series.Round = entity.NewRound(match.CurrentStarter)

	return *match
}

// SideToMove - returns the side whose move is awaited, false once the round is over.
func (that *SeriesController) SideToMove() (entity.Side, bool) {
	side, err := that.sideToMove()
	return side, err == nil
}

func (that *SeriesController) Match() entity.MatchState {
	return that.series.Match
}

func (that *SeriesController) Round() entity.Round {
	return that.series.Round
}

// Snapshot - returns a copy of the full state for storage.
func (that *SeriesController) Snapshot() entity.Series {
	return that.series
}

func (that *SeriesController) SetID(id string) {
	that.series.ID = id
}

func (that *SeriesController) ID() string {
	return that.series.ID
}

func (that *SeriesController) play(side entity.Side, position entity.Position) (entity.RoundOutcome, error) {
	round := &that.series.Round

	if err := round.Record(side, position); err != nil {
		return entity.RoundOutcome{}, fmt.Errorf("invalid turn: %w", err)
	}

	if entity.HasWon(round.Moves(side)) {
		round.Result = entity.RoundResult{Status: entity.RoundWon, Winner: side}
		round.ToMove = entity.NoSide

		if side == entity.SideA {
			that.series.Match.WinsA++
		} else {
			that.series.Match.WinsB++
		}

		return entity.RoundWin(side), nil
	}

	if entity.IsDraw(&round.Board, round.MovesX, round.MovesO) {
		round.Result = entity.RoundResult{Status: entity.RoundDrawn}
		round.ToMove = entity.NoSide

		return entity.RoundDraw(), nil
	}

	round.ToMove = side.Other()

	return entity.Continue(round.ToMove), nil
}

func (that *SeriesController) sideToMove() (entity.Side, error) {
	if !that.roundInProgress() {
		return entity.NoSide, apperror.ErrRoundNotInProgress
	}

	if _, over := that.IsSeriesOver(); over {
		return entity.NoSide, fmt.Errorf("%w: series is over", apperror.ErrRoundNotInProgress)
	}

	return that.series.Round.ToMove, nil
}

func (that *SeriesController) roundInProgress() bool {
	return that.series.Match.RoundNumber > 0 && that.series.Round.Result.Status == entity.RoundInProgress
}

// openingStarter - the hard AI always opens; otherwise a coin flip.
func (that *SeriesController) openingStarter() entity.Side {
	if that.series.Match.AlwaysAIStarts() {
		return entity.SideB
	}

	if that.rnd.Intn(2) == 0 { //nolint: gosec // game randomness
		return entity.SideA
	}
	return entity.SideB
}

// nextStarter - the hard AI always opens; otherwise the previous starter's opponent.
func (that *SeriesController) nextStarter() entity.Side {
	if that.series.Match.AlwaysAIStarts() {
		return entity.SideB
	}
	return that.series.Match.CurrentStarter.Other()
}

var (
	errHistoryMismatch = errors.New("move histories do not match the board")
	errScoreMismatch   = errors.New("score does not fit the series")
	errRoundMismatch   = errors.New("round state does not fit the board")
)

// checkSnapshot - a stored series must be one the controller could have produced.
func checkSnapshot(series entity.Series) error {
	match, round := series.Match, series.Round

	if match.WinsA < 0 || match.WinsB < 0 || match.WinsA > match.RoundsToWin || match.WinsB > match.RoundsToWin ||
		(match.WinsA == match.RoundsToWin && match.WinsB == match.RoundsToWin) {
		return fmt.Errorf("%w: %d-%d, first to %d", errScoreMismatch, match.WinsA, match.WinsB, match.RoundsToWin)
	}

	if match.CurrentStarter != entity.SideA && match.CurrentStarter != entity.SideB {
		return fmt.Errorf("%w: starter %q", errRoundMismatch, match.CurrentStarter)
	}

	if round.MovesX.Intersects(round.MovesO) {
		return fmt.Errorf("%w: both sides hold the same cell", errHistoryMismatch)
	}

	for position := entity.MinPosition; position <= entity.MaxPosition; position++ {
		want := entity.EmptyCell
		switch {
		case round.MovesX.Has(position):
			want = entity.MarkX
		case round.MovesO.Has(position):
			want = entity.MarkO
		}

		if round.Board.Cell(position) != want {
			return fmt.Errorf("%w: cell %d", errHistoryMismatch, position)
		}
	}

	if match.RoundNumber == 0 {
		if round.Board.OccupiedCount() != 0 {
			return fmt.Errorf("%w: moves before the first round", errRoundMismatch)
		}
		return nil
	}

	return checkRound(round)
}

func checkRound(round entity.Round) error {
	if round.Starter != entity.SideA && round.Starter != entity.SideB {
		return fmt.Errorf("%w: starter %q", errRoundMismatch, round.Starter)
	}

	// the starter has made as many moves as the other side, or one more
	lead := round.Moves(round.Starter).Len() - round.Moves(round.Starter.Other()).Len()
	if lead != 0 && lead != 1 {
		return fmt.Errorf("%w: move counts differ by %d", errRoundMismatch, lead)
	}

	wonX, wonO := entity.HasWon(round.MovesX), entity.HasWon(round.MovesO)

	switch round.Result.Status {
	case entity.RoundInProgress:
		expected := round.Starter
		if lead == 1 {
			expected = round.Starter.Other()
		}

		if round.ToMove != expected || wonX || wonO || round.Board.IsFull() {
			return fmt.Errorf("%w: round in progress with %q to move", errRoundMismatch, round.ToMove)
		}
	case entity.RoundWon:
		winner := round.Result.Winner
		if (winner != entity.SideA && winner != entity.SideB) || !entity.HasWon(round.Moves(winner)) {
			return fmt.Errorf("%w: won by %q", errRoundMismatch, winner)
		}
	case entity.RoundDrawn:
		if !entity.IsDraw(&round.Board, round.MovesX, round.MovesO) {
			return fmt.Errorf("%w: drawn before the board is full", errRoundMismatch)
		}
	default:
		return fmt.Errorf("%w: status %q", errRoundMismatch, round.Result.Status)
	}

	return nil
}
