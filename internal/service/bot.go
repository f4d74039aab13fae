package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
	"github.com/rocketscienceinc/xando-series/internal/entity"
)

// smartMoveChance is how often, out of 10, the easy bot plays a smart move.
const smartMoveChance = 3

// BotService picks the computer's next move.
type BotService interface {
	DecideMove(board entity.Board, mine, opponent entity.PositionSet, tier entity.Tier) (entity.Position, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - rnd is the only source of randomness, seed it for reproducible play.
func NewBotService(rnd *rand.Rand) BotService {
	return &botService{
		rnd: rnd,
	}
}

// DecideMove - board is a copy, the bot never changes the caller's state.
func (that *botService) DecideMove(board entity.Board, mine, opponent entity.PositionSet, tier entity.Tier) (entity.Position, error) {
	if board.IsFull() {
		return 0, fmt.Errorf("%w: no empty cell left", apperror.ErrRoundNotInProgress)
	}

	switch tier {
	case entity.TierEasy:
		return that.easyMove(&board, mine, opponent), nil
	case entity.TierMedium:
		return that.mediumMove(&board, mine, opponent), nil
	case entity.TierHard:
		return hardMove(&board, mine, opponent), nil
	default:
		return 0, fmt.Errorf("%w: unknown tier %d", apperror.ErrInvalidConfiguration, tier)
	}
}

func (that *botService) easyMove(board *entity.Board, mine, opponent entity.PositionSet) entity.Position {
	if that.rnd.Intn(10) < smartMoveChance { //nolint: gosec // game randomness
		return that.smartMove(board, mine, opponent)
	}
	return that.randomMove(board)
}

// smartMove - win, else block, else random.
func (that *botService) smartMove(board *entity.Board, mine, opponent entity.PositionSet) entity.Position {
	if position, ok := winningMove(board, mine); ok {
		return position
	}

	if position, ok := winningMove(board, opponent); ok {
		return position
	}

	return that.randomMove(board)
}

func (that *botService) mediumMove(board *entity.Board, mine, opponent entity.PositionSet) entity.Position {
	if position, ok := winningMove(board, mine); ok {
		return position
	}

	if position, ok := winningMove(board, opponent); ok {
		return position
	}

	if board.IsEmpty(entity.Center) {
		return entity.Center
	}

	if position, ok := firstEmpty(board, entity.Corners[:]); ok {
		return position
	}

	if position, ok := firstEmpty(board, entity.Edges[:]); ok {
		return position
	}

	return that.randomMove(board)
}

func (that *botService) randomMove(board *entity.Board) entity.Position {
	available := make([]entity.Position, 0, len(board.Cells))
	for position := range board.EmptyPositions() {
		available = append(available, position)
	}

	return available[that.rnd.Intn(len(available))] //nolint: gosec // game randomness
}

// winningMove - the lowest cell that completes a line for positions.
func winningMove(board *entity.Board, positions entity.PositionSet) (entity.Position, bool) {
	return entity.WinningLinesNeedingOneMove(positions, board).First()
}

func firstEmpty(board *entity.Board, candidates []entity.Position) (entity.Position, bool) {
	for _, position := range candidates {
		if board.IsEmpty(position) {
			return position, true
		}
	}
	return 0, false
}
