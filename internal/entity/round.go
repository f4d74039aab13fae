package entity

const (
	RoundInProgress RoundStatus = "in_progress"
	RoundWon        RoundStatus = "win"
	RoundDrawn      RoundStatus = "draw"
)

const (
	OutcomeContinue OutcomeKind = "continue"
	OutcomeWin      OutcomeKind = "round_win"
	OutcomeDraw     OutcomeKind = "round_draw"
)

type RoundStatus string

// RoundResult is InProgress, Win(Winner) or Draw.
type RoundResult struct {
	Status RoundStatus `json:"status"`
	Winner Side        `json:"winner,omitempty"`
}

func (that RoundResult) IsOver() bool {
	return that.Status == RoundWon || that.Status == RoundDrawn
}

type OutcomeKind string

// RoundOutcome is what a single move produced.
type RoundOutcome struct {
	Kind     OutcomeKind `json:"kind"`
	NextSide Side        `json:"next_side,omitempty"`
	Winner   Side        `json:"winner,omitempty"`
}

func Continue(next Side) RoundOutcome {
	return RoundOutcome{Kind: OutcomeContinue, NextSide: next}
}

func RoundWin(winner Side) RoundOutcome {
	return RoundOutcome{Kind: OutcomeWin, Winner: winner}
}

func RoundDraw() RoundOutcome {
	return RoundOutcome{Kind: OutcomeDraw}
}

// Round is one play of the grid. A new Round replaces the old one; nothing carries over.
type Round struct {
	Board   Board       `json:"board"`
	MovesX  PositionSet `json:"moves_x"`
	MovesO  PositionSet `json:"moves_o"`
	Starter Side        `json:"starter"`
	ToMove  Side        `json:"to_move,omitempty"`
	Result  RoundResult `json:"result"`
}

func NewRound(starter Side) Round {
	return Round{
		Starter: starter,
		ToMove:  starter,
		Result:  RoundResult{Status: RoundInProgress},
	}
}

// Moves - returns the move history of side.
func (that *Round) Moves(side Side) PositionSet {
	if side.Mark() == MarkX {
		return that.MovesX
	}
	return that.MovesO
}

func (that *Round) setMoves(side Side, moves PositionSet) {
	if side.Mark() == MarkX {
		that.MovesX = moves
		return
	}
	that.MovesO = moves
}

// Record - applies a move for side to the board and its move history.
// On error neither the board nor the history is changed.
func (that *Round) Record(side Side, position Position) error {
	board := that.Board.Clone()
	if err := board.ApplyMove(position, side.Mark()); err != nil {
		return err
	}

	moves, err := that.Moves(side).Add(position)
	if err != nil {
		return err
	}

	that.Board = board
	that.setMoves(side, moves)

	return nil
}
