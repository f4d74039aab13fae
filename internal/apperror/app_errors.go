package apperror

import "errors"

var (
	ErrInvalidPosition      = errors.New("position must be between 1 and 9")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrRoundNotInProgress   = errors.New("round is not in progress")
	ErrInvalidConfiguration = errors.New("invalid series configuration")
)
