package entity

import (
	"fmt"
	"iter"
	"strings"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
)

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	EmptyCell Mark = ""
)

const (
	MinPosition Position = 1
	MaxPosition Position = 9

	Center Position = 5
)

var (
	Corners = [4]Position{1, 3, 7, 9}
	Edges   = [4]Position{2, 4, 6, 8}
)

// Position is a cell number, 1 is top-left and 9 is bottom-right (row-major).
type Position int

func (that Position) IsValid() bool {
	return that >= MinPosition && that <= MaxPosition
}

// Mark is the content of a cell.
type Mark string

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

// Board holds the 3x3 grid. The zero value is an empty board.
type Board struct {
	Cells [9]Mark `json:"cells"`
}

// ApplyMove - marks an empty cell.
func (that *Board) ApplyMove(position Position, mark Mark) error {
	if !position.IsValid() {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidPosition, position)
	}

	if that.Cells[position-1] != EmptyCell {
		return fmt.Errorf("%w: position %d", apperror.ErrCellOccupied, position)
	}

	that.Cells[position-1] = mark

	return nil
}

// Cell - returns the mark at position, EmptyCell for invalid positions.
func (that *Board) Cell(position Position) Mark {
	if !position.IsValid() {
		return EmptyCell
	}
	return that.Cells[position-1]
}

func (that *Board) IsEmpty(position Position) bool {
	return position.IsValid() && that.Cells[position-1] == EmptyCell
}

func (that *Board) OccupiedCount() int {
	count := 0
	for _, cell := range that.Cells {
		if cell != EmptyCell {
			count++
		}
	}
	return count
}

func (that *Board) IsFull() bool {
	return that.OccupiedCount() == len(that.Cells)
}

// EmptyPositions - yields the empty cells in ascending order.
// Each range over the result walks the board again, so it reflects later moves.
func (that *Board) EmptyPositions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for position := MinPosition; position <= MaxPosition; position++ {
			if that.Cells[position-1] != EmptyCell {
				continue
			}
			if !yield(position) {
				return
			}
		}
	}
}

// FirstEmpty - returns the lowest empty position.
func (that *Board) FirstEmpty() (Position, bool) {
	for position := range that.EmptyPositions() {
		return position, true
	}
	return 0, false
}

func (that *Board) Reset() {
	that.Cells = [9]Mark{}
}

func (that *Board) Clone() Board {
	return Board{Cells: that.Cells}
}

// String - renders the board as three rows, empty cells shown by their position.
func (that *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			index := row*3 + col
			if that.Cells[index] == EmptyCell {
				fmt.Fprintf(&sb, "%d", index+1)
				continue
			}
			sb.WriteString(string(that.Cells[index]))
		}
	}
	return sb.String()
}
