package entity

// Line is one of the eight ways to win.
type Line [3]Position

// WinningLines - rows, columns, then diagonals.
var WinningLines = [8]Line{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

func (that Line) Set() PositionSet {
	return NewPositionSet(that[0], that[1], that[2])
}

// HasWon - reports whether positions contain a full winning line.
func HasWon(positions PositionSet) bool {
	for _, line := range WinningLines {
		set := line.Set()
		if positions&set == set {
			return true
		}
	}
	return false
}

// WinningLinesNeedingOneMove - returns the cells that would complete a line for positions.
// A line qualifies when positions hold two of its cells and the third is empty on board.
func WinningLinesNeedingOneMove(positions PositionSet, board *Board) PositionSet {
	var completions PositionSet
	for _, line := range WinningLines {
		if missing, ok := missingCell(line, positions, board); ok {
			completions = completions.With(missing)
		}
	}
	return completions
}

// ThreatLines - counts the lines, not cells, that positions can complete in one move.
// Two lines sharing the same missing cell count twice.
func ThreatLines(positions PositionSet, board *Board) int {
	count := 0
	for _, line := range WinningLines {
		if _, ok := missingCell(line, positions, board); ok {
			count++
		}
	}
	return count
}

// IsDraw - the board is full and neither side holds a line.
func IsDraw(board *Board, movesX, movesO PositionSet) bool {
	return board.IsFull() && !HasWon(movesX) && !HasWon(movesO)
}

func missingCell(line Line, positions PositionSet, board *Board) (Position, bool) {
	var missing Position
	held := 0
	for _, position := range line {
		if positions.Has(position) {
			held++
			continue
		}
		missing = position
	}

	if held != 2 || !board.IsEmpty(missing) {
		return 0, false
	}

	return missing, true
}
