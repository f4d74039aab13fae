package service

import "github.com/rocketscienceinc/xando-series/internal/entity"

// forkThreshold is the number of open lines that makes a fork.
const forkThreshold = 2

// oppositeCorners lists both directions of the two diagonals.
var oppositeCorners = [4][2]entity.Position{
	{1, 9},
	{3, 7},
	{7, 3},
	{9, 1},
}

// player is one side as the hard bot sees it: its cells and the mark used for hypothetical moves.
type player struct {
	moves entity.PositionSet
	mark  entity.Mark
}

// hardMove walks a fixed rule cascade. It is a heuristic, not a search:
// moving first it never loses, moving second it can be forked.
func hardMove(board *entity.Board, mine, opponent entity.PositionSet) entity.Position {
	me, them := players(board, mine, opponent)

	// win, then block
	if position, ok := winningMove(board, me.moves); ok {
		return position
	}

	if position, ok := winningMove(board, them.moves); ok {
		return position
	}

	if position, ok := forkMove(board, me); ok {
		return position
	}

	if position, ok := denyFork(board, me, them); ok {
		return position
	}

	// opening move
	if me.moves.IsEmpty() && them.moves.IsEmpty() {
		return entity.Corners[0]
	}

	// reply to the opponent's first move
	if me.moves.IsEmpty() && them.moves.Len() == 1 {
		if them.moves.Has(entity.Center) {
			return entity.Corners[0]
		}

		if board.IsEmpty(entity.Center) {
			return entity.Center
		}

		if position, ok := oppositeCorner(board, them.moves); ok {
			return position
		}
	}

	if me.moves.Has(entity.Center) && them.moves.Intersects(entity.NewPositionSet(entity.Corners[:]...)) {
		for _, edge := range entity.Edges {
			if board.IsEmpty(edge) && isFork(board, me, edge) {
				return edge
			}
		}
	}

	if board.IsEmpty(entity.Center) {
		return entity.Center
	}

	if position, ok := oppositeCorner(board, them.moves); ok {
		return position
	}

	if position, ok := firstEmpty(board, entity.Corners[:]); ok {
		return position
	}

	for _, edge := range entity.Edges {
		if board.IsEmpty(edge) && !givesOpponentFork(board, me, them, edge) {
			return edge
		}
	}

	position, _ := board.FirstEmpty()

	return position
}

// players - works out both marks from the board. With no moves yet the bot plays X.
func players(board *entity.Board, mine, opponent entity.PositionSet) (player, player) {
	myMark := entity.MarkX
	if position, ok := mine.First(); ok {
		myMark = board.Cell(position)
	} else if position, ok := opponent.First(); ok {
		myMark = board.Cell(position).Opponent()
	}

	return player{moves: mine, mark: myMark}, player{moves: opponent, mark: myMark.Opponent()}
}

// place - returns a copy of board and p with p's mark added at position.
func place(board *entity.Board, p player, position entity.Position) (entity.Board, player) {
	next := board.Clone()
	next.Cells[position-1] = p.mark

	return next, player{moves: p.moves.With(position), mark: p.mark}
}

// isFork - playing position leaves p with two or more lines one move from complete.
func isFork(board *entity.Board, p player, position entity.Position) bool {
	next, after := place(board, p, position)
	return entity.ThreatLines(after.moves, &next) >= forkThreshold
}

// forkMove - the lowest empty cell that creates a fork for p.
func forkMove(board *entity.Board, p player) (entity.Position, bool) {
	for position := range board.EmptyPositions() {
		if isFork(board, p, position) {
			return position, true
		}
	}
	return 0, false
}

// denyFork - if the opponent could fork next move, either force them to defend
// with a threat of our own or take the first fork cell ourselves.
func denyFork(board *entity.Board, me, them player) (entity.Position, bool) {
	var threats entity.PositionSet
	for position := range board.EmptyPositions() {
		if isFork(board, them, position) {
			threats = threats.With(position)
		}
	}

	if threats.IsEmpty() {
		return 0, false
	}

	for position := range board.EmptyPositions() {
		if threats.Has(position) {
			continue
		}

		next, after := place(board, me, position)
		if !entity.WinningLinesNeedingOneMove(after.moves, &next).IsEmpty() {
			return position, true
		}
	}

	return threats.First()
}

// givesOpponentFork - after we take position, can the opponent reach a fork on their next move?
func givesOpponentFork(board *entity.Board, me, them player, position entity.Position) bool {
	next, _ := place(board, me, position)

	for reply := range next.EmptyPositions() {
		afterReply, opponent := place(&next, them, reply)
		if _, ok := forkMove(&afterReply, opponent); ok {
			return true
		}
	}

	return false
}

// oppositeCorner - a corner diagonally opposite one of the opponent's corners.
func oppositeCorner(board *entity.Board, opponent entity.PositionSet) (entity.Position, bool) {
	for _, pair := range oppositeCorners {
		if opponent.Has(pair[0]) && board.IsEmpty(pair[1]) {
			return pair[1], true
		}
	}
	return 0, false
}
