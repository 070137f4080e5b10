package engine

import "github.com/lgbarn/chessrules/internal/chess"

// LegalMoves returns every move of the given colour that does not leave its
// own king attacked, in board order.
func LegalMoves(b *Board, colour chess.Color) []chess.Move {
	var moves []chess.Move
	for _, t := range b.Troops(colour) {
		for _, to := range destinations(b, t) {
			if tryMove(b, t.Position, to, colour) {
				moves = append(moves, chess.Move{From: t.Position, To: to})
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(b *Board, colour chess.Color) bool {
	for _, t := range b.Troops(colour) {
		for _, to := range destinations(b, t) {
			if tryMove(b, t.Position, to, colour) {
				return true
			}
		}
	}
	return false
}

// tryMove makes a move on a scratch board and checks if it leaves the king in check.
func tryMove(b *Board, from, to chess.Position, colour chess.Color) bool {
	scratch := &Board{squares: b.squares, state: b.state, cfg: b.cfg}
	scratch.relocate(from, to)
	return !IsInCheck(scratch, colour)
}
