package engine

import "github.com/lgbarn/chessrules/internal/chess"

// pawnMoves generates pawn destinations: one step forward onto an empty
// square, two steps from the home rank when both squares are empty, and
// one step diagonally forward onto an opposing troop.
func pawnMoves(b *Board, t chess.Troop) []chess.Position {
	var moves []chess.Position
	dir := t.Color.Forward()

	if one, ok := t.Position.Offset(0, dir); ok && b.isEmpty(one) {
		moves = append(moves, one)
		if t.Position.Rank == t.Color.PawnRank() {
			if two, ok := t.Position.Offset(0, 2*dir); ok && b.isEmpty(two) {
				moves = append(moves, two)
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		if diag, ok := t.Position.Offset(df, dir); ok && b.isEnemy(diag, t.Color) {
			moves = append(moves, diag)
		}
	}

	return moves
}
