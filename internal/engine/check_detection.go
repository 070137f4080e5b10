package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsInCheck returns true if the given colour's king is attacked, i.e. it is
// among the destinations of some opposing troop. A colour with no king on
// the board is never in check.
func IsInCheck(b *Board, colour chess.Color) bool {
	king, ok := b.findKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(b, king, colour.Opposite())
}

// isSquareAttacked returns true if a troop of byColour can move to target.
// target must hold a troop of the other colour for pawn captures to count.
func isSquareAttacked(b *Board, target chess.Position, byColour chess.Color) bool {
	for f := range b.squares {
		for r := range b.squares[f] {
			t := b.squares[f][r].Troop
			if t == nil || t.Color != byColour {
				continue
			}
			for _, to := range destinations(b, *t) {
				if to == target {
					return true
				}
			}
		}
	}
	return false
}
