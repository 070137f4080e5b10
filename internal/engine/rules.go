package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(b *Board, colour chess.Color) bool {
	return IsInCheck(b, colour) && !HasLegalMoves(b, colour)
}

// IsStalemate returns true if colour has a king, is not in check, and has
// no legal move.
func IsStalemate(b *Board, colour chess.Color) bool {
	if _, ok := b.findKing(colour); !ok {
		return false
	}
	return !IsInCheck(b, colour) && !HasLegalMoves(b, colour)
}

// evaluateState computes the state after mover has completed a move.
// A side without a king is never checked, mated or stalemated; it simply
// gets the move.
func evaluateState(b *Board, mover chess.Color) chess.BoardState {
	opponent := mover.Opposite()
	if _, ok := b.findKing(opponent); !ok {
		return chess.ToMove(opponent)
	}

	inCheck := IsInCheck(b, opponent)
	canMove := HasLegalMoves(b, opponent)
	switch {
	case inCheck && !canMove:
		return chess.Checkmate(opponent)
	case inCheck:
		return chess.Check(opponent)
	case !canMove:
		return chess.Stalemate()
	}
	return chess.ToMove(opponent)
}
