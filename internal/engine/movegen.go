package engine

import (
	"slices"

	"github.com/lgbarn/chessrules/internal/chess"
)

// ValidMoves returns the squares the troop on from may move to, given the
// current occupancy. It does not consider whether the move would leave the
// mover's own king attacked; see LegalMoves for that. An empty or off-board
// from yields nil.
func ValidMoves(b *Board, from chess.Position) []chess.Position {
	if !from.Valid() {
		return nil
	}
	t := b.troop(from)
	if t == nil {
		return nil
	}
	return destinations(b, *t)
}

// CanReach reports whether to is one of ValidMoves(b, from).
func CanReach(b *Board, from, to chess.Position) bool {
	return slices.Contains(ValidMoves(b, from), to)
}

// destinations dispatches to the generator for t's piece, computed from
// t.Position.
func destinations(b *Board, t chess.Troop) []chess.Position {
	switch t.Piece {
	case chess.Pawn:
		return pawnMoves(b, t)
	case chess.Knight:
		return stepMoves(b, t, knightOffsets)
	case chess.Bishop:
		return slideMoves(b, t, diagonalDirs)
	case chess.Rook:
		return slideMoves(b, t, straightDirs)
	case chess.Queen:
		rook, bishop := t, t
		rook.Piece = chess.Rook
		bishop.Piece = chess.Bishop
		return append(destinations(b, rook), destinations(b, bishop)...)
	case chess.King:
		return stepMoves(b, t, kingOffsets)
	}
	return nil
}
