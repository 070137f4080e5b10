package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// classifyRejection explains why to is not among t's destinations.
// The result carries ErrNoMotion for a null move; ErrPathIsBlocked when the
// troop cannot move at all, or when to lies on its movement pattern but is
// obstructed; and ErrInvalidPath with a reason otherwise.
func classifyRejection(b *Board, t chess.Troop, to chess.Position) *errors.MoveError {
	rejection := &errors.MoveError{
		From:  t.Position.String(),
		To:    to.String(),
		Piece: t.Piece.String(),
	}

	switch {
	case t.Position == to:
		rejection.Err = errors.ErrNoMotion
	case len(destinations(b, t)) == 0:
		rejection.Err = errors.ErrPathIsBlocked
		rejection.Reason = "no available moves"
	default:
		rejection.Reason = patternViolation(b, t, to)
		rejection.Err = errors.ErrPathIsBlocked
		if rejection.Reason != "" {
			rejection.Err = errors.ErrInvalidPath
		}
	}
	return rejection
}

// patternViolation returns why to is off t's movement pattern on an
// otherwise empty board, or "" if the pattern allows it.
func patternViolation(b *Board, t chess.Troop, to chess.Position) string {
	from := t.Position
	fileDiff := abs(int(to.File) - int(from.File))
	rankDiff := abs(int(to.Rank) - int(from.Rank))

	switch t.Piece {
	case chess.Pawn:
		advance := (int(to.Rank) - int(from.Rank)) * t.Color.Forward()
		switch {
		case advance <= 0:
			return "pawn must move forward"
		case fileDiff > 1:
			return "pawn cannot move more than one space horizontally"
		case advance > 2:
			return "pawn cannot move more than two spaces vertically"
		case advance == 2 && fileDiff != 0:
			return "pawn cannot move two spaces diagonally"
		case advance == 2 && from.Rank != t.Color.PawnRank():
			return "pawn must be on its starting square to move two spaces"
		case fileDiff == 1 && !b.isEnemy(to, t.Color):
			return "pawn cannot move diagonally without capturing"
		}

	case chess.Knight:
		if !(fileDiff == 1 && rankDiff == 2) && !(fileDiff == 2 && rankDiff == 1) {
			return "knight must move two spaces in one direction and one space in the other"
		}

	case chess.Bishop:
		if fileDiff != rankDiff {
			return "bishop must move in a purely diagonal line"
		}

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return "rook must move in a purely vertical or horizontal line"
		}

	case chess.Queen:
		if fileDiff != rankDiff && fileDiff != 0 && rankDiff != 0 {
			return "queen must move in a purely vertical, horizontal, or diagonal line"
		}

	case chess.King:
		if fileDiff > 1 || rankDiff > 1 {
			return "king cannot move more than one space in any direction"
		}
	}
	return ""
}
