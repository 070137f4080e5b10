package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// The functions in this file set up positions directly, bypassing the move
// pipeline. They exist for tests and tooling and are not part of the
// production contract: they neither validate turn order nor re-evaluate
// the board state.

// PlaceTroop puts t on the square named by t.Position.
func (b *Board) PlaceTroop(t chess.Troop) error {
	if !t.Position.Valid() {
		return &errors.ParseError{Err: errors.ErrParseFailure, Input: t.Position.String()}
	}
	if !b.isEmpty(t.Position) {
		return errors.Wrapf(errors.ErrSquareOccupied, "placing %s", t)
	}
	b.put(t)
	return nil
}

// RemoveTroop empties p and returns the troop that stood there, if any.
func (b *Board) RemoveTroop(p chess.Position) *chess.Troop {
	if !p.Valid() {
		return nil
	}
	old := b.troop(p)
	b.squares[p.File][p.Rank].Troop = nil
	return old
}

// ReplaceTroop puts t on p, returning the previous occupant.
// t.Position is overwritten with p.
func (b *Board) ReplaceTroop(p chess.Position, t chess.Troop) *chess.Troop {
	if !p.Valid() {
		return nil
	}
	old := b.troop(p)
	t.Position = p
	b.put(t)
	return old
}

// SetState overrides the turn/check state.
func (b *Board) SetState(s chess.BoardState) {
	b.state = s
}
