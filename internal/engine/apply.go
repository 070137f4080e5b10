package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
)

// MoveTroop moves the troop on from to to, capturing any opposing troop
// there, and advances the board state. Checks run in this order, the first
// failure winning:
//
//  1. from must hold a troop (ErrEmptyStartingSquare)
//  2. the state must permit that troop's colour to move (ErrNotYourTurn)
//  3. to must not hold another troop of the same colour (ErrFriendlyFire)
//  4. to must be one of ValidMoves(b, from) (ErrNoMotion, ErrPathIsBlocked
//     or ErrInvalidPath, all matching ErrIllegalMove)
//  5. with Config.KingSafety, the move must not leave the mover's king
//     attacked (ErrMoveIntoCheck)
//
// A null move (from == to) skips step 3 and fails step 4 with ErrNoMotion,
// even though to then holds a troop of the mover's colour. A troop with no
// destinations at all fails step 4 with ErrPathIsBlocked whatever to is.
//
// Rejections are returned as *errors.MoveError and leave the board unchanged.
// On success only the from and to squares change, then the state is
// re-evaluated for the opponent.
func (b *Board) MoveTroop(from, to chess.Position) error {
	if err := validatePositions(from, to); err != nil {
		return err
	}

	mover := b.troop(from)
	if mover == nil {
		return b.reject(&errors.MoveError{Err: errors.ErrEmptyStartingSquare, From: from.String(), To: to.String()})
	}
	rejection := &errors.MoveError{From: from.String(), To: to.String(), Piece: mover.Piece.String()}

	if !b.state.CanMove(mover.Color) {
		rejection.Err = errors.ErrNotYourTurn
		return b.reject(rejection)
	}
	if target := b.troop(to); target != nil && to != from && target.Color == mover.Color {
		rejection.Err = errors.ErrFriendlyFire
		return b.reject(rejection)
	}
	if !CanReach(b, from, to) {
		return b.reject(classifyRejection(b, *mover, to))
	}
	if b.cfg.KingSafety && !tryMove(b, from, to, mover.Color) {
		rejection.Err = errors.ErrMoveIntoCheck
		return b.reject(rejection)
	}

	colour := mover.Color
	b.relocate(from, to)
	b.state = evaluateState(b, colour)

	b.cfg.Logf(config.Moves, "%s %s%s: ok\n", colour, from, to)
	if b.state.Kind != chess.StateToMove {
		b.cfg.Logf(config.Transitions, "%s%s: %s\n", from, to, b.state)
	}
	return nil
}

// relocate moves the troop on from to to, replacing any occupant, and
// updates the troop's stored position. The troop is copied so that boards
// sharing squares with b are unaffected.
func (b *Board) relocate(from, to chess.Position) {
	moved := *b.troop(from)
	moved.Position = to
	b.squares[to.File][to.Rank].Troop = &moved
	b.squares[from.File][from.Rank].Troop = nil
}

// reject logs a rejected move and returns it as an error.
func (b *Board) reject(err *errors.MoveError) error {
	b.cfg.Logf(config.Moves, "rejected %v\n", err)
	return err
}

// validatePositions reports off-board coordinates as parse errors.
func validatePositions(positions ...chess.Position) error {
	for _, p := range positions {
		if !p.File.Valid() {
			return errors.Wrapf(errors.ErrFileParse, "file %d", int(p.File)+1)
		}
		if !p.Rank.Valid() {
			return errors.Wrapf(errors.ErrRankParse, "rank %d", int(p.Rank)+1)
		}
	}
	return nil
}
