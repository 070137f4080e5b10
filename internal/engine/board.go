// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
)

// Grid is the full set of squares indexed [file][rank], zero-based.
type Grid [chess.BoardSize][chess.BoardSize]chess.Square

// Board owns the 64 squares and the turn state.
// A Board is not safe for concurrent use.
type Board struct {
	squares Grid
	state   chess.BoardState
	cfg     *config.Config
}

// NewBoard creates a board in the standard starting position with White
// to move. A nil cfg uses config.NewConfig().
func NewBoard(cfg *config.Config) *Board {
	b := NewEmptyBoard(cfg)
	b.setupInitialPosition()
	return b
}

// NewEmptyBoard creates a board with no troops and White to move.
func NewEmptyBoard(cfg *config.Config) *Board {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	b := &Board{cfg: cfg}
	b.clear()
	return b
}

// clear empties every square and gives the move to White.
func (b *Board) clear() {
	for f := chess.A; f <= chess.H; f++ {
		for r := chess.One; r <= chess.Eight; r++ {
			b.squares[f][r] = chess.Square{Position: chess.Pos(f, r)}
		}
	}
	b.state = chess.ToMove(chess.White)
}

// setupInitialPosition places both armies in the standard layout.
func (b *Board) setupInitialPosition() {
	b.clear()
	for _, colour := range []chess.Color{chess.White, chess.Black} {
		for f := chess.A; f <= chess.H; f++ {
			b.put(chess.Troop{Piece: chess.Pawn, Color: colour, Position: chess.Pos(f, colour.PawnRank())})
			b.put(chess.Troop{Piece: chess.BackRow[f], Color: colour, Position: chess.Pos(f, colour.BackRank())})
		}
	}
}

// Reset reinitializes the board to the standard starting position.
func (b *Board) Reset() {
	b.setupInitialPosition()
}

// Config returns the configuration the board was created with.
func (b *Board) Config() *config.Config {
	return b.cfg
}

// State returns the current turn/check state.
func (b *Board) State() chess.BoardState {
	return b.state
}

// Square returns a copy of the square at p. Off-board positions yield an
// empty square.
func (b *Board) Square(p chess.Position) chess.Square {
	if !p.Valid() {
		return chess.Square{Position: p}
	}
	sq := b.squares[p.File][p.Rank]
	if sq.Troop != nil {
		t := *sq.Troop
		sq.Troop = &t
	}
	return sq
}

// TroopAt returns a copy of the troop at p, or nil if the square is empty.
func (b *Board) TroopAt(p chess.Position) *chess.Troop {
	return b.Square(p).Troop
}

// Squares returns a deep copy of the grid.
func (b *Board) Squares() Grid {
	var g Grid
	for f := range b.squares {
		for r := range b.squares[f] {
			g[f][r] = b.Square(chess.Pos(chess.File(f), chess.Rank(r)))
		}
	}
	return g
}

// Troops returns every troop of the given colour, file-major order.
func (b *Board) Troops(colour chess.Color) []chess.Troop {
	var troops []chess.Troop
	for f := range b.squares {
		for r := range b.squares[f] {
			if t := b.squares[f][r].Troop; t != nil && t.Color == colour {
				troops = append(troops, *t)
			}
		}
	}
	return troops
}

// Copy creates a deep copy of the board sharing the configuration.
func (b *Board) Copy() *Board {
	return &Board{squares: b.Squares(), state: b.state, cfg: b.cfg}
}

// troop returns the stored troop at p without copying.
func (b *Board) troop(p chess.Position) *chess.Troop {
	return b.squares[p.File][p.Rank].Troop
}

// isEmpty reports whether no troop stands on p.
func (b *Board) isEmpty(p chess.Position) bool {
	return b.troop(p) == nil
}

// isEnemy reports whether p holds a troop of the colour opposing colour.
func (b *Board) isEnemy(p chess.Position, colour chess.Color) bool {
	t := b.troop(p)
	return t != nil && t.Color != colour
}

// put stores t on the square named by its own position.
func (b *Board) put(t chess.Troop) {
	b.squares[t.Position.File][t.Position.Rank].Troop = &t
}

// findKing finds the king of the given colour on the board.
func (b *Board) findKing(colour chess.Color) (chess.Position, bool) {
	for f := range b.squares {
		for r := range b.squares[f] {
			t := b.squares[f][r].Troop
			if t != nil && t.Piece == chess.King && t.Color == colour {
				return t.Position, true
			}
		}
	}
	return chess.Position{}, false
}
