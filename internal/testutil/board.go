package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
)

// MustPlay plays coordinate moves from the starting position and calls
// t.Fatal on the first rejection. A nil cfg uses the defaults.
func MustPlay(t *testing.T, cfg *config.Config, moves ...string) *engine.Board {
	t.Helper()
	board := engine.NewBoard(cfg)
	for i, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ply %d: %v", i+1, err)
		}
		if err := board.MoveTroop(m.From, m.To); err != nil {
			t.Fatalf("ply %d %s: %v", i+1, text, err)
		}
	}
	return board
}

// AssertState fails if b is not in the wanted state.
func AssertState(t *testing.T, b *engine.Board, want chess.BoardState) {
	t.Helper()
	if got := b.State(); got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

// AssertTroop fails unless square holds a troop of the given colour and
// piece whose stored position is square.
func AssertTroop(t *testing.T, b *engine.Board, square string, colour chess.Color, piece chess.Piece) {
	t.Helper()
	p := chess.MustParsePosition(square)
	want := &chess.Troop{Piece: piece, Color: colour, Position: p}
	AssertEqual(t, b.TroopAt(p), want, "troop on %s", square)
}

// AssertEmpty fails if square holds a troop.
func AssertEmpty(t *testing.T, b *engine.Board, square string) {
	t.Helper()
	if troop := b.TroopAt(chess.MustParsePosition(square)); troop != nil {
		t.Errorf("square %s holds %v, want empty", square, troop)
	}
}
