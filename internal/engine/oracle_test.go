package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules/internal/chess"
)

// The tests in this file cross-check the engine against two independent
// move generators. Positions carry no castling or en passant rights and
// playouts never promote, since the engine models neither.

var oracleFENs = []string{
	startFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w - - 1 8",
	"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	"R3k3/8/8/8/8/8/8/6K1 b - - 0 1",
}

// dragontoothMoves lists the legal moves of the side to move in fen as
// coordinate strings. Promotions collapse to their squares.
func dragontoothMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	seen := make(map[string]bool, len(moves))
	var out []string
	for i := range moves {
		s := moves[i].String()[:4]
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func engineMoves(b *Board, colour chess.Color) []string {
	out := moveStrings(LegalMoves(b, colour))
	sort.Strings(out)
	return out
}

func sideToMove(b *Board) chess.Color {
	return b.State().Color
}

func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			board := boardFromFEN(t, fen)
			want := dragontoothMoves(fen)
			got := engineMoves(board, sideToMove(board))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("legal moves mismatch (-dragontooth +engine):\n%s", diff)
			}
		})
	}
}

// TestRandomPlayoutsMatchDragontooth walks seeded random games and compares
// the legal move lists at every ply.
func TestRandomPlayoutsMatchDragontooth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping playouts in short mode")
	}

	const plies = 60
	for seed := int64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		board := NewBoard(nil)

		for ply := 0; ply < plies && !board.State().IsTerminal(); ply++ {
			colour := sideToMove(board)
			fen := toFEN(board, colour)
			want := dragontoothMoves(fen)
			got := engineMoves(board, colour)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("seed %d ply %d %s: mismatch (-dragontooth +engine):\n%s", seed, ply, fen, diff)
			}

			candidates := nonPromoting(board, LegalMoves(board, colour))
			if len(candidates) == 0 {
				break
			}
			m := candidates[rng.Intn(len(candidates))]
			if err := board.MoveTroop(m.From, m.To); err != nil {
				t.Fatalf("seed %d ply %d: MoveTroop(%s): %v", seed, ply, m, err)
			}
		}
	}
}

func nonPromoting(b *Board, moves []chess.Move) []chess.Move {
	var out []chess.Move
	for _, m := range moves {
		t := b.TroopAt(m.From)
		if t.Piece == chess.Pawn && m.To.Rank == t.Color.Opposite().BackRank() {
			continue
		}
		out = append(out, m)
	}
	return out
}

// TestGamesMatchNotnil replays scripted games on both engines and compares
// the state reached after every move.
func TestGamesMatchNotnil(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
	}{
		{"fool's mate", startFEN, []string{"f2f3", "e7e6", "g2g4", "d8h4"}},
		{"scholar's mate", startFEN, []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}},
		{"early check", startFEN, []string{"e2e4", "f7f6", "d1h5"}},
		{"stalemate", "7k/8/6K1/8/8/8/5Q2/8 w - - 0 1", []string{"f2f7"}},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"a1a8"}},
		{
			"open game",
			startFEN,
			[]string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5c6", "d7c6", "f3e5", "d8d4", "e5f3", "d4e4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := nchess.FEN(tt.fen)
			if err != nil {
				t.Fatalf("FEN(%q): %v", tt.fen, err)
			}
			game := nchess.NewGame(opt, nchess.UseNotation(nchess.UCINotation{}))
			board := boardFromFEN(t, tt.fen)

			for i, m := range tt.moves {
				if err := game.MoveStr(m); err != nil {
					t.Fatalf("notnil rejected %s: %v", m, err)
				}
				mustMove(t, board, m)

				want := notnilState(game)
				if got := board.State(); got != want {
					t.Fatalf("after ply %d %s: State() = %v, want %v", i+1, m, got, want)
				}
			}
		})
	}
}

// notnilState maps a notnil game onto the engine's board state.
func notnilState(game *nchess.Game) chess.BoardState {
	toMove := chess.White
	if game.Position().Turn() == nchess.Black {
		toMove = chess.Black
	}

	switch game.Method() {
	case nchess.Checkmate:
		return chess.Checkmate(toMove)
	case nchess.Stalemate:
		return chess.Stalemate()
	}

	moves := game.Moves()
	if len(moves) > 0 && moves[len(moves)-1].HasTag(nchess.Check) {
		return chess.Check(toMove)
	}
	return chess.ToMove(toMove)
}
