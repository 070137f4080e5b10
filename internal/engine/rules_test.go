package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	chesserrors "github.com/lgbarn/chessrules/internal/errors"
)

// TestStateTransitions plays short sequences and checks the resulting state.
func TestStateTransitions(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  chess.BoardState
	}{
		{
			name:  "quiet move hands over the turn",
			fen:   startFEN,
			moves: []string{"e2e4"},
			want:  chess.ToMove(chess.Black),
		},
		{
			name:  "rook gives check along the back rank",
			fen:   "4k3/8/8/8/8/8/8/R3K3 w",
			moves: []string{"a1a8"},
			want:  chess.Check(chess.Black),
		},
		{
			name:  "discovered check",
			fen:   "4k3/8/8/8/8/8/4N3/4R1K1 w",
			moves: []string{"e2c3"},
			want:  chess.Check(chess.Black),
		},
		{
			name:  "queen checks through an opened diagonal",
			fen:   startFEN,
			moves: []string{"e2e4", "f7f6", "d1h5"},
			want:  chess.Check(chess.Black),
		},
		{
			name:  "fool's mate",
			fen:   startFEN,
			moves: []string{"f2f3", "e7e6", "g2g4", "d8h4"},
			want:  chess.Checkmate(chess.White),
		},
		{
			name:  "scholar's mate",
			fen:   startFEN,
			moves: []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"},
			want:  chess.Checkmate(chess.Black),
		},
		{
			name:  "back rank mate",
			fen:   "6k1/5ppp/8/8/8/8/8/R5K1 w",
			moves: []string{"a1a8"},
			want:  chess.Checkmate(chess.Black),
		},
		{
			name:  "queen stalemates a cornered king",
			fen:   "7k/8/6K1/8/8/8/5Q2/8 w",
			moves: []string{"f2f7"},
			want:  chess.Stalemate(),
		},
		{
			name:  "king and pawn stalemate",
			fen:   "5k2/5P2/8/5K2/8/8/8/8 w",
			moves: []string{"f5f6"},
			want:  chess.Stalemate(),
		},
		{
			name:  "side without a king simply moves",
			fen:   "8/8/8/8/8/8/8/R3K3 w",
			moves: []string{"a1a8"},
			want:  chess.ToMove(chess.Black),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromFEN(t, tt.fen)
			for _, m := range tt.moves {
				mustMove(t, board, m)
			}
			if got := board.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalStatesFreezeTheBoard(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		try   []string
	}{
		{
			name:  "after checkmate",
			fen:   startFEN,
			moves: []string{"f2f3", "e7e6", "g2g4", "d8h4"},
			try:   []string{"e1f2", "h2h3", "h4e1", "a7a6"},
		},
		{
			name:  "after stalemate",
			fen:   "7k/8/6K1/8/8/8/5Q2/8 w",
			moves: []string{"f2f7"},
			try:   []string{"h8h7", "g6h6", "f7f8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromFEN(t, tt.fen)
			for _, m := range tt.moves {
				mustMove(t, board, m)
			}
			before := takeSnapshot(board)
			for _, m := range tt.try {
				mv, err := chess.ParseMove(m)
				if err != nil {
					t.Fatal(err)
				}
				err = board.MoveTroop(mv.From, mv.To)
				if !errors.Is(err, chesserrors.ErrNotYourTurn) {
					t.Errorf("MoveTroop(%s) error = %v, want ErrNotYourTurn", m, err)
				}
			}
			assertUnchanged(t, before, board)
		})
	}
}

// TestCheckedSideMayMove verifies a checked side keeps the move, and that
// without king safety it may even ignore the check.
func TestCheckedSideMayMove(t *testing.T) {
	board := boardFromFEN(t, "4k3/8/8/8/8/8/8/R3K3 w")
	mustMove(t, board, "a1a8")

	if !board.State().CanMove(chess.Black) {
		t.Fatalf("State() = %v should let Black move", board.State())
	}
	if board.State().CanMove(chess.White) {
		t.Fatalf("State() = %v should not let White move", board.State())
	}
	mustMove(t, board, "e8d7")
	if got := board.State(); got != chess.ToMove(chess.White) {
		t.Errorf("State() = %v, want ToMove(White)", got)
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Color
		want   bool
	}{
		{"start position white", startFEN, chess.White, false},
		{"start position black", startFEN, chess.Black, false},
		{"rook on open file", "4k3/8/8/8/8/8/8/4RK2 w", chess.Black, true},
		{"rook file blocked", "4k3/4p3/8/8/8/8/8/4RK2 w", chess.Black, false},
		{"bishop diagonal", "4k3/8/8/8/B7/8/8/5K2 w", chess.Black, true},
		{"knight", "4k3/8/3N4/8/8/8/8/5K2 w", chess.Black, true},
		{"white pawn attacks upward", "4k3/3P4/8/8/8/8/8/5K2 w", chess.Black, true},
		{"black pawn attacks downward", "4k3/8/8/8/8/8/3p4/4K3 w", chess.White, true},
		{"pawn does not attack straight ahead", "4k3/4P3/8/8/8/8/8/5K2 w", chess.Black, false},
		{"adjacent kings", "8/8/8/8/8/8/3k4/4K3 w", chess.White, true},
		{"no king", "8/8/8/8/8/8/8/R7 w", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromFEN(t, tt.fen)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsCheckmateAndStalemate(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		colour        chess.Color
		wantCheckmate bool
		wantStalemate bool
	}{
		{"start position", startFEN, chess.White, false, false},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b", chess.Black, true, false},
		{"check with escape", "R3k3/8/8/8/8/8/8/6K1 b", chess.Black, false, false},
		{"cornered king", "7k/5Q2/6K1/8/8/8/8/8 b", chess.Black, false, true},
		{"no king", "8/8/8/8/8/8/8/R5K1 b", chess.Black, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromFEN(t, tt.fen)
			if got := IsCheckmate(board, tt.colour); got != tt.wantCheckmate {
				t.Errorf("IsCheckmate(%v) = %v, want %v", tt.colour, got, tt.wantCheckmate)
			}
			if got := IsStalemate(board, tt.colour); got != tt.wantStalemate {
				t.Errorf("IsStalemate(%v) = %v, want %v", tt.colour, got, tt.wantStalemate)
			}
		})
	}
}

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Color
		want   []string
	}{
		{
			name:   "king escapes a back rank check",
			fen:    "R3k3/8/8/8/8/8/8/6K1 b",
			colour: chess.Black,
			want:   []string{"e8d7", "e8e7", "e8f7"},
		},
		{
			name:   "pinned bishop stays put",
			fen:    "4k3/4r3/8/8/8/8/4B3/4K3 w",
			colour: chess.White,
			want:   []string{"e1d1", "e1d2", "e1f1", "e1f2"},
		},
		{
			name:   "king captures or steps aside",
			fen:    "4k3/8/8/8/8/8/3q4/R3K3 w",
			colour: chess.White,
			want:   []string{"e1d2", "e1f1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromFEN(t, tt.fen)
			got := moveStrings(LegalMoves(board, tt.colour))
			if !sameStrings(got, tt.want) {
				t.Errorf("LegalMoves(%v) = %v, want %v", tt.colour, got, tt.want)
			}
			if has := HasLegalMoves(board, tt.colour); has != (len(tt.want) > 0) {
				t.Errorf("HasLegalMoves(%v) = %v", tt.colour, has)
			}
		})
	}

	if n := len(LegalMoves(NewBoard(nil), chess.White)); n != 20 {
		t.Errorf("len(LegalMoves(start)) = %d, want 20", n)
	}
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// sameStrings compares two lists as sets.
func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		if seen[s] == 0 {
			return false
		}
		seen[s]--
	}
	return true
}

func TestCheckFromPreparedBoards(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board) error
		moves []string
		want  chess.BoardState
	}{
		{
			name: "queen checks the advanced king",
			setup: func(b *Board) error {
				b.RemoveTroop(sq("f2"))
				b.RemoveTroop(sq("c7"))
				return nil
			},
			moves: []string{"e1f2", "d8b6"},
			want:  chess.Check(chess.White),
		},
		{
			name: "pawn capture uncovers a bishop",
			setup: func(b *Board) error {
				if err := b.PlaceTroop(chess.Troop{Piece: chess.Bishop, Color: chess.Black, Position: sq("h4")}); err != nil {
					return err
				}
				return b.PlaceTroop(chess.Troop{Piece: chess.Pawn, Color: chess.Black, Position: sq("g3")})
			},
			moves: []string{"f2f4", "g3h2"},
			want:  chess.Check(chess.White),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(nil)
			if err := tt.setup(board); err != nil {
				t.Fatal(err)
			}
			for _, m := range tt.moves {
				mustMove(t, board, m)
			}
			if got := board.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}
