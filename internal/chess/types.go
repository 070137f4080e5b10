// Package chess provides the core chess types: colours, pieces, troops,
// squares and the coarse board state.
package chess

// Color represents the colour of a troop or player.
type Color int

const (
	Black Color = iota
	White
)

// String returns the string representation of a colour.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Color) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnRank returns the rank pawns of this colour start on.
func (c Color) PawnRank() Rank {
	if c == White {
		return Two
	}
	return Seven
}

// BackRank returns the rank the other pieces of this colour start on.
func (c Color) BackRank() Rank {
	if c == White {
		return One
	}
	return Eight
}

// Piece represents a chess piece type.
type Piece int

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieces
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && p < NumPieces {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && p < NumPieces {
		return letters[p]
	}
	return '?'
}

// BackRow is the standard piece order on the back rank, file A to H.
var BackRow = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Troop is a single piece instance on the board.
// Position always equals the coordinate of the square holding it.
type Troop struct {
	Piece    Piece
	Color    Color
	Position Position
}

// String returns e.g. "White Knight b1".
func (t Troop) String() string {
	return t.Color.String() + " " + t.Piece.String() + " " + t.Position.String()
}

// Square is one cell of the board. Troop is nil when the square is empty.
type Square struct {
	Position Position
	Troop    *Troop
}

// Occupied reports whether a troop stands on the square.
func (s Square) Occupied() bool {
	return s.Troop != nil
}

// StateKind enumerates the variants of BoardState.
type StateKind int

const (
	StateToMove StateKind = iota
	StateCheck
	StateCheckmate
	StateStalemate
	StateDraw
)

// BoardState is the turn/check status of a board.
// Color is meaningful for ToMove, Check and Checkmate only: it is the side
// to move, which for Check and Checkmate is also the side under attack.
type BoardState struct {
	Kind  StateKind
	Color Color
}

// ToMove returns the state in which c may move and is not in check.
func ToMove(c Color) BoardState { return BoardState{Kind: StateToMove, Color: c} }

// Check returns the state in which c is in check and must move.
func Check(c Color) BoardState { return BoardState{Kind: StateCheck, Color: c} }

// Checkmate returns the terminal state in which c has been mated.
func Checkmate(c Color) BoardState { return BoardState{Kind: StateCheckmate, Color: c} }

// Stalemate returns the terminal stalemate state.
func Stalemate() BoardState { return BoardState{Kind: StateStalemate} }

// Draw returns the terminal draw state.
func Draw() BoardState { return BoardState{Kind: StateDraw} }

// CanMove reports whether a troop of colour c may move in this state.
// Only ToMove(c) and Check(c) permit c; terminal states permit no one.
func (s BoardState) CanMove(c Color) bool {
	switch s.Kind {
	case StateToMove, StateCheck:
		return s.Color == c
	}
	return false
}

// IsTerminal reports whether the game has ended.
func (s BoardState) IsTerminal() bool {
	switch s.Kind {
	case StateCheckmate, StateStalemate, StateDraw:
		return true
	}
	return false
}

// String returns e.g. "ToMove(White)" or "Stalemate".
func (s BoardState) String() string {
	switch s.Kind {
	case StateToMove:
		return "ToMove(" + s.Color.String() + ")"
	case StateCheck:
		return "Check(" + s.Color.String() + ")"
	case StateCheckmate:
		return "Checkmate(" + s.Color.String() + ")"
	case StateStalemate:
		return "Stalemate"
	case StateDraw:
		return "Draw"
	}
	return "Unknown"
}
