package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// BoardSize is the number of files and of ranks.
const BoardSize = 8

// File is a board column, A to H. The underlying value is the zero-based
// ordinal, so files compare by ordinal position.
type File int

const (
	A File = iota
	B
	C
	D
	E
	F
	G
	H
)

// Rank is a board row, One to Eight, stored as a zero-based ordinal.
type Rank int

const (
	One Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
)

// FileFromInt converts a 1-based file number to a File.
func FileFromInt(n int) (File, error) {
	if n < 1 || n > BoardSize {
		return 0, fmt.Errorf("file %d: %w", n, errors.ErrFileParse)
	}
	return File(n - 1), nil
}

// RankFromInt converts a 1-based rank number to a Rank.
func RankFromInt(n int) (Rank, error) {
	if n < 1 || n > BoardSize {
		return 0, fmt.Errorf("rank %d: %w", n, errors.ErrRankParse)
	}
	return Rank(n - 1), nil
}

// Int returns the 1-based file number.
func (f File) Int() int { return int(f) + 1 }

// Int returns the 1-based rank number.
func (r Rank) Int() int { return int(r) + 1 }

// Valid reports whether f is one of A..H.
func (f File) Valid() bool { return f >= A && f <= H }

// Valid reports whether r is one of One..Eight.
func (r Rank) Valid() bool { return r >= One && r <= Eight }

// Offset returns the file d columns away, failing off the board.
func (f File) Offset(d int) (File, error) {
	return FileFromInt(f.Int() + d)
}

// Offset returns the rank d rows away, failing off the board.
func (r Rank) Offset(d int) (Rank, error) {
	return RankFromInt(r.Int() + d)
}

// String returns the lowercase file letter.
func (f File) String() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune('a' + int(f)))
}

// String returns the rank digit.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rune('1' + int(r)))
}

// Position identifies one square.
type Position struct {
	File File
	Rank Rank
}

// Pos is shorthand for Position{File: f, Rank: r}.
func Pos(f File, r Rank) Position {
	return Position{File: f, Rank: r}
}

// Valid reports whether both coordinates are on the board.
func (p Position) Valid() bool {
	return p.File.Valid() && p.Rank.Valid()
}

// Offset returns the square df files and dr ranks away.
// ok is false when the target is off the board.
func (p Position) Offset(df, dr int) (Position, bool) {
	f, err := p.File.Offset(df)
	if err != nil {
		return Position{}, false
	}
	r, err := p.Rank.Offset(dr)
	if err != nil {
		return Position{}, false
	}
	return Position{File: f, Rank: r}, true
}

// Mirror returns the square with the rank reflected (a2 <-> a7).
func (p Position) Mirror() Position {
	return Position{File: p.File, Rank: Eight - p.Rank}
}

// String returns algebraic notation, e.g. "e2".
func (p Position) String() string {
	return p.File.String() + p.Rank.String()
}

// ParsePosition parses a square in algebraic notation ("e2" or "E2").
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: s}
	}

	col := s[0]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	if col < 'a' || col > 'h' {
		return Position{}, &errors.ParseError{Err: errors.ErrFileParse, Input: s, Column: 1}
	}
	if s[1] < '1' || s[1] > '8' {
		return Position{}, &errors.ParseError{Err: errors.ErrRankParse, Input: s, Column: 2}
	}
	return Position{File: File(col - 'a'), Rank: Rank(s[1] - '1')}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// It is intended for literals known to be valid.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}
