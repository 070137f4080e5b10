package chess

import "github.com/lgbarn/chessrules/internal/errors"

// Move is a from/to square pair.
type Move struct {
	From Position
	To   Position
}

// String returns coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses coordinate notation: "e2e4", "e2-e4" or "e2 e4".
func ParseMove(s string) (Move, error) {
	var from, to string
	switch len(s) {
	case 4:
		from, to = s[:2], s[2:]
	case 5:
		if s[2] != '-' && s[2] != ' ' {
			return Move{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: s, Column: 3}
		}
		from, to = s[:2], s[3:]
	default:
		return Move{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: s}
	}

	f, err := ParsePosition(from)
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	t, err := ParsePosition(to)
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	return Move{From: f, To: t}, nil
}
