package engine

import "github.com/lgbarn/chessrules/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
)

// stepMoves generates single-jump destinations for knights and kings.
// A target is kept if it is on the board and not held by a friendly troop;
// intervening squares are never inspected.
func stepMoves(b *Board, t chess.Troop, offsets [][2]int) []chess.Position {
	moves := make([]chess.Position, 0, len(offsets))
	for _, off := range offsets {
		to, ok := t.Position.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if b.isEmpty(to) || b.isEnemy(to, t.Color) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slideMoves casts a ray in each direction. A ray extends over empty
// squares, includes the first occupied square only when it holds an
// opposing troop, and stops there or at the board edge.
func slideMoves(b *Board, t chess.Troop, dirs [][2]int) []chess.Position {
	var moves []chess.Position
	for _, dir := range dirs {
		to, ok := t.Position.Offset(dir[0], dir[1])
		for ok {
			if !b.isEmpty(to) {
				if b.isEnemy(to, t.Color) {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
