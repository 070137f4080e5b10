// Package replay plays lists of coordinate moves onto fresh boards, one game
// at a time or as a batch over a worker pool.
package replay

import (
	"io"
	"strings"
	"sync"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/worker"
)

// ParseMoveList splits a move list such as "1. e2e4 e7e5 2. g1-f3" into
// coordinate moves. Move numbers are skipped.
func ParseMoveList(text string) ([]chess.Move, error) {
	var moves []chess.Move
	for _, token := range strings.FieldsFunc(text, isSeparator) {
		if isMoveNumber(token) {
			continue
		}
		m, err := chess.ParseMove(token)
		if err != nil {
			return nil, &errors.GameError{Err: err, PlyNum: len(moves) + 1, MoveText: token}
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
}

// isMoveNumber reports whether token looks like "12." or "12...".
func isMoveNumber(token string) bool {
	digits := strings.TrimRight(token, ".")
	if digits == token || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Play replays moves from the standard starting position. On failure it
// returns the board as it stood before the offending move together with a
// *errors.GameError naming the 1-based ply and the move text.
func Play(cfg *config.Config, moves []string) (*engine.Board, error) {
	board := engine.NewBoard(cfg)
	_, err := apply(board, moves)
	return board, err
}

// apply plays moves onto board and returns how many were accepted.
func apply(board *engine.Board, moves []string) (int, error) {
	for i, text := range moves {
		m, err := chess.ParseMove(text)
		if err == nil {
			err = board.MoveTroop(m.From, m.To)
		}
		if err != nil {
			return i, &errors.GameError{Err: err, PlyNum: i + 1, MoveText: text}
		}
	}
	return len(moves), nil
}

// ReplayAll replays every game on its own board using cfg.Replay for the
// pool size, and returns one result per game in input order. Errors carry
// the 1-based game number. With StopOnError, games not yet started when the
// first failure is seen are skipped and their results have a nil Board.
func ReplayAll(cfg *config.Config, games [][]string) []worker.ProcessResult {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	shared := *cfg
	if shared.LogFile != nil {
		shared.LogFile = &lockedWriter{w: shared.LogFile}
	}
	stopOnError := cfg.Replay != nil && cfg.Replay.StopOnError

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		board := engine.NewBoard(&shared)
		plies, err := apply(board, item.Moves)
		if ge, ok := err.(*errors.GameError); ok {
			ge.GameNum = item.Index + 1
		}
		return worker.ProcessResult{
			Index: item.Index,
			Board: board,
			State: board.State(),
			Plies: plies,
			Err:   err,
		}
	}

	pool := worker.NewPool(processFunc, worker.WithReplayConfig(cfg.Replay))
	pool.Start()

	go func() {
		for i, moves := range games {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Moves: moves, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.ProcessResult, len(games))
	for i := range results {
		results[i].Index = i
	}
	for result := range pool.Results() {
		results[result.Index] = result
		if result.Err != nil && stopOnError {
			pool.Stop()
		}
	}

	cfg.Logf(config.Transitions, "replayed %d of %d games on %d workers\n",
		pool.Processed(), len(games), pool.NumWorkers())
	return results
}

// lockedWriter serializes writes from concurrent boards sharing a log.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
