// Package search implements negamax with alpha-beta pruning, PV null-window
// re-search, and a fixed-band quiescence extension over pkg/board and pkg/eval.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/corvidchess/scha/pkg/board"
	"github.com/seekerror/logw"
)

// Options configures a single fixed-depth search. There is no iterative
// deepening or time control: depth bounds the work indirectly.
type Options struct {
	// Depth is the main search depth D. Default 5.
	Depth int
	// QuiescenceDepth is the maximum number of extra plies Q used to resolve a
	// tactical position once the main search bottoms out. Default 4.
	QuiescenceDepth int
	// QuiescenceBand is the largest |delta|, in centi-pawns, between a node's
	// static evaluation and its parent's before the extension kicks in.
	// Default 100 (one pawn).
	QuiescenceBand int32
}

// DefaultOptions returns the suggested defaults from the search design: depth
// 5, quiescence depth 4, a one-pawn quiescence band.
func DefaultOptions() Options {
	return Options{Depth: 5, QuiescenceDepth: 4, QuiescenceBand: 100}
}

// Result is the outcome of a search, scored from color's point of view.
type Result struct {
	Score board.Score
	PV    []board.Move
	Nodes uint64
	Time  time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("score=%v nodes=%v time=%v pv=%v", r.Score, r.Nodes, r.Time, r.PV)
}

// Search runs a fixed-depth negamax search for the side to move (color) on b.
// b is read-only: every descent clones it before calling board.DoMove.
func Search(ctx context.Context, b *board.Board, color board.Color, opt Options) Result {
	start := time.Now()

	r := &run{ctx: ctx, band: opt.QuiescenceBand}
	whiteStand := staticEval(b)
	score, pv := r.negamax(b, color, opt.Depth, opt.QuiescenceDepth, board.EnemyWins, board.MeWins, whiteStand)

	result := Result{Score: score, PV: pv, Nodes: r.nodes, Time: time.Since(start)}
	logw.Debugf(ctx, "search depth=%v quiescence=%v: %v", opt.Depth, opt.QuiescenceDepth, result)
	return result
}
