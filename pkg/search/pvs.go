package search

import (
	"context"
	"sort"

	"github.com/corvidchess/scha/pkg/board"
	"github.com/corvidchess/scha/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// run holds the mutable state of one top-level Search call: a node counter,
// the search context (checked for cancellation at every recursion entry, the
// same guard the teacher's own alpha-beta search applies), and the fixed
// quiescence band, threaded through every recursive negamax call.
type run struct {
	ctx   context.Context
	nodes uint64
	band  int32
}

// staticEval is eval.Static, named locally so the rest of this file reads as
// search vocabulary rather than a cross-package call at every use.
func staticEval(b *board.Board) board.Score {
	return eval.Static(b)
}

// perspectiveScore reorients a White-relative score to color's point of view:
// White sees it unchanged, Black sees its negation.
func perspectiveScore(color board.Color, s board.Score) board.Score {
	if color == board.White {
		return s
	}
	return s.Negate()
}

// withinBand reports whether a child's standing evaluation is close enough to
// its parent's that the position is considered quiet. A mate or stalemate
// score is never quiet: it always warrants continuing the search.
func withinBand(parent, child board.Score, band int32) bool {
	pv, pok := parent.AsValue()
	cv, cok := child.AsValue()
	if !pok || !cok {
		return false
	}
	delta := cv - pv
	if delta < 0 {
		delta = -delta
	}
	return delta <= band
}

// negamax searches the position on b for the side to move, color, returning a
// score from color's point of view and the principal variation below this
// node. depth is the remaining main-search depth; q is the remaining
// quiescence plies once depth has reached 0. parentWhiteStand is the
// immediately preceding node's static evaluation, White-relative (the same
// frame eval.Static returns), used to judge whether this node is quiet enough
// to stop extending without the zero-sum sign flip each ply would otherwise
// introduce.
func (r *run) negamax(b *board.Board, color board.Color, depth, q int, alpha, beta board.Score, parentWhiteStand board.Score) (board.Score, []board.Move) {
	r.nodes++

	whiteStand := staticEval(b)
	standPat := perspectiveScore(color, whiteStand)
	if contextx.IsCancelled(r.ctx) {
		return standPat, nil
	}
	if depth == 0 && (q == 0 || withinBand(parentWhiteStand, whiteStand, r.band)) {
		return standPat, nil
	}

	moves := b.EnumerateAllMovesBy(color).Slice()
	if len(moves) == 0 {
		if b.King(color).IsInCheck() {
			return board.EnemyWins, nil
		}
		return board.Stalemate, nil
	}

	ordered := append([]board.Move(nil), moves...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return eval.Order(b, ordered[i]) > eval.Order(b, ordered[j])
	})

	nextDepth, nextQ := depth, q
	if depth > 0 {
		nextDepth--
	} else {
		nextQ--
	}

	var pv []board.Move
	first := true

	for _, mv := range ordered {
		child := b.Clone()
		child.DoMove(mv)

		var score board.Score
		var rem []board.Move

		if first {
			score, rem = r.negamax(child, color.Opponent(), nextDepth, nextQ, beta.Negate(), alpha.Negate(), whiteStand)
			score = score.Negate()
		} else {
			score, rem = r.negamax(child, color.Opponent(), nextDepth, nextQ, alpha.Add(1).Negate(), alpha.Negate(), whiteStand)
			score = score.Negate()
			if alpha.Less(score) && score.Less(beta) {
				score, rem = r.negamax(child, color.Opponent(), nextDepth, nextQ, beta.Negate(), score.Negate(), whiteStand)
				score = score.Negate()
			}
		}

		if first || score.Greater(alpha) {
			pv = append([]board.Move{mv}, rem...)
		}
		first = false

		if score.Greater(alpha) {
			alpha = score
		}
		if !alpha.Less(beta) {
			break // cutoff
		}
	}

	return alpha, pv
}
