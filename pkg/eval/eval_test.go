package eval_test

import (
	"testing"

	"github.com/corvidchess/scha/pkg/board"
	"github.com/corvidchess/scha/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyUCI(t *testing.T, b *board.Board, color board.Color, from, to string) {
	t.Helper()
	start, err := board.ParseCoord(from)
	require.NoError(t, err)
	end, err := board.ParseCoord(to)
	require.NoError(t, err)

	for _, mv := range b.EnumerateMoves(color, start) {
		if mv.End == end {
			b.DoMove(mv)
			return
		}
	}
	t.Fatalf("no legal move %v-%v for %v", from, to, color)
}

func TestStaticStartingPositionIsSymmetric(t *testing.T) {
	b := board.New()
	score := eval.Static(b)
	v, ok := score.AsValue()
	require.True(t, ok)
	assert.Equal(t, int32(0), v)
}

func TestStaticFavorsSideUpMaterial(t *testing.T) {
	b := board.New()
	applyUCI(t, b, board.White, "e2", "e4")
	applyUCI(t, b, board.Black, "d7", "d5")
	applyUCI(t, b, board.White, "e4", "d5")

	score := eval.Static(b)
	v, ok := score.AsValue()
	require.True(t, ok)
	assert.Greater(t, v, int32(0))
}

func TestOrderRanksCapturesAboveQuietMoves(t *testing.T) {
	b := board.New()
	applyUCI(t, b, board.White, "e2", "e4")
	applyUCI(t, b, board.Black, "d7", "d5")

	var captureScore, quietScore int32
	var sawCapture, sawQuiet bool
	for _, mv := range b.EnumerateAllMovesBy(board.White).Slice() {
		order := eval.Order(b, mv)
		if mv.IsCapture() {
			captureScore = order
			sawCapture = true
		} else if order == 0 {
			quietScore = order
			sawQuiet = true
		}
	}
	require.True(t, sawCapture)
	require.True(t, sawQuiet)
	assert.Greater(t, captureScore, quietScore)
}

func TestOrderRanksCastlingHighly(t *testing.T) {
	b := board.New()
	applyUCI(t, b, board.White, "e2", "e4")
	applyUCI(t, b, board.Black, "e7", "e5")
	applyUCI(t, b, board.White, "g1", "f3")
	applyUCI(t, b, board.Black, "b8", "c6")
	applyUCI(t, b, board.White, "f1", "c4")
	applyUCI(t, b, board.Black, "g8", "f6")

	var castle board.Move
	var found bool
	for _, mv := range b.EnumerateMoves(board.White, mustCoord(t, "e1")) {
		if _, ok := mv.CastleRook(); ok {
			castle = mv
			found = true
		}
	}
	require.True(t, found)
	assert.Greater(t, eval.Order(b, castle), int32(0))
}

func mustCoord(t *testing.T, s string) board.Coord {
	t.Helper()
	c, err := board.ParseCoord(s)
	require.NoError(t, err)
	return c
}
