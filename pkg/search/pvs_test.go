package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/scha/pkg/board"
	"github.com/corvidchess/scha/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyUCI(t *testing.T, b *board.Board, color board.Color, from, to string) board.Color {
	t.Helper()
	start, err := board.ParseCoord(from)
	require.NoError(t, err)
	end, err := board.ParseCoord(to)
	require.NoError(t, err)

	for _, mv := range b.EnumerateMoves(color, start) {
		if mv.End == end {
			b.DoMove(mv)
			return color.Opponent()
		}
	}
	t.Fatalf("no legal move %v-%v for %v", from, to, color)
	return color
}

func TestSearchStartingPositionIsBalanced(t *testing.T) {
	ctx := context.Background()
	b := board.New()

	result := search.Search(ctx, b, board.White, search.Options{Depth: 3, QuiescenceDepth: 2, QuiescenceBand: 100})
	v, ok := result.Score.AsValue()
	require.True(t, ok)
	assert.InDeltaf(t, 0, v, 150, "starting position should be close to equal: %v", result)
	assert.NotEmpty(t, result.PV)
}

func TestSearchFindsBlackEdgeAfterQueenSortie(t *testing.T) {
	ctx := context.Background()
	b := board.New()

	color := board.White
	color = applyUCI(t, b, color, "e2", "e4")
	color = applyUCI(t, b, color, "d7", "d5")
	color = applyUCI(t, b, color, "d1", "h5") // queen sortie, leaves e4 undefended against d5xe4
	_ = color

	result := search.Search(ctx, b, board.Black, search.Options{Depth: 3, QuiescenceDepth: 3, QuiescenceBand: 100})
	v, ok := result.Score.AsValue()
	require.True(t, ok)
	assert.Greaterf(t, v, int32(0), "black should find an edge here: %v", result)
}

func TestSearchFindsForcedMateInOne(t *testing.T) {
	ctx := context.Background()
	b := board.New()

	color := board.White
	color = applyUCI(t, b, color, "f2", "f3")
	color = applyUCI(t, b, color, "e7", "e5")
	color = applyUCI(t, b, color, "g2", "g4")
	require.Equal(t, board.Black, color)

	result := search.Search(ctx, b, board.Black, search.Options{Depth: 2, QuiescenceDepth: 2, QuiescenceBand: 100})
	require.NotEmpty(t, result.PV)
	assert.Equal(t, board.MeWins, result.Score)

	mate := result.PV[0]
	assert.Equal(t, "d8", mate.Start.String())
	assert.Equal(t, "h4", mate.End.String())
}

func TestSearchDetectsFoolsMateAsLoss(t *testing.T) {
	ctx := context.Background()
	b := board.New()

	color := board.White
	color = applyUCI(t, b, color, "f2", "f3")
	color = applyUCI(t, b, color, "e7", "e5")
	color = applyUCI(t, b, color, "g2", "g4")
	color = applyUCI(t, b, color, "d8", "h4")

	require.Equal(t, board.White, color)
	require.True(t, b.King(board.White).IsInCheck())

	moves := b.EnumerateAllMovesBy(board.White)
	assert.True(t, moves.IsEmpty(), "white should be checkmated")

	result := search.Search(ctx, b, board.White, search.DefaultOptions())
	assert.Equal(t, board.EnemyWins, result.Score)
}
