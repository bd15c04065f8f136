package match_test

import (
	"context"
	"testing"
	"time"

	"github.com/corvidchess/scha/pkg/board"
	"github.com/corvidchess/scha/pkg/match"
	"github.com/corvidchess/scha/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMove(t *testing.T, b *board.Board, color board.Color, from, to string) board.Move {
	t.Helper()
	start, err := board.ParseCoord(from)
	require.NoError(t, err)
	end, err := board.ParseCoord(to)
	require.NoError(t, err)

	for _, mv := range b.EnumerateMoves(color, start) {
		if mv.End == end {
			return mv
		}
	}
	t.Fatalf("no legal move %v-%v for %v", from, to, color)
	return board.Move{}
}

func TestRegistryCreate(t *testing.T) {
	ctx := context.Background()
	r := match.NewRegistry[string](search.DefaultOptions())

	id := r.Create(ctx, "alice vs bob")
	info, ok := r.GetInfo(id)
	require.True(t, ok)
	_, decided := info.Result.V()
	assert.False(t, decided)
	assert.Equal(t, board.White, info.Turn)
	assert.Equal(t, "alice vs bob", info.Extra)

	b, ok := r.GetBoard(id)
	require.True(t, ok)
	assert.NotNil(t, b)
}

func TestRegistryDoMoveFlipsTurn(t *testing.T) {
	ctx := context.Background()
	r := match.NewRegistry[struct{}](search.DefaultOptions())
	id := r.Create(ctx, struct{}{})

	b, _ := r.GetBoard(id)
	mv := findMove(t, b, board.White, "e2", "e4")

	r.DoMove(ctx, id, mv, false)

	info, ok := r.GetInfo(id)
	require.True(t, ok)
	assert.Equal(t, board.Black, info.Turn)
	_, decided := info.Result.V()
	assert.False(t, decided)
}

func TestRegistrySlotReuse(t *testing.T) {
	ctx := context.Background()
	r := match.NewRegistry[int](search.DefaultOptions())

	id1 := r.Create(ctx, 1)
	r.Release(id1)
	id2 := r.Create(ctx, 2)

	assert.Equal(t, id1, id2)
	info, ok := r.GetInfo(id2)
	require.True(t, ok)
	assert.Equal(t, 2, info.Extra)
}

// TestRegistryAsyncReply exercises the asynchronous engine-reply path: after a
// human move with spawnReply set, the match's turn eventually returns to White,
// i.e. a second ply was applied without the caller driving it directly.
func TestRegistryAsyncReply(t *testing.T) {
	ctx := context.Background()
	opt := search.Options{Depth: 1, QuiescenceDepth: 0, QuiescenceBand: 100}
	r := match.NewRegistry[struct{}](opt)
	id := r.Create(ctx, struct{}{})

	b, _ := r.GetBoard(id)
	mv := findMove(t, b, board.White, "e2", "e4")
	r.DoMove(ctx, id, mv, true)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		info, ok := r.GetInfo(id)
		require.True(t, ok)
		if info.Turn == board.White {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("engine reply did not land in time")
}

func TestMatchCheckmateSettlesOutcome(t *testing.T) {
	ctx := context.Background()
	r := match.NewRegistry[struct{}](search.DefaultOptions())
	id := r.Create(ctx, struct{}{})

	for _, pair := range [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}} {
		b, _ := r.GetBoard(id)
		info, _ := r.GetInfo(id)
		mv := findMove(t, b, info.Turn, pair[0], pair[1])
		r.DoMove(ctx, id, mv, false)
	}

	b, _ := r.GetBoard(id)
	mv := findMove(t, b, board.Black, "d8", "h4")
	r.DoMove(ctx, id, mv, false)

	info, ok := r.GetInfo(id)
	require.True(t, ok)
	outcome, decided := info.Result.V()
	require.True(t, decided)
	assert.Equal(t, match.BlackWins, outcome)
}
