// scha plays a single self-play game to a fixed search depth per side,
// logging each move and the final result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvidchess/scha/pkg/board"
	"github.com/corvidchess/scha/pkg/match"
	"github.com/corvidchess/scha/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth      = flag.Int("depth", 5, "Main search depth")
	quiescence = flag.Int("quiescence", 4, "Quiescence extension depth")
	band       = flag.Int("band", 100, "Quiescence band, in centi-pawns")
	plies      = flag.Int("plies", 200, "Maximum plies to play before giving up")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: scha [options]

scha plays a self-play game using fixed-depth negamax search.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	opt := search.Options{Depth: *depth, QuiescenceDepth: *quiescence, QuiescenceBand: int32(*band)}
	logw.Infof(ctx, "scha %v, options=%v", version, opt)

	registry := match.NewRegistry[struct{}](opt)
	id := registry.Create(ctx, struct{}{})

	for i := 0; i < *plies; i++ {
		info, ok := registry.GetInfo(id)
		if !ok {
			logw.Exitf(ctx, "Match %v vanished", id)
		}
		if outcome, decided := info.Result.V(); decided {
			logw.Infof(ctx, "Game over: %v", outcome)
			return
		}

		b, ok := registry.GetBoard(id)
		if !ok {
			logw.Exitf(ctx, "Board %v vanished", id)
		}

		result := search.Search(ctx, b, info.Turn, opt)
		if len(result.PV) == 0 {
			logw.Exitf(ctx, "No move found for %v on: %v", info.Turn, b)
		}

		mv := result.PV[0]
		registry.DoMove(ctx, id, mv, false)
		logw.Infof(ctx, "ply %v: %v plays %v (%v)", i+1, info.Turn, mv, result.Score)
	}

	logw.Infof(ctx, "Reached ply limit %v without a decided result", *plies)
}
