// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvidchess/scha/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *depth <= 0 {
		logw.Exitf(ctx, "Invalid depth %v: must be positive", *depth)
	}

	for i := 1; i <= *depth; i++ {
		b := board.New()
		start := time.Now()
		nodes := perft(b, board.White, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}
}

func perft(b *board.Board, color board.Color, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, mv := range b.EnumerateAllMovesBy(color).Slice() {
		next := b.Clone()
		next.DoMove(mv)

		count := perft(next, color.Opponent(), depth-1, false)
		if d {
			fmt.Printf("%v: %v\n", mv, count)
		}
		nodes += count
	}
	return nodes
}
