// Package match implements a thread-safe registry of concurrent chess
// matches, each addressable by a stable integer id, with optional
// asynchronous engine replies.
package match

import (
	"context"
	"sync"

	"github.com/corvidchess/scha/pkg/board"
	"github.com/corvidchess/scha/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Outcome is the terminal state of a decided match.
type Outcome uint8

const (
	WhiteWins Outcome = iota
	BlackWins
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	default:
		return "stalemate"
	}
}

// Info is a match's metadata: whose turn it is, its outcome once decided, and
// caller-supplied extra data (player handles, clocks, whatever the caller
// needs to correlate a match id with its own bookkeeping). Result is empty
// while the match is ongoing.
type Info[E any] struct {
	Result lang.Optional[Outcome]
	Turn   board.Color
	Extra  E
}

// Registry holds every in-flight and finished match behind three
// independently-locked vectors (boards, infos, and the free list of reusable
// slots), matching in spirit a per-vector RwLock rather than one lock guarding
// the whole registry.
type Registry[E any] struct {
	boardsMu sync.RWMutex
	boards   []*board.Board

	infosMu sync.RWMutex
	infos   []Info[E]

	freeMu sync.Mutex
	free   []uint32

	opt search.Options
}

// NewRegistry returns an empty registry. opt configures every asynchronous
// engine reply spawned by DoMove.
func NewRegistry[E any](opt search.Options) *Registry[E] {
	return &Registry[E]{opt: opt}
}

// Create starts a new match at the standard starting position and returns its
// id, reusing a freed slot if one is available.
func (r *Registry[E]) Create(ctx context.Context, extra E) uint32 {
	b := board.New()
	info := Info[E]{Turn: board.White, Extra: extra}

	r.freeMu.Lock()
	if n := len(r.free); n > 0 {
		id := r.free[n-1]
		r.free = r.free[:n-1]
		r.freeMu.Unlock()

		r.boardsMu.Lock()
		r.boards[id] = b
		r.boardsMu.Unlock()

		r.infosMu.Lock()
		r.infos[id] = info
		r.infosMu.Unlock()
		return id
	}
	r.freeMu.Unlock()

	r.boardsMu.Lock()
	r.boards = append(r.boards, b)
	id := uint32(len(r.boards) - 1)
	r.boardsMu.Unlock()

	r.infosMu.Lock()
	r.infos = append(r.infos, info)
	r.infosMu.Unlock()

	logw.Infof(ctx, "match %v: created", id)
	return id
}

// GetBoard returns a snapshot of match id's current board.
func (r *Registry[E]) GetBoard(id uint32) (*board.Board, bool) {
	r.boardsMu.RLock()
	defer r.boardsMu.RUnlock()
	if int(id) >= len(r.boards) {
		return nil, false
	}
	return r.boards[id].Clone(), true
}

// GetInfo returns match id's current metadata.
func (r *Registry[E]) GetInfo(id uint32) (Info[E], bool) {
	r.infosMu.RLock()
	defer r.infosMu.RUnlock()
	if int(id) >= len(r.infos) {
		return Info[E]{}, false
	}
	return r.infos[id], true
}

// Release frees id's slot for reuse by a future Create. The caller must not
// use id again afterward.
func (r *Registry[E]) Release(id uint32) {
	r.freeMu.Lock()
	r.free = append(r.free, id)
	r.freeMu.Unlock()
}

// DoMove applies mv to match id's board, flips the side to move, and settles
// the match if the new position has no legal reply. If the match is still
// ongoing and spawnReply is set, a reply is computed by a fixed-depth search
// in the background and applied once ready.
func (r *Registry[E]) DoMove(ctx context.Context, id uint32, mv board.Move, spawnReply bool) {
	r.boardsMu.Lock()
	r.boards[id].DoMove(mv)
	r.boardsMu.Unlock()

	r.infosMu.Lock()
	info := r.infos[id]
	info.Turn = info.Turn.Opponent()
	r.infos[id] = info
	r.infosMu.Unlock()

	logw.Debugf(ctx, "match %v: applied %v", id, mv)

	if !r.settleIfOver(ctx, id) && spawnReply {
		r.spawnReply(ctx, id)
	}
}

// settleIfOver marks the match decided if the side to move has no legal
// moves, and reports whether it did.
func (r *Registry[E]) settleIfOver(ctx context.Context, id uint32) bool {
	r.infosMu.RLock()
	turn := r.infos[id].Turn
	r.infosMu.RUnlock()

	r.boardsMu.RLock()
	b := r.boards[id]
	moves := b.EnumerateAllMovesBy(turn)
	inCheck := b.King(turn).IsInCheck()
	r.boardsMu.RUnlock()

	if !moves.IsEmpty() {
		return false
	}

	var result Outcome
	switch {
	case !inCheck:
		result = Stalemate
	case turn == board.White:
		result = BlackWins
	default:
		result = WhiteWins
	}

	r.infosMu.Lock()
	info := r.infos[id]
	info.Result = lang.Some(result)
	r.infos[id] = info
	r.infosMu.Unlock()

	logw.Infof(ctx, "match %v: decided, %v", id, result)
	return true
}

// spawnReply runs a fixed-depth search for the current side to move in the
// background and applies the winning move through DoMove, re-checking that
// the match is still ongoing and still on that side's turn before touching
// any shared state.
func (r *Registry[E]) spawnReply(ctx context.Context, id uint32) {
	r.infosMu.RLock()
	turn := r.infos[id].Turn
	r.infosMu.RUnlock()

	r.boardsMu.RLock()
	snapshot := r.boards[id].Clone()
	r.boardsMu.RUnlock()

	go func() {
		result := search.Search(ctx, snapshot, turn, r.opt)
		if len(result.PV) == 0 {
			return
		}
		reply := result.PV[0]

		r.infosMu.RLock()
		info := r.infos[id]
		r.infosMu.RUnlock()
		if _, decided := info.Result.V(); decided || info.Turn != turn {
			return
		}

		r.DoMove(ctx, id, reply, false)
		logw.Infof(ctx, "match %v: engine replied %v", id, reply)
	}()
}
