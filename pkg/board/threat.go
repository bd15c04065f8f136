package board

// ThreatMask records, for every square, the set of squares holding pieces that
// currently attack it (ignoring king-safety/pin rules — that's the legality
// filter's job, not the mask's). For sliders, each ray is recorded up to and
// including its first occupied square: a piece standing behind another does not
// attack through it. Maintained incrementally by the Board as moves are applied; never mutated
// directly by the move generator.
type ThreatMask struct {
	threats [120]boundedList[Coord]
}

// Get returns the (read-only) attacker squares recorded for sq.
func (m *ThreatMask) Get(sq Coord) []Coord {
	return m.threats[sq.Raw()].slice()
}

// ThreatsAt returns the squares currently holding a piece that attacks sq,
// regardless of color. Used by static evaluation's threat bounty term.
func (b *Board) ThreatsAt(sq Coord) []Coord {
	return b.threats.Get(sq)
}

func (m *ThreatMask) append(sq, attacker Coord) {
	m.threats[sq.Raw()].append(attacker)
}

func (m *ThreatMask) remove(sq, attacker Coord) {
	m.threats[sq.Raw()].swapRemove(attacker)
}

// IsThreatenedBy reports whether any piece of color has sq in its threat set,
// i.e. whether color currently attacks (or would capture onto) sq.
func (b *Board) IsThreatenedBy(sq Coord, color Color) bool {
	for _, attacker := range b.threats.Get(sq) {
		if b.Get(attacker.AsUnsafe()).IsColorPieceIncludeKing(color) {
			return true
		}
	}
	return false
}

// directionalRepeat walks the ray from start in direction (dx,dy), invoking f on
// each playable square reached, stopping after (and including) the first
// non-empty square.
func (b *Board) directionalRepeat(start Coord, dx, dy int8, f func(Coord)) {
	cur := start
	for {
		next := cur.Rel(dx, dy)
		safe, field, ok := b.GetIfSafe(next)
		if !ok {
			return
		}
		f(safe)
		if !field.IsEmpty() {
			return
		}
		cur = safe
	}
}

// rayDirection returns the unit step from 'from' continuing away from 'towards',
// i.e. the direction you'd keep walking along the line through towards and from,
// past from.
func rayDirection(from, towards Coord) (int8, int8) {
	ff, fr := from.FileRank()
	tf, tr := towards.FileRank()
	return sign(ff - tf), sign(fr - tr)
}

func sign(v int8) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// modifyBarrier re-derives the attacker set along every slider ray passing
// through coord, for each slider currently recorded as attacking coord. f is
// invoked once per (square beyond coord, slider) pair on each such ray, up to and
// including the next barrier.
func (b *Board) modifyBarrier(coord Coord, f func(target, slider Coord)) {
	for _, slider := range append([]Coord(nil), b.threats.Get(coord)...) {
		_, piece, ok := b.Get(slider.AsUnsafe()).Piece()
		if !ok {
			continue
		}
		switch piece {
		case Queen, Rook, Bishop:
			dx, dy := rayDirection(coord, slider)
			if piece == Rook && dx != 0 && dy != 0 {
				continue // not on a rook-compatible ray
			}
			if piece == Bishop && (dx == 0 || dy == 0) {
				continue // not on a bishop-compatible ray
			}
			b.directionalRepeat(coord, dx, dy, func(target Coord) {
				f(target, slider)
			})
		}
	}
}

// addBarrier accounts for a piece newly placed on coord: every slider that used
// to see past coord now stops at it.
func (b *Board) addBarrier(coord Coord) {
	b.modifyBarrier(coord, func(target, slider Coord) {
		b.threats.remove(target, slider)
	})
}

// removeBarrier accounts for a piece about to leave coord: every slider that
// stopped at coord now sees further, up to the next barrier.
func (b *Board) removeBarrier(coord Coord) {
	b.modifyBarrier(coord, func(target, slider Coord) {
		b.threats.append(target, slider)
	})
}

// causingThreats enumerates the squares the piece on coord attacks, regardless of
// check rules. Slider rays include the off-board square that ends them, so a
// queen can yield up to 35 entries; the initial capacity of 27 covers its
// playable squares and append grows past it when needed.
func (b *Board) causingThreats(coord Coord) []UnsafeCoord {
	out := make([]UnsafeCoord, 0, 27)
	field := b.Get(coord.AsUnsafe())

	if color, ok := field.IsKing(); ok {
		_ = color
		for _, d := range []struct{ dx, dy int8 }{
			{1, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 0}, {-1, 0}, {0, -1}, {0, 1},
		} {
			out = append(out, coord.Rel(d.dx, d.dy))
		}
		return out
	}

	color, piece, ok := field.Piece()
	if !ok {
		return out
	}
	switch piece {
	case Pawn:
		delta := int8(1)
		if color == Black {
			delta = -1
		}
		out = append(out, coord.Rel(-1, delta), coord.Rel(1, delta))
	case Knight:
		for _, d := range [][2]int8{{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-2, 1}, {-2, -1}, {-1, 2}, {-1, -2}} {
			out = append(out, coord.Rel(d[0], d[1]))
		}
	case Bishop:
		out = b.causingDirectional(coord, out, [][2]int8{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}})
	case Rook:
		out = b.causingDirectional(coord, out, [][2]int8{{1, 0}, {-1, 0}, {0, -1}, {0, 1}})
	case Queen:
		out = b.causingDirectional(coord, out, [][2]int8{{1, 0}, {-1, 0}, {0, -1}, {0, 1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}})
	}
	return out
}

func (b *Board) causingDirectional(coord Coord, out []UnsafeCoord, dirs [][2]int8) []UnsafeCoord {
	for _, d := range dirs {
		cur := coord
		for {
			next := cur.Rel(d[0], d[1])
			out = append(out, next)
			safe, field, ok := b.GetIfSafe(next)
			if !ok || !field.IsEmpty() {
				break
			}
			cur = safe
		}
	}
	return out
}

// addPiece records the piece on coord as an attacker of every square it attacks.
func (b *Board) addPiece(coord Coord) {
	for _, target := range b.causingThreats(coord) {
		if safe, _, ok := b.GetIfSafe(target); ok {
			b.threats.append(safe, coord)
		}
	}
}

// removePiece un-records the piece on coord as an attacker of every square it
// attacked.
func (b *Board) removePiece(coord Coord) {
	for _, target := range b.causingThreats(coord) {
		if safe, _, ok := b.GetIfSafe(target); ok {
			b.threats.remove(safe, coord)
		}
	}
}

// initThreatMask populates the mask for the starting position: every piece on
// ranks 1, 2, 7, 8 attacks outward; ranks 3-6 start empty and contribute nothing.
func (b *Board) initThreatMask() {
	for _, rank := range [4]int8{0, 1, 6, 7} {
		for file := int8(0); file < 8; file++ {
			b.addPiece(FromFileRank(file, rank))
		}
	}
}
