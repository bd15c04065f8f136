package board

// updatePotentialChecks rebuilds both kings' pin indices from scratch by
// scanning the eight king-centered rays. Called once per move after the field
// array and threat mask have settled, per spec.md 4.3.
func (b *Board) updatePotentialChecks() {
	for _, color := range [2]Color{White, Black} {
		king := b.King(color)
		king.clearCheckMap()
		b.scanPotentialChecks(king, color)
	}
	b.updateAggressors(White)
	b.updateAggressors(Black)
}

// updateAggressors recomputes a king's aggressor set from the threat mask: the
// set of enemy squares that attack the king's square.
func (b *Board) updateAggressors(color Color) {
	king := b.King(color)
	king.aggressors.clear()
	for _, attacker := range b.threats.Get(king.Coord) {
		if b.Get(attacker.AsUnsafe()).IsColorPieceIncludeKing(color.Opponent()) {
			king.aggressors.append(attacker)
		}
	}
}

// scanPotentialChecks walks each of the 8 rays from the king's square. The first
// own-colored piece found on a ray is a pin candidate; if the next piece beyond
// it is an enemy slider whose geometry matches the ray, the candidate is
// recorded as pinned along that ray. Any other piece (friend or foe) terminates
// the ray without recording anything.
func (b *Board) scanPotentialChecks(king *King, color Color) {
	for _, dir := range allDirections {
		dx, dy := dir.XY()

		var candidate Coord
		haveCandidate := false

		cur := king.Coord
		for {
			next := cur.Rel(dx, dy)
			safe, field, ok := b.GetIfSafe(next)
			if !ok {
				break
			}
			cur = safe

			if field.IsEmpty() {
				continue
			}

			if !haveCandidate {
				if field.IsColorPiece(color) {
					candidate = safe
					haveCandidate = true
					continue
				}
				// Any other occupant (enemy piece, either king) on an
				// unobstructed ray ends it: no candidate here.
				break
			}

			// We already have a friendly candidate; this is the next piece
			// along the ray.
			if enemyColor, piece, ok := field.Piece(); ok && enemyColor == color.Opponent() {
				if piece == Queen || (dir.IsDiagonal() && piece == Bishop) || (!dir.IsDiagonal() && piece == Rook) {
					king.setPotentialCheck(candidate, safe, dir)
				}
			}
			break
		}
	}
}
