package board

var kingSteps = [8][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
var knightSteps = [8][2]int8{{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-2, 1}, {-2, -1}, {-1, 2}, {-1, -2}}
var rookDirs = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int8{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
var queenDirs = [8][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}

// isBadKingMove reports whether moving the king to target would still (or newly)
// leave it on a slider's line of attack: a king can step off of a checking
// piece's square but must not step along the same ray the attack comes from.
func (b *Board) isBadKingMove(target Coord, color Color) bool {
	king := b.King(color)
	for _, threat := range king.Aggressors() {
		if target == threat {
			continue
		}
		_, piece, ok := b.Get(threat.AsUnsafe()).Piece()
		if !ok {
			continue
		}
		tx, ty := target.FileRank()
		hx, hy := threat.FileRank()
		diag := abs8(tx-hx) == abs8(ty-hy)
		hor := tx == hx || ty == hy
		switch piece {
		case Bishop:
			if diag {
				return true
			}
		case Rook:
			if hor {
				return true
			}
		case Queen:
			if diag || hor {
				return true
			}
		}
	}
	return false
}

func (b *Board) listKingMoves(coord Coord, color Color, isInCheck bool, into *moveList) {
	for _, d := range kingSteps {
		safe, field, ok := b.GetIfSafe(coord.Rel(d[0], d[1]))
		if !ok || b.IsThreatenedBy(safe, color.Opponent()) {
			continue
		}
		switch {
		case field.IsEmpty():
			if !isInCheck || !b.isBadKingMove(safe, color) {
				into.append(regularMove(coord, safe))
			}
		case field.IsColorPiece(color.Opponent()):
			if !isInCheck || !b.isBadKingMove(safe, color) {
				into.append(captureMove(coord, safe))
			}
		}
	}

	if isInCheck {
		return
	}

	king := b.King(color)
	if king.CastlingToRight {
		b.tryCastle(coord, color, 1, 2, 3, [1]int8{0}, into)
	}
	if king.CastlingToLeft {
		b.tryCastle(coord, color, -1, -2, -4, [1]int8{-3}, into)
	}
}

// tryCastle attempts one castling direction. rookTargetOffset/kingTargetOffset
// name the squares (relative to the king) that must be empty and unattacked;
// rookOffset names the rook's own square. extraEmpty names squares that must be
// empty (queenside's b-file knight square) without needing to be unattacked,
// since the king never crosses them.
func (b *Board) tryCastle(coord Coord, color Color, rookTargetOffset, kingTargetOffset, rookOffset int8, extraEmpty [1]int8, into *moveList) {
	rookTarget, rtField, ok1 := b.GetIfSafe(coord.Rel(rookTargetOffset, 0))
	kingTarget, ktField, ok2 := b.GetIfSafe(coord.Rel(kingTargetOffset, 0))
	if !ok1 || !ok2 || !rtField.IsEmpty() || !ktField.IsEmpty() {
		return
	}
	if extraEmpty[0] != 0 {
		_, f, ok := b.GetIfSafe(coord.Rel(extraEmpty[0], 0))
		if !ok || !f.IsEmpty() {
			return
		}
	}
	rookPos, rpField, ok3 := b.GetIfSafe(coord.Rel(rookOffset, 0))
	if !ok3 || !rpField.IsColorPiece(color) {
		return
	}
	if _, piece, pok := rpField.Piece(); !pok || piece != Rook {
		return
	}
	if b.IsThreatenedBy(rookTarget, color.Opponent()) || b.IsThreatenedBy(kingTarget, color.Opponent()) {
		return
	}
	into.append(castleMove(coord, kingTarget, Castle{RookFrom: rookPos, RookTo: rookTarget}))
}

func (b *Board) listPawnMoves(coord Coord, color Color, into *moveList) {
	delta := int8(1)
	if color == Black {
		delta = -1
	}

	appendMaybePromote := func(start, end Coord, ty PromotionType) {
		if end.Endline(color) {
			for _, p := range PromotionKinds {
				into.append(promoteMove(start, end, p, ty))
			}
			return
		}
		if ty == PromotionCapture {
			into.append(captureMove(start, end))
		} else {
			into.append(regularMove(start, end))
		}
	}

	if safe1, field1, ok := b.GetIfSafe(coord.Rel(0, delta)); ok && field1.IsEmpty() {
		appendMaybePromote(coord, safe1, PromotionRegular)
		if coord.Baseline(color) {
			if safe2, field2, ok2 := b.GetIfSafe(coord.Rel(0, delta*2)); ok2 && field2.IsEmpty() {
				into.append(doublePawnForwardMove(coord, safe2))
			}
		}
	}

	for _, dx := range [2]int8{-1, 1} {
		if safe, field, ok := b.GetIfSafe(coord.Rel(dx, delta)); ok && field.IsColorPiece(color.Opponent()) {
			appendMaybePromote(coord, safe, PromotionCapture)
		}
	}

	if target, ok := b.EnPassantTarget(); ok {
		if jump, _, jok := b.GetIfSafe(target.Rel(0, delta)); jok {
			if target.AsUnsafe() == coord.Rel(1, 0) || target.AsUnsafe() == coord.Rel(-1, 0) {
				into.append(enPassantMove(coord, jump, target))
			}
		}
	}
}

func (b *Board) listDirectionalMoves(coord Coord, color Color, dirs [][2]int8, into *moveList) {
	for _, d := range dirs {
		cur := coord
		for {
			safe, field, ok := b.GetIfSafe(cur.Rel(d[0], d[1]))
			if !ok {
				break
			}
			if field.IsEmpty() {
				into.append(regularMove(coord, safe))
			} else if field.IsColorPiece(color.Opponent()) {
				into.append(captureMove(coord, safe))
				break
			} else {
				break
			}
			cur = safe
		}
	}
}

func (b *Board) listRookMoves(coord Coord, color Color, into *moveList) {
	b.listDirectionalMoves(coord, color, rookDirs[:], into)
}

func (b *Board) listBishopMoves(coord Coord, color Color, into *moveList) {
	b.listDirectionalMoves(coord, color, bishopDirs[:], into)
}

func (b *Board) listQueenMoves(coord Coord, color Color, into *moveList) {
	b.listDirectionalMoves(coord, color, queenDirs[:], into)
}

func (b *Board) listKnightMoves(coord Coord, color Color, into *moveList) {
	for _, d := range knightSteps {
		if safe, field, ok := b.GetIfSafe(coord.Rel(d[0], d[1])); ok {
			if field.IsEmpty() {
				into.append(regularMove(coord, safe))
			} else if field.IsColorPiece(color.Opponent()) {
				into.append(captureMove(coord, safe))
			}
		}
	}
}

func (b *Board) listPieceMoves(coord Coord, piece Piece, color Color, into *moveList) {
	switch piece {
	case Pawn:
		b.listPawnMoves(coord, color, into)
	case Rook:
		b.listRookMoves(coord, color, into)
	case Bishop:
		b.listBishopMoves(coord, color, into)
	case Knight:
		b.listKnightMoves(coord, color, into)
	case Queen:
		b.listQueenMoves(coord, color, into)
	}
}

func (b *Board) addMoves(coord Coord, into *moveList) {
	field := b.Get(coord.AsUnsafe())
	if color, ok := field.IsKing(); ok {
		b.listKingMoves(coord, color, false, into)
		return
	}
	if color, piece, ok := field.Piece(); ok {
		b.listPieceMoves(coord, piece, color, into)
	}
}

func (b *Board) addMovesCheck(coord Coord, into *moveList) {
	field := b.Get(coord.AsUnsafe())
	if color, ok := field.IsKing(); ok {
		b.listKingMoves(coord, color, true, into)
		return
	}
	if color, piece, ok := field.Piece(); ok {
		n := into.size
		b.listPieceMoves(coord, piece, color, into)
		b.filterChecks(color, n, into)
	}
}

// isPotentialCheck reports whether mv would move a pinned piece off the line
// between it and its own king, exposing the king to the pinning slider.
func (b *Board) isPotentialCheck(king *King, mv Move) bool {
	attacker, dir, ok := king.PotentialCheck(mv.Start)
	if !ok {
		return false
	}
	if mv.End == attacker {
		return false
	}
	_, piece, isPiece := b.Get(mv.Start.AsUnsafe()).Piece()
	if !isPiece {
		return false
	}
	if piece == Knight {
		return true
	}

	sx, sy := mv.Start.FileRank()
	ex, ey := mv.End.FileRank()
	switch {
	case sx == ex:
		return dir != Up && dir != Down
	case sy == ey:
		return dir != Left && dir != Right
	case (sx > ex) == (sy > ey):
		return dir != UpRight && dir != DownLeft
	default:
		return dir != UpLeft && dir != DownRight
	}
}

// isCheckSavingPiece reports whether mv captures threat, or interposes on the
// line between threat and king, given that threat's piece moves along piece's
// geometry.
func (b *Board) isCheckSavingPiece(threat Coord, piece Piece, king *King, mv Move) bool {
	if mv.End == threat {
		return true
	}
	if piece == Pawn || piece == Knight {
		return false
	}

	onLine := false
	for _, t := range b.threats.Get(mv.End) {
		if t == threat {
			onLine = true
			break
		}
	}
	if !onLine {
		return false
	}

	etok := king.Coord.Raw() - mv.End.Raw()
	ttoe := mv.End.Raw() - threat.Raw()
	if (etok > 0) != (ttoe > 0) {
		return false
	}

	a, c := abs8(etok), abs8(ttoe)
	colinear := func(n int8) bool { return a%n == 0 && c%n == 0 }
	sameRank := king.Coord.Raw()/10 == mv.End.Raw()/10 && mv.End.Raw()/10 == threat.Raw()/10

	return etok == ttoe || colinear(9) || colinear(10) || colinear(11) || sameRank
}

// isCheckSaving reports whether mv addresses the single checking piece
// currently attacking color's king (by capturing it or interposing).
func (b *Board) isCheckSaving(color Color, mv Move) bool {
	king := b.King(color)
	aggressors := king.Aggressors()
	if len(aggressors) != 1 {
		return false
	}
	threat := aggressors[0]
	_, piece, ok := b.Get(threat.AsUnsafe()).Piece()
	if !ok {
		return false
	}
	return b.isCheckSavingPiece(threat, piece, king, mv)
}

func (b *Board) filterChecks(color Color, start int, list *moveList) {
	list.filter(start, func(mv Move) bool { return b.isCheckSaving(color, mv) })
}

func (b *Board) filterPotentialChecks(king *King, start int, list *moveList) {
	list.filter(start, func(mv Move) bool { return !b.isPotentialCheck(king, mv) })
}

// EnumerateMoves returns every legal move for the piece (or king) on coord,
// which must hold a piece of color.
func (b *Board) EnumerateMoves(color Color, coord Coord) []Move {
	king := b.King(color)
	var list moveList
	if king.IsInCheck() {
		b.addMovesCheck(coord, &list)
	} else {
		b.addMoves(coord, &list)
	}
	b.filterPotentialChecks(king, 0, &list)
	return append([]Move(nil), list.slice()...)
}

// EnumerateAllMovesBy returns every legal move available to color across the
// whole board.
func (b *Board) EnumerateAllMovesBy(color Color) *LongMoveList {
	king := b.King(color)
	out := NewLongMoveList()

	for rank := int8(0); rank < 8; rank++ {
		for file := int8(0); file < 8; file++ {
			coord := FromFileRank(file, rank)
			if !b.Get(coord.AsUnsafe()).IsColorPieceIncludeKing(color) {
				continue
			}

			var list moveList
			if king.IsInCheck() {
				b.addMovesCheck(coord, &list)
			} else {
				b.addMoves(coord, &list)
			}
			b.filterPotentialChecks(king, 0, &list)

			for _, mv := range list.slice() {
				out.append(mv)
			}
		}
	}
	return out
}
