package board

// removeThreatMaskPieceAt un-records the piece on coord as an attacker of every
// square it attacked, without touching barriers (the caller handles those
// separately via removeBarrier/addBarrier).
func (b *Board) removeThreatMaskPieceAt(coord Coord) {
	for _, target := range b.causingThreats(coord) {
		if safe, _, ok := b.GetIfSafe(target); ok {
			b.threats.remove(safe, coord)
		}
	}
}

// removeThreatMaskPieceMoves retracts the pre-move threat contributions of
// every piece the move removes from the board: the mover itself, and whatever
// it captures (including the displaced pawn on an en-passant capture).
func (b *Board) removeThreatMaskPieceMoves(mv Move) {
	b.removeThreatMaskPieceAt(mv.Start)
	if captured, ok := mv.EnPassantCaptureSquare(); ok {
		b.removeThreatMaskPieceAt(captured)
		return
	}
	if mv.IsCapture() {
		b.removeThreatMaskPieceAt(mv.End)
	}
	if rook, ok := mv.CastleRook(); ok {
		b.removeThreatMaskPieceAt(rook.RookFrom)
	}
}

// updateThreatMaskWith accounts for the piece's new position after the field
// array has been updated: the square it left is a barrier no more, the square
// it landed on is a new barrier, and the mover now attacks outward from there.
func (b *Board) updateThreatMaskWith(mv Move) {
	b.removeBarrier(mv.Start)
	if captured, ok := mv.EnPassantCaptureSquare(); ok {
		b.removeBarrier(captured)
	}
	b.addBarrier(mv.End)
	b.addPiece(mv.End)

	if rook, ok := mv.CastleRook(); ok {
		b.removeBarrier(rook.RookFrom)
		b.addBarrier(rook.RookTo)
		b.addPiece(rook.RookTo)
	}
}

// DoMove applies mv to the board: it must be one of the moves EnumerateMoves or
// EnumerateAllMovesBy returned for the piece on mv.Start. The board's threat
// mask and pin index are kept consistent as part of the same call; callers
// never need to call anything else afterward.
func (b *Board) DoMove(mv Move) {
	b.removeThreatMaskPieceMoves(mv)

	switch field := b.Get(mv.Start.AsUnsafe()); {
	case field == WhiteKing:
		b.whiteKing.Coord = mv.End
		b.whiteKing.CastlingToLeft = false
		b.whiteKing.CastlingToRight = false
	case field == BlackKing:
		b.blackKing.Coord = mv.End
		b.blackKing.CastlingToLeft = false
		b.blackKing.CastlingToRight = false
	default:
		if color, piece, ok := field.Piece(); ok && piece == Rook {
			b.clearCastlingRightForRookMove(color, mv.Start)
		}
	}

	b.enPassant = optionalCoord{}

	switch rook, isCastle := mv.CastleRook(); {
	case isCastle:
		b.MovePiece(mv.Start, mv.End, Empty)
		b.MovePiece(rook.RookFrom, rook.RookTo, Empty)
	default:
		b.applyNonCastleMove(mv)
	}

	b.updateThreatMaskWith(mv)
	b.updatePotentialChecks()
}

func (b *Board) applyNonCastleMove(mv Move) {
	if mv.IsDoublePawnForward() {
		b.MovePiece(mv.Start, mv.End, Empty)
		b.enPassant = optionalCoord{sq: mv.End, ok: true}
		return
	}

	if captured, ok := mv.EnPassantCaptureSquare(); ok {
		b.MovePiece(mv.Start, mv.End, Empty)
		b.PopField(captured, Empty)
		return
	}

	if piece, ok := mv.Promotion(); ok {
		moved := b.PopField(mv.Start, Empty)
		var replacement Field
		switch color, _, pok := moved.Piece(); {
		case pok && color == White:
			replacement = WhitePiece(piece)
		case pok && color == Black:
			replacement = BlackPiece(piece)
		default:
			replacement = moved
		}
		b.PopField(mv.End, replacement)
		return
	}

	// Regular move or capture: both overwrite `to` with the mover and clear `from`.
	b.MovePiece(mv.Start, mv.End, Empty)
}

// clearCastlingRightForRookMove drops a castling right when a rook moves: the
// queenside right if the rook left the queenside home corner, the kingside
// right if it left the kingside home corner. A rook moving from any other
// square leaves both rights untouched.
func (b *Board) clearCastlingRightForRookMove(color Color, from Coord) {
	king := b.King(color)
	queenside := queensideRookHome(color)
	kingside := queenside + 7 // h-file, same rank
	switch from {
	case queenside:
		king.CastlingToLeft = false
	case kingside:
		king.CastlingToRight = false
	}
}

func queensideRookHome(color Color) Coord {
	if color == White {
		return FromFileRank(0, 0)
	}
	return FromFileRank(0, 7)
}
