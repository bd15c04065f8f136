package eval

import "github.com/corvidchess/scha/pkg/board"

const castlingMoveScore int32 = 900

// pieceValueAt returns the material value of whatever piece occupies sq, or 0
// for an empty/invincible/king square (a king is never captured).
func pieceValueAt(b *board.Board, sq board.Coord) int32 {
	if _, piece, ok := b.Get(sq.AsUnsafe()).Piece(); ok {
		return pieceValue(piece)
	}
	return 0
}

// Order scores a candidate move for search ordering only: higher sorts first.
// It is not a position score and is never added to a board.Score.
func Order(b *board.Board, mv board.Move) int32 {
	mover := pieceValueAt(b, mv.Start)

	if piece, ok := mv.Promotion(); ok {
		gain := pieceValue(piece)
		if mv.IsCapture() {
			gain += pieceValueAt(b, mv.End)
		}
		return gain
	}
	if _, ok := mv.CastleRook(); ok {
		return castlingMoveScore
	}
	if _, ok := mv.EnPassantCaptureSquare(); ok {
		return pawnValue
	}
	if mv.IsCapture() {
		return pieceValueAt(b, mv.End) - mover/4
	}
	return 0
}
