package board

import "fmt"

// PromotionType distinguishes a promoting push from a promoting capture, since
// do_move needs to know whether the destination was occupied without
// re-deriving it from the board.
type PromotionType uint8

const (
	PromotionRegular PromotionType = iota
	PromotionCapture
)

// Castle names a castling move's rook: its own start and destination squares.
type Castle struct {
	RookFrom Coord
	RookTo   Coord
}

// moveKind tags the payload carried by a Move.
type moveKind uint8

const (
	moveRegular moveKind = iota
	moveDoublePawnForward
	moveCapture
	movePromote
	moveEnPassant
	moveCastle
)

// Move is a single candidate move as produced by the generator and consumed by
// DoMove. It is a plain comparable value: cheap to copy, cheap to store in a
// bounded list.
type Move struct {
	Start, End Coord

	kind       moveKind
	promote    Piece
	promoteTy  PromotionType
	epCaptured Coord
	castle     Castle
}

// regularMove returns a non-capturing, non-special move.
func regularMove(start, end Coord) Move {
	return Move{Start: start, End: end, kind: moveRegular}
}

// doublePawnForwardMove returns a two-square pawn push, which sets the
// en-passant target when applied.
func doublePawnForwardMove(start, end Coord) Move {
	return Move{Start: start, End: end, kind: moveDoublePawnForward}
}

// captureMove returns a move onto an occupied enemy square.
func captureMove(start, end Coord) Move {
	return Move{Start: start, End: end, kind: moveCapture}
}

// promoteMove returns a pawn promotion, capturing or not depending on ty.
func promoteMove(start, end Coord, piece Piece, ty PromotionType) Move {
	return Move{Start: start, End: end, kind: movePromote, promote: piece, promoteTy: ty}
}

// enPassantMove returns an en-passant capture; captured names the pawn's own
// square, which differs from End.
func enPassantMove(start, end, captured Coord) Move {
	return Move{Start: start, End: end, kind: moveEnPassant, epCaptured: captured}
}

// castleMove returns a castling move; c names the rook's own start/destination.
func castleMove(start, end Coord, c Castle) Move {
	return Move{Start: start, End: end, kind: moveCastle, castle: c}
}

// IsCapture reports whether applying the move removes an enemy piece from the
// board (a plain capture, a capturing promotion, or an en-passant capture).
func (m Move) IsCapture() bool {
	return m.kind == moveCapture || m.kind == moveEnPassant || (m.kind == movePromote && m.promoteTy == PromotionCapture)
}

// Promotion returns the piece a pawn promotes to and true, if m is a promotion.
func (m Move) Promotion() (Piece, bool) {
	return m.promote, m.kind == movePromote
}

// EnPassantCaptureSquare returns the captured pawn's square and true, if m is an
// en-passant capture.
func (m Move) EnPassantCaptureSquare() (Coord, bool) {
	return m.epCaptured, m.kind == moveEnPassant
}

// CastleRook returns the rook's own start/destination and true, if m is a
// castling move.
func (m Move) CastleRook() (Castle, bool) {
	return m.castle, m.kind == moveCastle
}

// IsDoublePawnForward reports whether m is a two-square pawn push.
func (m Move) IsDoublePawnForward() bool {
	return m.kind == moveDoublePawnForward
}

func (m Move) String() string {
	if piece, ok := m.Promotion(); ok {
		return fmt.Sprintf("%v%v=%v", m.Start, m.End, piece)
	}
	return fmt.Sprintf("%v%v", m.Start, m.End)
}
