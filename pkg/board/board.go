// Package board implements the padded 10x12 chess board: coordinates, the
// incremental threat mask, the per-king pin index, move generation, and move
// application. It is the core the rest of the engine is built on.
package board

import "fmt"

// optionalCoord models spec.md's Option<Coord> without resorting to a pointer:
// zero value is "none" since Coord's zero value (padded index 0) is always a
// sentinel square and never a real one.
type optionalCoord struct {
	sq Coord
	ok bool
}

// Board aggregates the field array, both kings (with their pin indices and
// castling rights), the threat mask, and the en-passant target square. A Board
// is exclusively owned by its holder: the search clones it per node, and the
// match registry holds one board per slot under its own lock.
type Board struct {
	fields [120]Field

	whiteKing King
	blackKing King

	threats ThreatMask

	enPassant optionalCoord
}

// New returns the standard starting position.
func New() *Board {
	b := &Board{}
	for i := range b.fields {
		b.fields[i] = Invincible
	}

	b.whiteKing = newKing(White)
	b.blackKing = newKing(Black)
	b.fields[b.whiteKing.Coord.Raw()] = WhiteKing
	b.fields[b.blackKing.Coord.Raw()] = BlackKing

	backRank := [8]Piece{Rook, Knight, Bishop, Queen, 0 /* king square, set above */, Bishop, Knight, Rook}
	for file := int8(0); file < 8; file++ {
		if file != 4 { // king square already set
			b.fields[FromFileRank(file, 0).Raw()] = WhitePiece(backRank[file])
			b.fields[FromFileRank(file, 7).Raw()] = BlackPiece(backRank[file])
		}
		b.fields[FromFileRank(file, 1).Raw()] = WhitePiece(Pawn)
		b.fields[FromFileRank(file, 6).Raw()] = BlackPiece(Pawn)
		for rank := int8(2); rank < 6; rank++ {
			b.fields[FromFileRank(file, rank).Raw()] = Empty
		}
	}

	b.initThreatMask()
	b.updatePotentialChecks()
	return b
}

// Clone returns an independent deep copy, cheap since Board holds no pointers or
// slices of its own (it's pure arrays/values). Used by the search to explore a
// move without disturbing the caller's board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Get returns the field at a possibly-off-board coordinate.
func (b *Board) Get(raw UnsafeCoord) Field {
	return b.fields[raw.Raw()]
}

// GetIfSafe returns the checked coordinate and field at raw, or ok=false if raw
// is a sentinel (off-board) square.
func (b *Board) GetIfSafe(raw UnsafeCoord) (Coord, Field, bool) {
	f := b.fields[raw.Raw()]
	if f.IsInvincible() {
		return 0, Field{}, false
	}
	return Coord(raw), f, true
}

// MovePiece overwrites `to` with the field at `from`, then replaces `from` with
// fill. Returns the field that had been at `to`.
func (b *Board) MovePiece(from, to Coord, fill Field) Field {
	old := b.fields[to.Raw()]
	b.fields[to.Raw()] = b.fields[from.Raw()]
	b.fields[from.Raw()] = fill
	return old
}

// PopField swaps the field at coord with value, returning the previous field.
func (b *Board) PopField(coord Coord, value Field) Field {
	old := b.fields[coord.Raw()]
	b.fields[coord.Raw()] = value
	return old
}

// King returns the king state for color.
func (b *Board) King(color Color) *King {
	if color == White {
		return &b.whiteKing
	}
	return &b.blackKing
}

// IsInCheck reports whether color's king is currently attacked.
func (b *Board) IsInCheck(color Color) bool {
	return b.IsThreatenedBy(b.King(color).Coord, color.Opponent())
}

// EnPassantTarget returns the square set by the last double pawn push, if any.
func (b *Board) EnPassantTarget() (Coord, bool) {
	return b.enPassant.sq, b.enPassant.ok
}

func (b *Board) String() string {
	var out [8 * 9]byte
	i := 0
	for rank := int8(7); rank >= 0; rank-- {
		for file := int8(0); file < 8; file++ {
			out[i] = b.Get(FromFileRank(file, rank).AsUnsafe()).String()[0]
			i++
		}
		if rank != 0 {
			out[i] = '/'
			i++
		}
	}
	return fmt.Sprintf("board{%s}", string(out[:i]))
}
