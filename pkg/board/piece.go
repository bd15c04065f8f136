package board

// Piece represents the kind of a non-king chess piece.
type Piece uint8

const (
	Queen Piece = iota
	Rook
	Bishop
	Knight
	Pawn
)

func (p Piece) String() string {
	switch p {
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	default:
		return "?"
	}
}

// PromotionKinds are the pieces a pawn may promote to. Pawn is included last for
// uniformity with the source the spec was distilled from, which always emits a
// Promote(Pawn, ..) candidate alongside the four canonical ones; callers that only
// want the canonical four can slice off the last element.
var PromotionKinds = [5]Piece{Queen, Rook, Knight, Bishop, Pawn}

// fieldKind distinguishes the cases a square can hold. Field wraps fieldKind
// together with the occupant's Piece kind, since only BlackPiece/WhitePiece carry
// one.
type fieldKind uint8

const (
	fieldEmpty fieldKind = iota
	fieldInvincible
	fieldBlackKing
	fieldWhiteKing
	fieldBlackPiece
	fieldWhitePiece
)

// Field is the content of one board square: empty, an off-board sentinel, a king
// of either color, or a colored Piece.
type Field struct {
	kind  fieldKind
	piece Piece
}

var (
	Empty      = Field{kind: fieldEmpty}
	Invincible = Field{kind: fieldInvincible}
	BlackKing  = Field{kind: fieldBlackKing}
	WhiteKing  = Field{kind: fieldWhiteKing}
)

// BlackPiece returns the field holding a black piece of the given kind.
func BlackPiece(p Piece) Field {
	return Field{kind: fieldBlackPiece, piece: p}
}

// WhitePiece returns the field holding a white piece of the given kind.
func WhitePiece(p Piece) Field {
	return Field{kind: fieldWhitePiece, piece: p}
}

// IsEmpty reports whether the field is the empty (playable, unoccupied) field.
func (f Field) IsEmpty() bool {
	return f.kind == fieldEmpty
}

// IsInvincible reports whether the field is the off-board sentinel.
func (f Field) IsInvincible() bool {
	return f.kind == fieldInvincible
}

// IsKing reports whether the field holds a king, and if so, which color.
func (f Field) IsKing() (Color, bool) {
	switch f.kind {
	case fieldWhiteKing:
		return White, true
	case fieldBlackKing:
		return Black, true
	default:
		return 0, false
	}
}

// Piece returns the occupant's piece kind and color, if the field holds a
// (non-king) piece.
func (f Field) Piece() (Color, Piece, bool) {
	switch f.kind {
	case fieldWhitePiece:
		return White, f.piece, true
	case fieldBlackPiece:
		return Black, f.piece, true
	default:
		return 0, 0, false
	}
}

// IsColorPiece reports whether the field holds a non-king piece of the given
// color.
func (f Field) IsColorPiece(color Color) bool {
	if color == White {
		return f.kind == fieldWhitePiece
	}
	return f.kind == fieldBlackPiece
}

// IsColorPieceIncludeKing reports whether the field holds any occupant (piece or
// king) of the given color.
func (f Field) IsColorPieceIncludeKing(color Color) bool {
	if color == White {
		return f.kind == fieldWhitePiece || f.kind == fieldWhiteKing
	}
	return f.kind == fieldBlackPiece || f.kind == fieldBlackKing
}

func (f Field) String() string {
	switch f.kind {
	case fieldEmpty:
		return "."
	case fieldInvincible:
		return "#"
	case fieldWhiteKing:
		return "K"
	case fieldBlackKing:
		return "k"
	case fieldWhitePiece:
		return f.piece.String()
	case fieldBlackPiece:
		switch f.piece {
		case Queen:
			return "q"
		case Rook:
			return "r"
		case Bishop:
			return "b"
		case Knight:
			return "n"
		case Pawn:
			return "p"
		}
	}
	return "?"
}
