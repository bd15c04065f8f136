// Package eval contains static position evaluation and move-ordering scores.
package eval

import "github.com/corvidchess/scha/pkg/board"

// Canonical piece values in centi-pawns, White's point of view.
const (
	queenValue  int32 = 950
	rookValue   int32 = 563
	bishopValue int32 = 333
	knightValue int32 = 305
	pawnValue   int32 = 100
)

// Threat bounty per occupant kind, awarded to the attacker's side for every
// piece (or empty square) a piece of that side attacks.
const (
	queenThreatened  int32 = 126
	rookThreatened   int32 = 96
	bishopThreatened int32 = 84
	knightThreatened int32 = 80
	pawnThreatened   int32 = 71
	emptyThreatened  int32 = 54
)

// centralityAward is indexed by file (0 = a, 7 = h) and applied to every
// occupied square on that file, signed by the occupant's color like the other
// terms.
var centralityAward = [8]int32{-100, 0, 200, 300, 300, 200, 0, -100}

// Border penalties, applied against the occupying side when the piece sits on
// the a or h file.
const (
	borderQueenPenalty  int32 = 600
	borderRookPenalty   int32 = 400
	borderBishopPenalty int32 = 600
	borderKnightPenalty int32 = 1000
	borderPawnPenalty   int32 = 0
)

func pieceValue(p board.Piece) int32 {
	switch p {
	case board.Queen:
		return queenValue
	case board.Rook:
		return rookValue
	case board.Bishop:
		return bishopValue
	case board.Knight:
		return knightValue
	default: // board.Pawn
		return pawnValue
	}
}

func borderPenalty(p board.Piece) int32 {
	switch p {
	case board.Queen:
		return borderQueenPenalty
	case board.Rook:
		return borderRookPenalty
	case board.Bishop:
		return borderBishopPenalty
	case board.Knight:
		return borderKnightPenalty
	default: // board.Pawn
		return borderPawnPenalty
	}
}

func threatBounty(f board.Field) int32 {
	if _, piece, ok := f.Piece(); ok {
		switch piece {
		case board.Queen:
			return queenThreatened
		case board.Rook:
			return rookThreatened
		case board.Bishop:
			return bishopThreatened
		case board.Knight:
			return knightThreatened
		default: // board.Pawn
			return pawnThreatened
		}
	}
	if f.IsEmpty() {
		return emptyThreatened
	}
	return 0
}

func sign(color board.Color) int32 {
	if color == board.White {
		return 1
	}
	return -1
}

// Static evaluates b from White's point of view: positive favors White.
func Static(b *board.Board) board.Score {
	var total int32
	for file := int8(0); file < 8; file++ {
		onBorder := file == 0 || file == 7
		for rank := int8(0); rank < 8; rank++ {
			sq := board.FromFileRank(file, rank)
			field := b.Get(sq.AsUnsafe())

			if color, piece, ok := field.Piece(); ok {
				total += sign(color) * pieceValue(piece)
				total += sign(color) * centralityAward[file]
				if onBorder {
					total -= sign(color) * borderPenalty(piece)
				}
			} else if color, ok := field.IsKing(); ok {
				total += sign(color) * centralityAward[file]
			}

			for _, attacker := range b.ThreatsAt(sq) {
				attackerField := b.Get(attacker.AsUnsafe())
				if color, _, ok := attackerField.Piece(); ok {
					total += sign(color) * threatBounty(field)
				} else if kc, ok := attackerField.IsKing(); ok {
					total += sign(kc) * threatBounty(field)
				}
			}
		}
	}
	return board.Value(total)
}
