package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sq parses algebraic notation into a Coord for test setup; it fails the test
// on a bad square since every call site embeds a literal.
func sq(t *testing.T, s string) Coord {
	t.Helper()
	c, err := ParseCoord(s)
	require.NoError(t, err)
	return c
}

// custom builds a board from scratch, placing only the given occupants and
// kings. It mirrors New()'s own construction (fields start Invincible, the
// playable 8x8 starts Empty, then the threat mask and pin index are built from
// the final position) but lets a test describe an arbitrary position instead
// of the standard starting one.
func custom(t *testing.T, whiteKing, blackKing string, placements map[string]Field) *Board {
	t.Helper()
	b := &Board{}
	for i := range b.fields {
		b.fields[i] = Invincible
	}
	for file := int8(0); file < 8; file++ {
		for rank := int8(0); rank < 8; rank++ {
			b.fields[FromFileRank(file, rank).Raw()] = Empty
		}
	}

	b.whiteKing = King{Coord: sq(t, whiteKing)}
	b.blackKing = King{Coord: sq(t, blackKing)}
	b.fields[b.whiteKing.Coord.Raw()] = WhiteKing
	b.fields[b.blackKing.Coord.Raw()] = BlackKing

	for s, f := range placements {
		b.fields[sq(t, s).Raw()] = f
	}

	for file := int8(0); file < 8; file++ {
		for rank := int8(0); rank < 8; rank++ {
			c := FromFileRank(file, rank)
			if !b.fields[c.Raw()].IsEmpty() {
				b.addPiece(c)
			}
		}
	}
	b.updatePotentialChecks()
	return b
}

func doMoveTo(t *testing.T, b *Board, color Color, from, to string) {
	t.Helper()
	start := sq(t, from)
	end := sq(t, to)
	for _, mv := range b.EnumerateMoves(color, start) {
		if mv.End == end {
			b.DoMove(mv)
			return
		}
	}
	t.Fatalf("no legal move %v-%v for %v", from, to, color)
}

// checkUniversalInvariants checks two per-do_move invariants: a threat mask
// consistent with an independent recomputation, and aggressors matching the
// mask at the king's own square. King count and the pin index are not checked.
func checkUniversalInvariants(t *testing.T, b *Board) {
	t.Helper()

	recomputed := &Board{fields: b.fields, whiteKing: b.whiteKing, blackKing: b.blackKing}
	for file := int8(0); file < 8; file++ {
		for rank := int8(0); rank < 8; rank++ {
			c := FromFileRank(file, rank)
			if !recomputed.fields[c.Raw()].IsEmpty() {
				recomputed.addPiece(c)
			}
		}
	}
	for file := int8(0); file < 8; file++ {
		for rank := int8(0); rank < 8; rank++ {
			c := FromFileRank(file, rank)
			assert.ElementsMatch(t, b.threats.Get(c), recomputed.threats.Get(c), "threat mask mismatch at %v", c)
		}
	}

	for _, color := range [2]Color{White, Black} {
		king := b.King(color)
		var fromMask []Coord
		for _, attacker := range b.threats.Get(king.Coord) {
			if b.Get(attacker.AsUnsafe()).IsColorPieceIncludeKing(color.Opponent()) {
				fromMask = append(fromMask, attacker)
			}
		}
		assert.ElementsMatch(t, fromMask, king.Aggressors())
	}
}

func TestStartingPositionHasTwentyMoves(t *testing.T) {
	b := New()
	moves := b.EnumerateAllMovesBy(White).Slice()
	assert.Len(t, moves, 20)

	var singles, doubles, knights int
	for _, mv := range moves {
		_, piece, ok := b.Get(mv.Start.AsUnsafe()).Piece()
		require.True(t, ok)
		switch piece {
		case Pawn:
			if mv.IsDoublePawnForward() {
				doubles++
			} else {
				singles++
			}
		case Knight:
			knights++
		}
	}
	assert.Equal(t, 8, singles)
	assert.Equal(t, 8, doubles)
	assert.Equal(t, 4, knights)
}

func TestFoolsMateEndsInCheckmate(t *testing.T) {
	b := New()
	doMoveTo(t, b, White, "f2", "f3")
	checkUniversalInvariants(t, b)
	doMoveTo(t, b, Black, "e7", "e5")
	checkUniversalInvariants(t, b)
	doMoveTo(t, b, White, "g2", "g4")
	checkUniversalInvariants(t, b)
	doMoveTo(t, b, Black, "d8", "h4")
	checkUniversalInvariants(t, b)

	assert.True(t, b.EnumerateAllMovesBy(White).IsEmpty())
	assert.True(t, b.King(White).IsInCheck())
}

func TestStalematePosition(t *testing.T) {
	b := custom(t, "a1", "a3", map[string]Field{
		"c2": BlackPiece(Queen),
	})
	assert.True(t, b.EnumerateAllMovesBy(White).IsEmpty())
	assert.False(t, b.King(White).IsInCheck())
}

func TestEnPassantCapture(t *testing.T) {
	b := New()
	doMoveTo(t, b, White, "e2", "e4")
	doMoveTo(t, b, Black, "a7", "a6")
	doMoveTo(t, b, White, "e4", "e5")
	doMoveTo(t, b, Black, "d7", "d5")

	target, ok := b.EnPassantTarget()
	require.True(t, ok)
	assert.Equal(t, sq(t, "d5"), target)

	moves := b.EnumerateMoves(White, sq(t, "e5"))
	var epMoves []Move
	for _, mv := range moves {
		if captured, ok := mv.EnPassantCaptureSquare(); ok {
			assert.Equal(t, sq(t, "d5"), captured)
			assert.Equal(t, sq(t, "d6"), mv.End)
			epMoves = append(epMoves, mv)
		}
	}
	assert.Len(t, epMoves, 1)

	b.DoMove(epMoves[0])
	checkUniversalInvariants(t, b)
	assert.True(t, b.Get(sq(t, "d5").AsUnsafe()).IsEmpty())
}

func TestCastlingAvailableWhenPathIsClearAndSafe(t *testing.T) {
	b := custom(t, "e1", "e8", map[string]Field{
		"h1": WhitePiece(Rook),
	})
	b.whiteKing.CastlingToRight = true

	var castles []Move
	for _, mv := range b.EnumerateMoves(White, sq(t, "e1")) {
		if _, ok := mv.CastleRook(); ok {
			castles = append(castles, mv)
		}
	}
	require.Len(t, castles, 1)
	rook, ok := castles[0].CastleRook()
	require.True(t, ok)
	assert.Equal(t, sq(t, "h1"), rook.RookFrom)
	assert.Equal(t, sq(t, "f1"), rook.RookTo)
	assert.Equal(t, sq(t, "g1"), castles[0].End)

	b.DoMove(castles[0])
	checkUniversalInvariants(t, b)
	assert.Equal(t, sq(t, "g1"), b.whiteKing.Coord)
	assert.False(t, b.whiteKing.CastlingToRight)
}

func TestCastlingBlockedWhenTraversedSquareIsAttacked(t *testing.T) {
	b := custom(t, "e1", "e8", map[string]Field{
		"h1": WhitePiece(Rook),
		"f8": BlackPiece(Rook),
	})
	b.whiteKing.CastlingToRight = true

	for _, mv := range b.EnumerateMoves(White, sq(t, "e1")) {
		_, ok := mv.CastleRook()
		assert.False(t, ok, "castle should be unavailable with f1 attacked")
	}
}

func TestPromotionProducesFiveCandidates(t *testing.T) {
	b := custom(t, "e1", "e8", map[string]Field{
		"a7": WhitePiece(Pawn),
	})

	var promotions []Move
	for _, mv := range b.EnumerateMoves(White, sq(t, "a7")) {
		if _, ok := mv.Promotion(); ok {
			promotions = append(promotions, mv)
		}
	}
	assert.Len(t, promotions, len(PromotionKinds))

	seen := map[Piece]bool{}
	for _, mv := range promotions {
		piece, _ := mv.Promotion()
		seen[piece] = true
		assert.False(t, mv.IsCapture())
		assert.Equal(t, sq(t, "a8"), mv.End)
	}
	for _, k := range PromotionKinds {
		assert.True(t, seen[k])
	}
}

func TestEnumerateMovesNeverLeavesMoverInCheck(t *testing.T) {
	b := New()
	doMoveTo(t, b, White, "e2", "e4")
	doMoveTo(t, b, Black, "f7", "f5")
	doMoveTo(t, b, White, "d1", "h5")

	for _, mv := range b.EnumerateAllMovesBy(Black).Slice() {
		clone := b.Clone()
		clone.DoMove(mv)
		assert.False(t, clone.King(Black).IsInCheck(), "move %v left black's king in check", mv)
	}
}
