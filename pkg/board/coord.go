package board

import (
	"fmt"
	"strings"
)

// UnsafeCoord is a raw index into the padded 10x12 board: 120 squares, signed so
// relative steps (coord.Rel(dx, dy)) never need an explicit bounds check before
// indexing. It may reference a sentinel (border) square.
type UnsafeCoord int8

// Coord is a verified-playable square: one of the 64 real board squares. The only
// way to obtain one is to query a board and have it inspect the field at that
// index (Board.GetIfSafe) or to build one from file/rank coordinates
// (FromFileRank). This keeps playable-only call sites branch-free: once you hold
// a Coord, no further sentinel check is needed.
type Coord int8

// Raw returns the underlying padded-board index.
func (c UnsafeCoord) Raw() int8 { return int8(c) }

// Raw returns the underlying padded-board index.
func (c Coord) Raw() int8 { return int8(c) }

// AsUnsafe widens a Coord back to an UnsafeCoord, e.g. to compute a relative step.
func (c Coord) AsUnsafe() UnsafeCoord { return UnsafeCoord(c) }

// FromFileRank builds the Coord for file/rank in [0,8). a1 is FromFileRank(0, 0).
func FromFileRank(file, rank int8) Coord {
	return Coord(21 + file + rank*10)
}

// FileRank decomposes a Coord back into zero-based file and rank.
func (c Coord) FileRank() (file, rank int8) {
	v := int8(c)
	return (v % 10) - 1, (v / 10) - 2
}

// Rel returns the (possibly off-board) square reached by stepping (dx, dy) from
// c. Every step with |dx|,|dy| <= 2 stays inside the 120-square array except
// (2, 2) and (-2, -2), which leave it from h8 and a1 respectively.
func (c Coord) Rel(dx, dy int8) UnsafeCoord {
	return UnsafeCoord(int8(c) + dx + dy*10)
}

// Rel1D steps by a raw 1-dimensional padded-board delta (used when the caller
// already has a "threat minus target" style difference in hand).
func (c Coord) Rel1D(delta int8) UnsafeCoord {
	return UnsafeCoord(int8(c) + delta)
}

// baselineColor returns the color whose pawns start on this rank (rank 2 for
// White, rank 7 for Black), or false if neither.
func (c Coord) baselineColor() (Color, bool) {
	switch {
	case c.onRank(1):
		return White, true
	case c.onRank(6):
		return Black, true
	default:
		return 0, false
	}
}

// endlineColor returns the color whose pawns promote on this rank (rank 8 for
// White, rank 1 for Black), or false if neither.
func (c Coord) endlineColor() (Color, bool) {
	switch {
	case c.onRank(7):
		return White, true
	case c.onRank(0):
		return Black, true
	default:
		return 0, false
	}
}

func (c Coord) onRank(rank int8) bool {
	_, r := c.FileRank()
	return r == rank
}

// Baseline reports whether this square is a color's pawn-starting rank.
func (c Coord) Baseline(color Color) bool {
	c2, ok := c.baselineColor()
	return ok && c2 == color
}

// Endline reports whether this square is a color's promotion rank.
func (c Coord) Endline(color Color) bool {
	c2, ok := c.endlineColor()
	return ok && c2 == color
}

// CoordParseErrorKind distinguishes why algebraic coordinate parsing failed.
type CoordParseErrorKind uint8

const (
	// CharacterCount: the input was not exactly two characters (after trimming).
	CharacterCount CoordParseErrorKind = iota
	// InvalidLetter: the first character was not a file letter a-h.
	InvalidLetter
	// InvalidNumber: the second character was not a rank digit 1-8.
	InvalidNumber
)

// CoordParseError reports a failure to parse an algebraic coordinate.
type CoordParseError struct {
	Kind CoordParseErrorKind
	Text string
}

func (e *CoordParseError) Error() string {
	switch e.Kind {
	case CharacterCount:
		return fmt.Sprintf("coord %q: expected two characters, e.g. 'c3'", e.Text)
	case InvalidLetter:
		return fmt.Sprintf("coord %q: expected a file letter a-h first", e.Text)
	case InvalidNumber:
		return fmt.Sprintf("coord %q: expected a rank number 1-8 second", e.Text)
	default:
		return fmt.Sprintf("coord %q: invalid", e.Text)
	}
}

// ParseCoord parses an algebraic square such as "e4" or "E4", case-insensitive and
// trimmed of surrounding whitespace.
func ParseCoord(s string) (Coord, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if len(trimmed) != 2 {
		return 0, &CoordParseError{Kind: CharacterCount, Text: s}
	}

	file, ok := parseFileLetter(trimmed[0])
	if !ok {
		return 0, &CoordParseError{Kind: InvalidLetter, Text: s}
	}
	rank, ok := parseRankDigit(trimmed[1])
	if !ok {
		return 0, &CoordParseError{Kind: InvalidNumber, Text: s}
	}
	return FromFileRank(file, rank), nil
}

func parseFileLetter(b byte) (int8, bool) {
	if b < 'a' || b > 'h' {
		return 0, false
	}
	return int8(b - 'a'), true
}

func parseRankDigit(b byte) (int8, bool) {
	if b < '1' || b > '8' {
		return 0, false
	}
	return int8(b - '1'), true
}

// String renders the coordinate in algebraic notation, e.g. "e4".
func (c Coord) String() string {
	file, rank := c.FileRank()
	return fmt.Sprintf("%c%d", 'a'+file, rank+1)
}
