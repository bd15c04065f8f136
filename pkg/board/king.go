package board

// Direction names one of the eight rays radiating from a king.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

var allDirections = [8]Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

// XY returns the (dx, dy) unit step for the direction.
func (d Direction) XY() (int8, int8) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case UpLeft:
		return -1, 1
	case UpRight:
		return 1, 1
	case DownLeft:
		return -1, -1
	default: // DownRight
		return 1, -1
	}
}

// IsDiagonal reports whether the direction is a diagonal (bishop-like) ray.
func (d Direction) IsDiagonal() bool {
	switch d {
	case UpLeft, UpRight, DownLeft, DownRight:
		return true
	default:
		return false
	}
}

// pinEntry records that the piece on the square it is stored under is pinned:
// it may move only onto attacker or stay on the line through the king in dir.
type pinEntry struct {
	attacker Coord
	dir      Direction
	set      bool
}

// King holds the per-color state the legality filter and move generator depend
// on: the king's own square, castling rights, the squares currently giving
// check, and the pin index (potential_check_map in spec terms).
type King struct {
	Coord Coord

	CastlingToLeft  bool
	CastlingToRight bool

	aggressors boundedList[Coord]

	// checkMap[sq] holds the pin entry for the friendly piece on sq, if any.
	// Indexed by the full padded-board range so lookups never need a bounds
	// check beyond the array itself.
	checkMap [120]pinEntry
}

// newKing returns a king in its starting position for color, with full castling
// rights and no pins or checks recorded yet.
func newKing(color Color) King {
	file, rank := int8(4), int8(0)
	if color == Black {
		rank = 7
	}
	return King{
		Coord:           FromFileRank(file, rank),
		CastlingToLeft:  true,
		CastlingToRight: true,
	}
}

// Aggressors returns the (at most two) squares whose pieces currently give check
// to this king.
func (k *King) Aggressors() []Coord {
	return k.aggressors.slice()
}

// IsInCheck reports whether any piece currently attacks the king.
func (k *King) IsInCheck() bool {
	return !k.aggressors.isEmpty()
}

// PotentialCheck returns the pin entry recorded for the piece on sq, if any.
func (k *King) PotentialCheck(sq Coord) (attacker Coord, dir Direction, ok bool) {
	e := k.checkMap[sq.Raw()]
	return e.attacker, e.dir, e.set
}

func (k *King) setPotentialCheck(sq, attacker Coord, dir Direction) {
	k.checkMap[sq.Raw()] = pinEntry{attacker: attacker, dir: dir, set: true}
}

func (k *King) clearCheckMap() {
	for i := range k.checkMap {
		k.checkMap[i] = pinEntry{}
	}
}
