package pet

import "strconv"

// Direction is one of the eight compass codes a room object can face.
type Direction int

const (
	BehindRight Direction = iota
	Right
	FrontRight
	Front
	FrontLeft
	Left
	BehindLeft
	Behind
)

var directionNames = [...]string{
	BehindRight: "behind-right",
	Right:       "right",
	FrontRight:  "front-right",
	Front:       "front",
	FrontLeft:   "front-left",
	Left:        "left",
	BehindLeft:  "behind-left",
	Behind:      "behind",
}

func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// Valid reports whether d is one of the eight compass codes.
func (d Direction) Valid() bool {
	return d >= BehindRight && d <= Behind
}

// Mirror maps a left-facing direction onto the right-facing direction whose
// artwork it reuses and reports whether the sprite must be flipped
// horizontally. Left-facing assets are never authored.
func Mirror(d Direction) (Direction, bool) {
	switch d {
	case FrontLeft:
		return FrontRight, true
	case Left:
		return Right, true
	case BehindLeft:
		return BehindRight, true
	}
	return d, false
}
