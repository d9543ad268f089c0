package grid

import (
	"fmt"
	"math/bits"
)

// Point is an integer (X, Y) coordinate. X grows to the right, Y grows down.
// Points are comparable and safe to use as map keys.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String formats p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Heading is one of the four compass directions an agent can face.
type Heading uint8

const (
	// Up faces towards row 0.
	Up Heading = iota
	// Right faces towards increasing X.
	Right
	// Down faces towards increasing Y.
	Down
	// Left faces towards column 0.
	Left
)

// deltas is indexed by Heading: N, E, S, W.
var deltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// markers is indexed by Heading.
var markers = [4]rune{'^', '>', 'v', '<'}

// TurnRight rotates h 90° clockwise: Up→Right→Down→Left→Up.
func (h Heading) TurnRight() Heading {
	return (h + 1) % 4
}

// Delta returns the unit step taken when moving one cell along h.
func (h Heading) Delta() Point {
	return deltas[h%4]
}

// Marker returns the rune used for an agent facing h in the text format.
func (h Heading) Marker() rune {
	return markers[h%4]
}

// String implements fmt.Stringer.
func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
}

// ParseHeading maps an agent marker rune to its Heading.
func ParseHeading(r rune) (Heading, bool) {
	for h, m := range markers {
		if m == r {
			return Heading(h), true
		}
	}
	return 0, false
}

// Headings is a set of Heading values packed into a bitmask.
// The zero value is the empty set.
type Headings uint8

// Has reports whether h is in the set.
func (s Headings) Has(h Heading) bool {
	return s&(1<<h) != 0
}

// With returns the set with h added.
func (s Headings) With(h Heading) Headings {
	return s | 1<<h
}

// Len returns the number of headings in the set.
func (s Headings) Len() int {
	return bits.OnesCount8(uint8(s))
}
