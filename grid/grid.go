package grid

import (
	"fmt"
	"strings"
)

// Grid is a bounded rectangular area with static obstacles and the agent's
// starting state. It is immutable once built: Obstacles hands out copies.
type Grid struct {
	Width, Height int
	Start         Point
	StartHeading  Heading
	obstacles     ObstacleSet
}

// New constructs a Grid of the given size. It deep-copies obstacles so later
// changes by the caller do not leak into the Grid.
// Returns ErrEmptyGrid for a non-positive size, ErrOutOfBounds if start or any
// obstacle lies outside the area, and ErrStartBlocked if start is an obstacle.
// Complexity: O(n) in the number of obstacles.
func New(width, height int, start Point, heading Heading, obstacles ObstacleSet) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:        width,
		Height:       height,
		Start:        start,
		StartHeading: heading % 4,
		obstacles:    make(ObstacleSet, len(obstacles)),
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("grid: New start %v: %w", start, ErrOutOfBounds)
	}
	for p := range obstacles {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("grid: New obstacle %v: %w", p, ErrOutOfBounds)
		}
		g.obstacles[p] = struct{}{}
	}
	if g.obstacles.Contains(start) {
		return nil, ErrStartBlocked
	}

	return g, nil
}

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Blocked reports whether p holds an obstacle.
func (g *Grid) Blocked(p Point) bool {
	return g.obstacles.Contains(p)
}

// Obstacles returns a copy of the obstacle set.
func (g *Grid) Obstacles() ObstacleSet {
	return g.obstacles.Clone()
}

// Cells returns Width×Height, the number of cells in the area.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps p to its row-major index: Y*Width + X.
// The result is only meaningful for in-bounds points.
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Render returns the grid in its text format, one row per line with a
// trailing newline. Parse(Render()) yields an equal Grid.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case p == g.Start:
				b.WriteRune(g.StartHeading.Marker())
			case g.obstacles.Contains(p):
				b.WriteByte(obstacleCell)
			default:
				b.WriteByte(floorCell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
