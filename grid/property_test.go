package grid_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/patrol/grid"
)

// TestGridProperties checks index arithmetic and obstacle-set restoration
// over generated inputs.
func TestGridProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: Coordinate inverts Index for every in-bounds point
	properties.Property("index round trip", prop.ForAll(
		func(w, h, x, y int) bool {
			g, err := grid.New(w, h, grid.Point{}, grid.Up, nil)
			if err != nil {
				return false
			}
			p := grid.Point{X: x % w, Y: y % h}
			return g.Coordinate(g.Index(p)) == p
		},
		gen.IntRange(1, 200),
		gen.IntRange(1, 200),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	// Property: four right turns restore the heading
	properties.Property("full rotation", prop.ForAll(
		func(n uint8) bool {
			h := grid.Heading(n % 4)
			return h.TurnRight().TurnRight().TurnRight().TurnRight() == h
		},
		gen.UInt8(),
	))

	// Property: inserting then removing a fresh point leaves the set unchanged
	properties.Property("insert remove restores", prop.ForAll(
		func(xs []int, x int) bool {
			s := grid.NewObstacleSet()
			for i, v := range xs {
				s.Insert(grid.Point{X: v, Y: i})
			}
			before := s.Clone()
			p := grid.Point{X: x, Y: -1}
			if !s.Insert(p) {
				return false
			}
			s.Remove(p)
			return s.Equal(before)
		},
		gen.SliceOf(gen.IntRange(0, 50)),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
