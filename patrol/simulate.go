package patrol

import "github.com/katalvlaran/patrol/grid"

// walk advances ag until the cell ahead is outside g (Exited) or the agent
// repeats an exact (position, heading) pair (Looped).
//
// Each iteration:
//  1. Look at the cell ahead.
//  2. Outside the area: stop.
//  3. Blocked: turn right in place; otherwise step into it.
//  4. Record the new pair; a repeat means a loop.
func walk(g *grid.Grid, blocked func(grid.Point) bool, ag *Agent) Outcome {
	for {
		ahead := ag.Position.Add(ag.Heading.Delta())
		if !g.InBounds(ahead) {
			return Exited
		}
		if blocked(ahead) {
			ag.Heading = ag.Heading.TurnRight()
		} else {
			ag.Position = ahead
		}
		ag.Steps++
		if ag.record() {
			return Looped
		}
	}
}

// Simulate walks a fresh Agent across g, treating extra (when non-nil) as an
// additional obstacle. g is only read, so Simulate is safe for concurrent use
// on a shared grid.
// Complexity: O(W×H×4) time, O(W×H) memory.
func Simulate(g *grid.Grid, extra *grid.Point) Trace {
	ag := NewAgent(g)
	outcome := walk(g, withExtra(g, extra), ag)
	return Trace{
		Outcome: outcome,
		Steps:   ag.Steps,
		Visited: ag.VisitedPositions(),
	}
}

// withExtra returns a blocked-cell lookup over g's obstacles plus extra.
func withExtra(g *grid.Grid, extra *grid.Point) func(grid.Point) bool {
	if extra == nil {
		return g.Blocked
	}
	e := *extra
	return func(p grid.Point) bool {
		return p == e || g.Blocked(p)
	}
}
