package patrol

import "github.com/katalvlaran/patrol/grid"

// Agent is the mobile walker: its position, heading, and every heading it
// has faced on each cell. The visited record only grows during a walk;
// Reset is the sole way to clear it.
type Agent struct {
	Position grid.Point
	Heading  grid.Heading
	Looped   bool
	Steps    int

	start        grid.Point
	startHeading grid.Heading
	width        int
	visited      []grid.Headings // row-major, one heading set per cell
	distinct     int
}

// NewAgent returns an Agent standing on g's start cell with the start pair
// already recorded.
func NewAgent(g *grid.Grid) *Agent {
	a := &Agent{
		start:        g.Start,
		startHeading: g.StartHeading,
		width:        g.Width,
		visited:      make([]grid.Headings, g.Cells()),
	}
	a.Reset()
	return a
}

// Reset restores the initial position and heading and forgets every visit
// except the start pair.
func (a *Agent) Reset() {
	clear(a.visited)
	a.Position = a.start
	a.Heading = a.startHeading
	a.Looped = false
	a.Steps = 0
	a.distinct = 0
	a.record()
}

// record notes the current (position, heading) pair. A pair seen before
// sets Looped and returns true.
func (a *Agent) record() bool {
	i := a.Position.Y*a.width + a.Position.X
	seen := a.visited[i]
	if seen.Has(a.Heading) {
		a.Looped = true
		return true
	}
	if seen == 0 {
		a.distinct++
	}
	a.visited[i] = seen.With(a.Heading)
	return false
}

// Headings returns the headings recorded on cell p.
// p must be inside the grid the Agent was built for.
func (a *Agent) Headings(p grid.Point) grid.Headings {
	return a.visited[p.Y*a.width+p.X]
}

// Distinct returns the number of distinct cells recorded so far.
func (a *Agent) Distinct() int {
	return a.distinct
}

// VisitedPositions lists the recorded cells in row-major order.
func (a *Agent) VisitedPositions() []grid.Point {
	pts := make([]grid.Point, 0, a.distinct)
	for i, s := range a.visited {
		if s != 0 {
			pts = append(pts, grid.Point{X: i % a.width, Y: i / a.width})
		}
	}
	return pts
}
