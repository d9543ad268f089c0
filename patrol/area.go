package patrol

import (
	"context"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/patrol/grid"
)

// Area owns a grid, a working copy of its obstacles and the Agent that walks
// it. The Agent is reset to its initial state after every public call, and
// the working obstacles are restored after every trial, so calls can be
// repeated in any order with identical results.
//
// An Area is not safe for concurrent use; its parallel candidate search
// never touches the Area's own Agent or obstacle set.
type Area struct {
	grid      *grid.Grid
	obstacles grid.ObstacleSet
	agent     *Agent
	opts      Options
}

// NewArea prepares an Area for g.
// Returns ErrNilGrid for a nil g and ErrOptionViolation for a bad Option.
func NewArea(g *grid.Grid, opts ...Option) (*Area, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Area{
		grid:      g,
		obstacles: g.Obstacles(),
		agent:     NewAgent(g),
		opts:      o,
	}, nil
}

// Grid returns the immutable grid the Area was built from.
func (a *Area) Grid() *grid.Grid {
	return a.grid
}

// Obstacles returns a copy of the Area's working obstacle set.
func (a *Area) Obstacles() grid.ObstacleSet {
	return a.obstacles.Clone()
}

// Trace runs one walk from the initial state and returns its record.
// The Agent is reset afterwards.
func (a *Area) Trace() Trace {
	outcome := a.traverse()
	t := Trace{
		Outcome: outcome,
		Steps:   a.agent.Steps,
		Visited: a.agent.VisitedPositions(),
	}
	a.agent.Reset()
	return t
}

// DistinctPositionsVisited runs one walk from the initial state and returns
// the number of distinct cells covered, start included. The result is
// always at least 1. The Agent is reset afterwards.
func (a *Area) DistinctPositionsVisited() int {
	a.traverse()
	n := a.agent.Distinct()
	a.agent.Reset()
	return n
}

// CountLoopInducingObstacles returns how many single extra obstacles,
// placed on a cell of the unobstructed walk other than the start, make the
// agent loop forever.
func (a *Area) CountLoopInducingObstacles() (int, error) {
	pts, err := a.LoopInducingObstacles()
	if err != nil {
		return 0, err
	}
	return len(pts), nil
}

// LoopInducingObstacles returns, row-major, the candidate cells whose
// obstacle makes the agent loop.
//
// Steps:
//  1. Walk once without extra obstacles and collect the visited cells.
//  2. Drop the start cell; the agent stands there.
//  3. For each remaining cell, walk again with an obstacle on it.
//
// Trials are independent: each starts from a reset Agent and leaves the
// working obstacle set exactly as it found it.
// Complexity: O(V × W×H×4), V = cells on the first walk.
func (a *Area) LoopInducingObstacles() ([]grid.Point, error) {
	a.traverse()
	candidates := a.agent.VisitedPositions()
	a.agent.Reset()
	candidates = removePoint(candidates, a.grid.Start)

	var (
		looping []grid.Point
		err     error
	)
	if a.opts.Workers <= 1 {
		looping, err = a.trialsInPlace(candidates)
	} else {
		looping, err = a.trialsPooled(candidates)
	}
	if err != nil {
		return nil, fmt.Errorf("patrol: LoopInducingObstacles: %w", err)
	}
	grid.SortPoints(looping)
	return looping, nil
}

// traverse walks the Area's own Agent against the working obstacle set.
func (a *Area) traverse() Outcome {
	return walk(a.grid, a.obstacles.Contains, a.agent)
}

// trialsInPlace inserts each candidate into the working obstacle set,
// walks, then removes it again.
func (a *Area) trialsInPlace(candidates []grid.Point) ([]grid.Point, error) {
	var looping []grid.Point
	for _, p := range candidates {
		if err := a.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		added := a.obstacles.Insert(p)
		looped := a.traverse() == Looped
		if added {
			a.obstacles.Remove(p)
		}
		a.agent.Reset()

		if a.opts.OnTrial != nil {
			a.opts.OnTrial(p, looped)
		}
		if looped {
			looping = append(looping, p)
		}
	}
	return looping, nil
}

// trial is the result of one pooled candidate walk.
type trial struct {
	candidate grid.Point
	looped    bool
}

// trialsPooled evaluates candidates on a bounded goroutine pool. Each trial
// gets a fresh Agent and sees the grid's obstacles plus its own candidate;
// nothing shared is mutated.
func (a *Area) trialsPooled(candidates []grid.Point) ([]grid.Point, error) {
	var hookMu sync.Mutex
	p := pool.NewWithResults[trial]().
		WithContext(a.opts.Ctx).
		WithCancelOnError().
		WithMaxGoroutines(a.opts.Workers)

	for _, c := range candidates {
		c := c
		p.Go(func(ctx context.Context) (trial, error) {
			if err := ctx.Err(); err != nil {
				return trial{}, err
			}
			ag := NewAgent(a.grid)
			looped := walk(a.grid, withExtra(a.grid, &c), ag) == Looped
			if a.opts.OnTrial != nil {
				hookMu.Lock()
				a.opts.OnTrial(c, looped)
				hookMu.Unlock()
			}
			return trial{candidate: c, looped: looped}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}
	var looping []grid.Point
	for _, r := range results {
		if r.looped {
			looping = append(looping, r.candidate)
		}
	}
	return looping, nil
}

// removePoint drops every occurrence of p from pts, preserving order.
func removePoint(pts []grid.Point, p grid.Point) []grid.Point {
	out := pts[:0]
	for _, q := range pts {
		if q != p {
			out = append(out, q)
		}
	}
	return out
}

