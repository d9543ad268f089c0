package patrol_test

import (
	"math/rand"
	"runtime"
	"testing"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/patrol"
)

// benchGrid builds a deterministic 130×130 grid with roughly 2% obstacles,
// the size of typical puzzle inputs.
func benchGrid(b *testing.B) *grid.Grid {
	const n = 130
	rng := rand.New(rand.NewSource(42))
	start := grid.Point{X: n / 2, Y: n / 2}
	obstacles := grid.NewObstacleSet()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p := grid.Point{X: x, Y: y}
			if p != start && rng.Intn(50) == 0 {
				obstacles.Insert(p)
			}
		}
	}
	g, err := grid.New(n, n, start, grid.Up, obstacles)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	return g
}

// BenchmarkDistinctPositionsVisited measures a single walk.
// Complexity: O(W×H×4)
func BenchmarkDistinctPositionsVisited(b *testing.B) {
	area, err := patrol.NewArea(benchGrid(b))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = area.DistinctPositionsVisited()
	}
}

// BenchmarkCountLoopInducingObstacles_InPlace runs trials sequentially.
// Complexity: O(V×W×H×4)
func BenchmarkCountLoopInducingObstacles_InPlace(b *testing.B) {
	area, err := patrol.NewArea(benchGrid(b))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = area.CountLoopInducingObstacles()
	}
}

// BenchmarkCountLoopInducingObstacles_Pooled runs trials on GOMAXPROCS workers.
func BenchmarkCountLoopInducingObstacles_Pooled(b *testing.B) {
	area, err := patrol.NewArea(benchGrid(b), patrol.WithWorkers(runtime.GOMAXPROCS(0)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = area.CountLoopInducingObstacles()
	}
}
