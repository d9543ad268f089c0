package grid

import "sort"

// ObstacleSet is a set of blocked Points. The zero value is not usable for
// insertion; create sets with NewObstacleSet.
type ObstacleSet map[Point]struct{}

// NewObstacleSet returns a set holding the given points.
func NewObstacleSet(points ...Point) ObstacleSet {
	s := make(ObstacleSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Contains reports whether p is blocked.
func (s ObstacleSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Insert adds p and reports whether it was absent before.
func (s ObstacleSet) Insert(p Point) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// Remove deletes p and reports whether it was present.
func (s ObstacleSet) Remove(p Point) bool {
	if _, ok := s[p]; !ok {
		return false
	}
	delete(s, p)
	return true
}

// Len returns the number of obstacles.
func (s ObstacleSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of s.
// Complexity: O(n).
func (s ObstacleSet) Clone() ObstacleSet {
	c := make(ObstacleSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Equal reports whether s and other hold exactly the same points.
func (s ObstacleSet) Equal(other ObstacleSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if _, ok := other[p]; !ok {
			return false
		}
	}
	return true
}

// Points returns the obstacles in row-major order (by Y, then X).
// Complexity: O(n log n).
func (s ObstacleSet) Points() []Point {
	pts := make([]Point, 0, len(s))
	for p := range s {
		pts = append(pts, p)
	}
	SortPoints(pts)
	return pts
}

// SortPoints orders pts row-major (by Y, then X) in place.
func SortPoints(pts []Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
}
