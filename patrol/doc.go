// Package patrol simulates a guard walking a grid.Grid and detects when the
// walk can never end.
//
// What:
//
//   - The agent steps forward along its heading. When the cell ahead holds
//     an obstacle it turns 90° clockwise without moving. When the cell
//     ahead is outside the area the walk ends (Exited).
//   - Every (position, heading) pair the agent occupies is recorded. The
//     state space is finite, so a walk that never leaves the area must
//     repeat an exact pair; the first repeat ends the walk (Looped).
//   - Area.DistinctPositionsVisited counts the cells covered by one walk.
//   - Area.CountLoopInducingObstacles tries one extra obstacle on every
//     cell of the unobstructed walk (except the start) and counts the
//     placements that trap the agent.
//   - Simulate is the pure form of a single walk: it takes an immutable
//     grid plus an optional extra obstacle and shares no state.
//
// Why:
//
//   - Patrol-route analysis: which cells a fixed-rule agent covers.
//   - Trap search: where one added blocker turns a route into a cycle.
//
// Options:
//
//   - WithContext: cancel a long candidate search.
//   - WithWorkers: evaluate candidates on a bounded pool of goroutines.
//     Each trial gets a fresh Agent and reads the shared obstacles without
//     mutating them. Workers == 1 (the default) runs trials in order,
//     inserting and removing each candidate in the Area's own obstacle set.
//   - WithOnTrial: observe each trial's candidate and result.
//
// Complexity:
//
//   - Walk:                       O(W×H×4) steps, Memory O(W×H).
//   - DistinctPositionsVisited:   one walk.
//   - CountLoopInducingObstacles: O(V × W×H×4), V = cells on the first walk.
//
// Errors:
//
//   - ErrNilGrid:          NewArea was given a nil grid.
//   - ErrOptionViolation:  an Option carried an invalid value.
//   - context errors:      the candidate search was cancelled.
package patrol
