// Package grid models the bounded rectangular area a patrolling agent walks
// through: positions, compass headings, the static obstacle set and the
// agent's starting state, together with the text format they are read from.
//
// What:
//
//   - Point is an immutable (X, Y) coordinate; Y grows downwards.
//   - Heading is one of Up, Right, Down, Left; TurnRight rotates clockwise.
//   - Headings is a compact set of headings, used to record which ways an
//     agent has faced at a given cell.
//   - ObstacleSet is a set of blocked Points.
//   - Grid bundles Width, Height, the obstacles and the start state. It is
//     immutable once built.
//
// Text format:
//
//	....#.....
//	.........#
//	..#.......
//	.#..^.....
//
//   - '#' marks an obstacle, '.' open floor.
//   - '^', '>', 'v', '<' mark the agent's start cell and heading.
//   - Rows are separated by '\n' (a trailing '\r' is dropped).
//
// Complexity:
//
//   - Parse:     O(W×H) time and memory.
//   - InBounds:  O(1).
//   - Blocked:   O(1) average.
//
// Errors:
//
//   - ErrEmptyGrid:           input has no rows or no columns.
//   - ErrNonRectangular:      rows have differing lengths.
//   - ErrNoAgent:             no agent marker in the input.
//   - ErrMultipleAgents:      more than one agent marker.
//   - ErrUnknownCell:         a rune outside the text format.
//   - ErrOutOfBounds:         a start or obstacle point outside the area.
//   - ErrStartBlocked:        the start cell holds an obstacle.
//
// Parse failures are reported as *ParseError carrying the line and column.
package grid
