package grid_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
)

//----------------------------------------------------------------------------//
// Parse: well-formed input
//----------------------------------------------------------------------------//

// TestParse_Sample reads the 10×10 reference layout from testdata.
func TestParse_Sample(t *testing.T) {
	g, err := grid.ParseFile(filepath.Join("..", "testdata", "sample.txt"))
	require.NoError(t, err)

	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 10, g.Height)
	assert.Equal(t, grid.Point{X: 4, Y: 6}, g.Start)
	assert.Equal(t, grid.Up, g.StartHeading)
	assert.Equal(t, 8, g.Obstacles().Len())
	assert.True(t, g.Blocked(grid.Point{X: 4, Y: 0}))
	assert.True(t, g.Blocked(grid.Point{X: 0, Y: 8}))
	assert.False(t, g.Blocked(grid.Point{X: 4, Y: 6}))
}

// TestParse_LineEndings accepts CRLF rows and trailing blank lines.
func TestParse_LineEndings(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"NoTrailingNewline", "#..\n.^.\n..."},
		{"TrailingNewline", "#..\n.^.\n...\n"},
		{"TrailingBlankLines", "#..\n.^.\n...\n\n\n"},
		{"CRLF", "#..\r\n.^.\r\n...\r\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.ParseString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, 3, g.Width)
			assert.Equal(t, 3, g.Height)
			assert.Equal(t, grid.Point{X: 1, Y: 1}, g.Start)
			assert.Equal(t, []grid.Point{{X: 0, Y: 0}}, g.Obstacles().Points())
		})
	}
}

// TestParse_AgentMarkers maps every marker rune to its heading.
func TestParse_AgentMarkers(t *testing.T) {
	cases := map[string]grid.Heading{
		"^": grid.Up,
		">": grid.Right,
		"v": grid.Down,
		"<": grid.Left,
	}
	for marker, want := range cases {
		t.Run(want.String(), func(t *testing.T) {
			g, err := grid.ParseString(".." + marker + "\n...\n")
			require.NoError(t, err)
			assert.Equal(t, want, g.StartHeading)
			assert.Equal(t, grid.Point{X: 2, Y: 0}, g.Start)
		})
	}
}

//----------------------------------------------------------------------------//
// Parse: malformed input
//----------------------------------------------------------------------------//

// TestParse_Errors verifies every input error is reported as *ParseError
// wrapping the matching sentinel, with a location where one applies.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		err    error
		line   int
		column int
	}{
		{"Empty", "", grid.ErrEmptyGrid, 0, 0},
		{"OnlyNewlines", "\n\n", grid.ErrEmptyGrid, 0, 0},
		{"NoAgent", "...\n.#.\n", grid.ErrNoAgent, 0, 0},
		{"TwoAgents", "^..\n..^\n", grid.ErrMultipleAgents, 2, 3},
		{"ShortRow", "^..\n..\n...\n", grid.ErrNonRectangular, 2, 0},
		{"LongRow", "^..\n....\n", grid.ErrNonRectangular, 2, 0},
		{"BlankMiddleRow", "^..\n\n...\n", grid.ErrNonRectangular, 2, 0},
		{"UnknownRune", "^..\n.x.\n", grid.ErrUnknownCell, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseString(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "error = %v; want %v", err, tc.err)

			var perr *grid.ParseError
			require.True(t, errors.As(err, &perr), "error %T is not *ParseError", err)
			assert.Equal(t, tc.line, perr.Line)
			assert.Equal(t, tc.column, perr.Column)
		})
	}
}

// TestParseError_Message checks the location suffix of the error text.
func TestParseError_Message(t *testing.T) {
	_, err := grid.ParseString("^..\n.x.\n")
	require.Error(t, err)
	assert.Equal(t, `grid: unknown cell 'x' (line 2, column 2)`, err.Error())

	_, err = grid.ParseString("...\n")
	require.Error(t, err)
	assert.Equal(t, "grid: no agent marker found", err.Error())
}

// TestParseFile_Missing wraps the os error with the file path.
func TestParseFile_Missing(t *testing.T) {
	_, err := grid.ParseFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "absent.txt")
}
