package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	obstacleCell = '#'
	floorCell    = '.'
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 1 << 20

// Parse reads a grid in the text format described in the package doc.
// Trailing blank lines are ignored; any other blank line breaks the
// rectangle and is reported as ErrNonRectangular.
// All input errors are returned as *ParseError.
// Complexity: O(W×H).
func Parse(r io.Reader) (*Grid, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, &ParseError{Err: ErrEmptyGrid}
	}

	width := utf8.RuneCountInString(lines[0])
	obstacles := NewObstacleSet()
	var (
		start    Point
		heading  Heading
		agentRow int
	)
	for y, line := range lines {
		col := 0
		for _, c := range line {
			p := Point{X: col, Y: y}
			col++
			switch c {
			case obstacleCell:
				obstacles.Insert(p)
			case floorCell:
			default:
				h, ok := ParseHeading(c)
				if !ok {
					return nil, &ParseError{Line: y + 1, Column: col, Detail: fmt.Sprintf("%q", c), Err: ErrUnknownCell}
				}
				if agentRow > 0 {
					return nil, &ParseError{Line: y + 1, Column: col, Err: ErrMultipleAgents}
				}
				start, heading, agentRow = p, h, y+1
			}
		}
		if col != width {
			return nil, &ParseError{Line: y + 1, Detail: fmt.Sprintf("(got %d, want %d)", col, width), Err: ErrNonRectangular}
		}
	}
	if agentRow == 0 {
		return nil, &ParseError{Err: ErrNoAgent}
	}

	return New(width, len(lines), start, heading, obstacles)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: ParseFile %q: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("grid: ParseFile %q: %w", path, err)
	}
	return g, nil
}

// readLines splits r into rows, dropping '\r' line endings and trailing
// blank lines.
func readLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineBytes)
	var lines []string
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
