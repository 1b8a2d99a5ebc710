package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Maze-related errors.
var (
	ErrInvalidConfiguration = errors.New("invalid maze configuration")
	ErrInvalidDirection     = errors.New("invalid direction")
)

const minSize = 5 // Smallest size where Start and Goal are distinct.

// Cell is the content of a single grid square.
type Cell uint8

// Cell values.
const (
	Wall Cell = iota
	Open
)

// Position is a cell coordinate, X grows right and Y grows down.
type Position struct {
	X, Y int
}

// Add returns p moved by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a square matrix of cells with an odd side length.
type Grid struct {
	size  int
	cells []Cell
}

// ValidateSize reports whether size can hold a maze.
func ValidateSize(size int) error {
	if size < minSize || size%2 == 0 {
		return fmt.Errorf("%w: size must be odd and at least %d, got %d", ErrInvalidConfiguration, minSize, size)
	}
	return nil
}

// NewGrid returns a grid of the given size filled with walls.
func NewGrid(size int) (*Grid, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	return &Grid{size: size, cells: make([]Cell, size*size)}, nil
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (open).
func ParseGrid(rows []string) (*Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidConfiguration, y, len(row), g.size)
		}
		for x, r := range row {
			switch r {
			case '#':
			case '.':
				g.cells[y*g.size+x] = Open
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %d,%d", ErrInvalidConfiguration, r, x, y)
			}
		}
	}
	return g, nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Start is the fixed entry cell.
func (g *Grid) Start() Position { return Position{X: 1, Y: 1} }

// Goal is the fixed exit cell.
func (g *Grid) Goal() Position { return Position{X: g.size - 2, Y: g.size - 2} }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// At returns the cell at p. Out-of-bounds positions read as Wall.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.size+p.X]
}

// IsOpen reports whether p is an in-bounds open cell.
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p) == Open
}

func (g *Grid) set(p Position, c Cell) {
	g.cells[p.Y*g.size+p.X] = c
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Rows renders the grid as strings using '#' for walls and '.' for open cells.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	var b strings.Builder
	for y := 0; y < g.size; y++ {
		b.Reset()
		for x := 0; x < g.size; x++ {
			if g.cells[y*g.size+x] == Open {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
