package grid

import (
	"encoding/json"
	"fmt"
)

// Grid is a Width×Height array of tiles stored row-major.
// The zero value is not usable; construct with New or FromRows.
type Grid struct {
	Width, Height int
	cells         []Tile
}

// New returns an all-Empty grid of the given size.
// Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	return &Grid{Width: width, Height: height, cells: make([]Tile, width*height)}, nil
}

// FromRows builds a Grid from integer tile codes indexed rows[y][x].
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Unknown codes decode as Empty.
// Complexity: O(W×H).
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Width: w, Height: h, cells: make([]Tile, w*h)}
	for y, row := range rows {
		for x, code := range row {
			g.cells[g.index(x, y)] = TileFromCode(code)
		}
	}
	return g, nil
}

// MustFromRows is FromRows that panics on error. Intended for fixtures.
func MustFromRows(rows [][]int) *Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, cells: make([]Tile, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p; out-of-bounds positions read as Wall.
func (g *Grid) At(p Position) Tile {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p.X, p.Y)]
}

// Set writes t at p. Out-of-bounds writes are ignored and reported as false.
func (g *Grid) Set(p Position, t Tile) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p.X, p.Y)] = t
	return true
}

// Neighbors returns the in-bounds orthogonal neighbours of p in
// Up, Down, Left, Right order.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range Directions {
		if q := p.Step(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns every position holding t, in row-major order.
func (g *Grid) Find(t Tile) []Position {
	var out []Position
	for i, c := range g.cells {
		if c == t {
			x, y := g.coordinate(i)
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Rows returns the grid as integer codes indexed [y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = make([]int, g.Width)
		for x := 0; x < g.Width; x++ {
			rows[y][x] = int(g.cells[g.index(x, y)])
		}
	}
	return rows
}

// MarshalJSON encodes the grid as [][]int rows.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}

// UnmarshalJSON decodes [][]int rows.
func (g *Grid) UnmarshalJSON(b []byte) error {
	var rows [][]int
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	dec, err := FromRows(rows)
	if err != nil {
		return err
	}
	*g = *dec
	return nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// coordinate converts a row-major index back to (x,y).
func (g *Grid) coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
