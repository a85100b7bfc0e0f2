package grid

import (
	"fmt"
	"strings"
)

// Tile is a single cell code. The numeric values are a wire contract with
// renderers and must not be reordered.
type Tile uint8

const (
	Empty Tile = iota
	Wall
	StartMarker
	Obstacle
	Goal
	Key
	Door
	Chest
	Lever
	LeverGate
)

var tileNames = [...]string{
	Empty:       "empty",
	Wall:        "wall",
	StartMarker: "start",
	Obstacle:    "obstacle",
	Goal:        "goal",
	Key:         "key",
	Door:        "door",
	Chest:       "chest",
	Lever:       "lever",
	LeverGate:   "lever-gate",
}

// TileFromCode converts an integer tile code into a Tile.
// Codes outside 0-9 decode as Empty.
func TileFromCode(code int) Tile {
	if code < 0 || code > int(LeverGate) {
		return Empty
	}
	return Tile(code)
}

// String returns the lower-case tile name.
func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// Floor reports whether an obstacle may rest on the tile.
func (t Tile) Floor() bool {
	return t == Empty || t == StartMarker
}

// Mechanism reports whether the tile is an objective or mechanism tile
// that level pruning and gating must never overwrite.
func (t Tile) Mechanism() bool {
	switch t {
	case StartMarker, Goal, Key, Door, Chest, Lever, LeverGate:
		return true
	}
	return false
}

// Position is an (X, Y) cell coordinate.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// Compare orders positions by X, then Y. It returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

// Step returns the neighbouring position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |dx|+|dy| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one orthogonal move.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all moves in expansion order.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionNames = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}

// Delta returns the (dx, dy) offset of d. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection parses "up", "down", "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(directionNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
