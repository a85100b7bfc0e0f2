package grid

// Passable decides whether a tile can be entered during single-timeline search.
type Passable func(Tile) bool

// NotWall treats every tile except Wall as passable, ignoring mechanisms.
func NotWall(t Tile) bool { return t != Wall }

// ShortestPath finds a minimum-length orthogonal route from src to dst over
// cells accepted by passable. The returned path includes both endpoints.
//
// Behavior:
//  1. Validate both endpoints lie in bounds (ErrOutOfBounds).
//  2. BFS from src in Up, Down, Left, Right order, recording predecessors.
//  3. Stop when dst is dequeued; reconstruct via predecessors.
//
// The endpoints themselves are not tested against passable, so a start or
// goal marker never blocks its own search. Returns ErrNoPath when dst is
// unreachable.
//
// Time:   O(W·H).
// Memory: O(W·H) for predecessor links.
func ShortestPath(g *Grid, src, dst Position, passable Passable) ([]Position, error) {
	if !g.InBounds(src) || !g.InBounds(dst) {
		return nil, ErrOutOfBounds
	}
	if passable == nil {
		passable = NotWall
	}
	n := g.Width * g.Height
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}
	seen := make([]bool, n)

	s, t := g.index(src.X, src.Y), g.index(dst.X, dst.Y)
	queue := []int{s}
	seen[s] = true
	found := s == t

	for qi := 0; qi < len(queue) && !found; qi++ {
		u := queue[qi]
		ux, uy := g.coordinate(u)
		for _, d := range Directions {
			dx, dy := d.Delta()
			v := Position{X: ux + dx, Y: uy + dy}
			if !g.InBounds(v) {
				continue
			}
			vi := g.index(v.X, v.Y)
			if seen[vi] || (vi != t && !passable(g.cells[vi])) {
				continue
			}
			seen[vi] = true
			prev[vi] = u
			if vi == t {
				found = true
				break
			}
			queue = append(queue, vi)
		}
	}
	if !found {
		return nil, ErrNoPath
	}

	var path []Position
	for at := t; at >= 0; at = prev[at] {
		x, y := g.coordinate(at)
		path = append(path, Position{X: x, Y: y})
		if at == s {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Connected reports whether dst is reachable from src over passable cells.
func Connected(g *Grid, src, dst Position, passable Passable) bool {
	_, err := ShortestPath(g, src, dst, passable)
	return err == nil
}
