package gridgraph

import (
	"container/list"
	"fmt"
)

// MinBreach finds a path from src to dst that crosses the fewest walls.
// Entering a wall cell costs 1, entering an open cell costs 0.
// Returns the sequence of cells (src and dst included) and the number of
// walls on it; walls == 0 means src and dst are already connected.
//
// Behavior:
//  1. Validate both coordinates.
//  2. 0-1 BFS from src:
//     • Moving into an open cell → cost 0 (pushed to the front)
//     • Moving into a wall cell  → cost 1 (pushed to the back)
//  3. Stop when dst is dequeued.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(R·C) time and memory.
func (g *Grid) MinBreach(src, dst Coord) (path []Coord, walls int, err error) {
	if !g.InBounds(src) || !g.InBounds(dst) {
		return nil, 0, fmt.Errorf("%w: %v or %v", ErrOutOfBounds, src, dst)
	}

	n := g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	s := g.Index(src)
	dist[s] = 0
	if g.walls[s] {
		dist[s] = 1
	}
	dq.PushFront(s)

	target := g.Index(dst)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			break
		}
		uc := g.Coordinate(u)
		for _, d := range Offsets4 {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.Index(vc)
			step := 0
			if g.walls[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}
