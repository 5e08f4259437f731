package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlearn/core"
)

type queueItem struct {
	id    int
	depth int
}

// BFS runs breadth-first search on g starting from start.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation;
//   - the context error on cancellation;
//   - any OnVisit error, wrapped with the vertex id.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	res := &Result{Depth: map[int]int{start: 0}, Parent: map[int]int{}}
	queue := []queueItem{{id: start}}
	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if o.MaxDepth > 0 && item.depth >= o.MaxDepth {
			continue
		}

		nbrs, err := g.Neighbors(item.id)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = item.depth + 1
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	return res, nil
}

// Components returns the connected components of g, each ascending, ordered
// by smallest member. Isolated vertices form singleton components.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[int]bool, g.VertexCount())
	var out [][]int
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := append([]int(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}
