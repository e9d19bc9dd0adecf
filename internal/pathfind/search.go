// internal/pathfind/search.go
package pathfind

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"automata-defense/internal/component"
	"automata-defense/internal/entity"
	"automata-defense/internal/world"
	"automata-defense/pkg/grid"
)

// PriorityQueue orders search nodes by total cost, then by push order.
type PriorityQueue []*Node

// Node is one frontier entry.
type Node struct {
	Action *component.Action
	Cost   float64
	Seq    int
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}

// FindBestPath finds the cheapest sequence of actions taking e from its cell to
// any endpoint. It returns nil when no endpoint is reachable and an empty path
// when e already stands on one.
func FindBestPath(e *entity.Entity, w *world.World, endpoints []grid.Cell, kind component.ActionKind) []component.Action {
	start, ok := w.Pos(e)
	if !ok {
		return nil
	}
	return FindBestPathFrom(e, w, start, endpoints, kind)
}

// FindBestPathFrom is FindBestPath starting from an explicit cell.
func FindBestPathFrom(e *entity.Entity, w *world.World, start grid.Cell, endpoints []grid.Cell, kind component.ActionKind) []component.Action {
	path, _ := search(e, w, start, endpoints, kind)
	return path
}

// search is a uniform-cost search. It also returns how many cells it expanded.
func search(e *entity.Entity, w *world.World, start grid.Cell, endpoints []grid.Cell, kind component.ActionKind) ([]component.Action, int) {
	if len(endpoints) == 0 {
		return nil, 0
	}
	goals := mapset.New[grid.Cell]()
	for _, c := range endpoints {
		goals.Put(c)
	}
	if goals.Has(start) {
		return []component.Action{}, 0
	}

	closed := mapset.New[grid.Cell]()
	closed.Put(start)
	best := make(map[grid.Cell]float64)
	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0

	push := func(c grid.Cell, prev *Node) {
		a := &component.Action{Kind: kind, Cell: c}
		if prev != nil {
			a.Prev = prev.Action
			a.PrevCost = prev.Cost
		}
		if !IsPossible(*a, e, w) {
			return
		}
		total := TotalCost(*a, e, w)
		if b, seen := best[c]; seen && b <= total {
			return
		}
		best[c] = total
		heap.Push(pq, &Node{Action: a, Cost: total, Seq: seq})
		seq++
	}

	for _, n := range w.ShuffledNeighbors(start) {
		if w.InBounds(n) {
			push(n, nil)
		}
	}

	expanded := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		c := current.Action.Cell
		if closed.Has(c) {
			continue
		}
		closed.Put(c)
		expanded++

		if goals.Has(c) {
			return reconstructPath(current.Action), expanded
		}
		for _, n := range w.ShuffledNeighbors(c) {
			if w.InBounds(n) && !closed.Has(n) {
				push(n, current)
			}
		}
	}
	return nil, expanded
}

func reconstructPath(last *component.Action) []component.Action {
	n := 0
	for a := last; a != nil; a = a.Prev {
		n++
	}
	path := make([]component.Action, n)
	for a := last; a != nil; a = a.Prev {
		n--
		path[n] = *a
		path[n].Prev = nil
	}
	return path
}
