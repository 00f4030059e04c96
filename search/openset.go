package search

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// OpenSet is the frontier of a best-first search: an indexed min-heap keyed
// by (priority, round, rank). Each cell appears at most once.
//
// Offers made between two Pops are staged and ranked together at the next
// Pop: a round is the number of Pops so far, and within a round cells are
// ranked by their previous key, with newly opened cells last in offer order.
// Among equal priorities a cell that reached its priority in an earlier round
// pops first. This matches a list that is appended to, then stable sorted by
// priority before every pop.
type OpenSet struct {
	grid    *gridgraph.Grid
	q       openQueue
	items   []*openItem // by row-major index; nil when not open
	pending []*openItem // offered since the last Pop
	n       int         // open cells, queued or pending
	pops    int
}

// NewOpenSet returns an empty open set for cells of g.
func NewOpenSet(g *gridgraph.Grid) *OpenSet {
	return &OpenSet{
		grid:    g,
		q:       make(openQueue, 0, 64),
		items:   make([]*openItem, g.Len()),
		pending: make([]*openItem, 0, 4),
	}
}

// Len returns the number of open cells.
func (o *OpenSet) Len() int { return o.n }

// Contains reports whether c is open.
func (o *OpenSet) Contains(c gridgraph.Coord) bool {
	return o.items[o.grid.Index(c)] != nil
}

// Offer opens c with the given priority, or re-ranks it if already open.
func (o *OpenSet) Offer(c gridgraph.Coord, priority int64) {
	idx := o.grid.Index(c)
	item := o.items[idx]
	if item == nil {
		item = &openItem{cell: c, indexInQueue: -1}
		item.old = openKey{priority: math.MaxInt64, round: math.MaxInt, rank: len(o.pending)}
		o.items[idx] = item
		o.n++
	} else if !item.staged {
		item.old = item.key
	}
	if !item.staged {
		item.staged = true
		o.pending = append(o.pending, item)
	}
	item.next = priority
}

// Pop removes and returns the open cell with the lowest key. It panics when
// the set is empty.
func (o *OpenSet) Pop() gridgraph.Coord {
	o.flush()
	item := heap.Pop(&o.q).(*openItem)
	o.items[o.grid.Index(item.cell)] = nil
	o.n--
	o.pops++

	return item.cell
}

// flush ranks the staged offers and moves them into the heap.
func (o *OpenSet) flush() {
	sort.SliceStable(o.pending, func(i, j int) bool {
		return o.pending[i].old.less(o.pending[j].old)
	})
	for rank, item := range o.pending {
		item.staged = false
		if item.indexInQueue >= 0 && item.next == item.key.priority {
			continue
		}
		item.key = openKey{priority: item.next, round: o.pops, rank: rank}
		if item.indexInQueue >= 0 {
			heap.Fix(&o.q, item.indexInQueue)
		} else {
			heap.Push(&o.q, item)
		}
	}
	clear(o.pending)
	o.pending = o.pending[:0]
}

// openKey orders open cells.
type openKey struct {
	priority int64
	round    int
	rank     int
}

func (k openKey) less(o openKey) bool {
	if k.priority != o.priority {
		return k.priority < o.priority
	}
	if k.round != o.round {
		return k.round < o.round
	}

	return k.rank < o.rank
}

// openItem is one open-set entry.
type openItem struct {
	cell         gridgraph.Coord
	key          openKey
	old          openKey // key before the pending offer
	next         int64   // priority of the pending offer
	staged       bool
	indexInQueue int
}

// openQueue is a min-heap of *openItem ordered by key.
type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool { return q[i].key.less(q[j].key) }

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].indexInQueue = i
	q[j].indexInQueue = j
}

func (q *openQueue) Push(x any) {
	item := x.(*openItem)
	item.indexInQueue = len(*q)
	*q = append(*q, item)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.indexInQueue = -1
	*q = old[:n-1]

	return item
}
