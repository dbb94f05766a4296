package astar

import "container/heap"

// Frontier is the open set: a min-priority queue of node handles ordered by
// f ascending, then by insertion sequence ascending. Duplicates of the same
// cell are allowed (lazy decrease-key).
type Frontier struct {
	pq   entryPQ
	next uint64
}

// NewFrontier returns an empty Frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}
	fr := &Frontier{pq: make(entryPQ, 0, capacity)}
	heap.Init(&fr.pq)

	return fr
}

// Push inserts id with priority f and returns the sequence number it was
// assigned. Sequence numbers strictly increase across pushes.
// Complexity: O(log N).
func (fr *Frontier) Push(f int, id NodeID) uint64 {
	seq := fr.next
	fr.next++
	heap.Push(&fr.pq, entry{f: f, seq: seq, id: id})

	return seq
}

// Pop removes and returns the handle with the lowest (f, sequence).
// Returns ErrEmptyFrontier when the frontier is empty.
// Complexity: O(log N).
func (fr *Frontier) Pop() (NodeID, error) {
	if fr.pq.Len() == 0 {
		return NoParent, ErrEmptyFrontier
	}
	e := heap.Pop(&fr.pq).(entry)

	return e.id, nil
}

// Len returns the number of queued entries, stale duplicates included.
func (fr *Frontier) Len() int { return fr.pq.Len() }

// Empty reports whether no entries remain.
func (fr *Frontier) Empty() bool { return fr.pq.Len() == 0 }

// entry is one frontier slot. seq breaks ties between equal f values.
type entry struct {
	f   int
	seq uint64
	id  NodeID
}

// entryPQ implements heap.Interface over entries.
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
