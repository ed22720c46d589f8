// Shared min-priority queue for the best-first executables (Dijkstra, A*,
// Greedy Best-First). The queue uses the lazy-decrease-key strategy: an
// improvement pushes a duplicate entry and stale entries are discarded when
// popped. Ties on priority are broken by insertion order, which fixes the
// expansion order and makes every run reproducible.

package algorithms

import (
	"container/heap"
	"sort"
)

// pqItem is one queue entry: a vertex, its priority, and a monotonically
// increasing insertion sequence used as the tie-break.
type pqItem struct {
	id       string
	priority float64
	seq      uint64
}

// minPQ is a min-heap of pqItem ordered by (priority, seq) ascending.
type minPQ struct {
	items   []pqItem
	nextSeq uint64
}

// Len reports the number of queued entries (stale duplicates included).
func (pq *minPQ) Len() int { return len(pq.items) }

// Less orders by priority, then by insertion sequence.
func (pq *minPQ) Less(i, j int) bool {
	if pq.items[i].priority != pq.items[j].priority {
		return pq.items[i].priority < pq.items[j].priority
	}

	return pq.items[i].seq < pq.items[j].seq
}

// Swap exchanges two entries.
func (pq *minPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x; called by heap.Push.
func (pq *minPQ) Push(x interface{}) { pq.items = append(pq.items, x.(pqItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *minPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}

// push enqueues id with the given priority, stamping the insertion sequence.
func (pq *minPQ) push(id string, priority float64) {
	heap.Push(pq, pqItem{id: id, priority: priority, seq: pq.nextSeq})
	pq.nextSeq++
}

// pop removes and returns the minimum entry. Callers must check Len first.
func (pq *minPQ) pop() pqItem {
	return heap.Pop(pq).(pqItem)
}

// snapshot returns the queued entries sorted by (priority, seq), skipping
// vertices already finalized, with duplicates collapsed to their best entry.
// Used for the "queue" overlay and the frontier list.
func (pq *minPQ) snapshot(finalized map[string]bool) []QueueEntry {
	cp := append([]pqItem(nil), pq.items...)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].priority != cp[j].priority {
			return cp[i].priority < cp[j].priority
		}

		return cp[i].seq < cp[j].seq
	})
	seen := make(map[string]bool, len(cp))
	out := make([]QueueEntry, 0, len(cp))
	for _, it := range cp {
		if finalized[it.id] || seen[it.id] {
			continue
		}
		seen[it.id] = true
		out = append(out, QueueEntry{ID: it.id, Priority: it.priority})
	}

	return out
}

// frontierIDs projects a snapshot onto vertex IDs, preserving order.
func frontierIDs(entries []QueueEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}

	return out
}
