package engine

import (
	"sort"
	"sync"
)

// nationLocks serializes in-process mutations per nation, closing the
// read-modify-write race between concurrent commands against the same ledger.
// Cross-process writers are caught by the version check on the nation row.
type nationLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newNationLocks() *nationLocks {
	return &nationLocks{locks: make(map[int64]*sync.Mutex)}
}

func (n *nationLocks) get(id int64) *sync.Mutex {
	n.mu.Lock()
	defer n.mu.Unlock()
	l, ok := n.locks[id]
	if !ok {
		l = &sync.Mutex{}
		n.locks[id] = l
	}
	return l
}

// acquire locks every id in ascending order so two trades between the same
// pair of nations cannot deadlock. The returned func releases in reverse.
func (n *nationLocks) acquire(ids ...int64) func() {
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	held := make([]*sync.Mutex, 0, len(sorted))
	var last int64 = -1
	for _, id := range sorted {
		if id == last {
			continue
		}
		last = id
		l := n.get(id)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
