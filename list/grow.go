package list

import (
	"fmt"
	"slices"

	"github.com/joshuapare/slotlist/internal/bounds"
)

// Grow extends the list to newSize slots. The new slots are chained
// oldSize → … → newSize-1 and prepended to the existing free chain, so the
// next allocation uses slot oldSize and previously free slots stay reachable.
// Ids of existing elements are unchanged.
//
// Returns ErrForbidden without touching the list if newSize <= Cap().
// Returns an error wrapping ErrGrowFail if storage cannot be extended
// (destroyed list, overflow, or newSize beyond the configured maximum);
// a list that failed to grow must be discarded.
//
// If linearization is enabled the occupied chain is compacted first.
func (l *List) Grow(newSize int) error {
	if newSize <= l.size {
		return ErrForbidden
	}
	if l.data == nil || l.next == nil || l.prev == nil {
		return fmt.Errorf("%w: list has no storage", ErrGrowFail)
	}

	added, err := bounds.CheckGrowth(l.size, newSize, l.maxCapacity)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGrowFail, err)
	}

	if l.linearize {
		l.Linearize()
	}

	oldSize := l.size
	l.data = slices.Grow(l.data, added)[:newSize]
	l.next = slices.Grow(l.next, added)[:newSize]
	l.prev = slices.Grow(l.prev, added)[:newSize]

	l.threadFree(oldSize, newSize, l.freeHead)
	l.freeHead = oldSize
	l.size = newSize

	l.log.Debug("list grown", "from", oldSize, "to", newSize, "added", added)
	return nil
}

// Linearize rewrites the storage so that the occupied chain sits in slots
// 0..Len()-1 in chain order and the free chain runs Len() → … → Cap()-1.
// It returns a map from old ids to new ids. Every id held by the caller is
// invalidated; use the returned map to translate them.
//
// Linearize allocates temporary storage of the list's capacity.
func (l *List) Linearize() map[int]int {
	moved := make(map[int]int)
	if l.size == 0 {
		return moved
	}

	data := make([]Elem, l.size)
	next := make([]int, l.size)
	prev := make([]int, l.size)

	n := 0
	for id, v := range l.All() {
		moved[id] = n
		data[n] = v
		prev[n] = n - 1
		next[n] = n + 1
		n++
	}

	copy(l.data, data)
	copy(l.next, next)
	copy(l.prev, prev)

	if n == 0 {
		l.head, l.tail = Nil, Nil
	} else {
		l.head, l.tail = 0, n-1
		l.next[n-1] = Nil
	}

	if n < l.size {
		l.threadFree(n, l.size, Nil)
		l.freeHead = n
	} else {
		l.freeHead = Nil
	}

	l.log.Debug("list linearized", "len", n, "cap", l.size)
	return moved
}
