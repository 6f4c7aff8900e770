package list

import "github.com/joshuapare/slotlist/internal/bounds"

// AllocateSlot pops the head of the free chain and returns its id, or Nil when
// no slot is free. The returned slot has next and prev set to Nil and is not
// linked into the occupied chain. AllocateSlot never grows the list.
func (l *List) AllocateSlot() int {
	id := l.freeHead
	if id == Nil {
		l.log.Debug("free chain exhausted", "cap", l.size)
		return Nil
	}

	l.freeHead = l.next[id]
	l.next[id] = Nil
	return id
}

// ReleaseSlot pushes id onto the free chain as its new head, poisoning its
// data. The caller must have unlinked id from the occupied chain first.
// Out-of-range ids are ignored.
func (l *List) ReleaseSlot(id int) {
	if !bounds.Index(id, l.size) {
		return
	}
	l.data[id] = Poison
	l.prev[id] = Nil
	l.next[id] = l.freeHead
	l.freeHead = id
}
