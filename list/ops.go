package list

// InsertBegin inserts v as the new head and returns its id.
// Returns Nil and ErrFull when no slot is free.
func (l *List) InsertBegin(v Elem) (int, error) {
	id := l.AllocateSlot()
	if id == Nil {
		return Nil, ErrFull
	}

	l.data[id] = v
	l.link(id, Nil, l.head)
	return id, nil
}

// InsertEnd inserts v as the new tail and returns its id.
// Returns Nil and ErrFull when no slot is free.
func (l *List) InsertEnd(v Elem) (int, error) {
	id := l.AllocateSlot()
	if id == Nil {
		return Nil, ErrFull
	}

	l.data[id] = v
	l.link(id, l.tail, Nil)
	return id, nil
}

// InsertAfter inserts v right after the element with the given id.
// Returns Nil and ErrBadID if id is not occupied, or ErrFull when no slot is free.
func (l *List) InsertAfter(id int, v Elem) (int, error) {
	if !l.IsOccupied(id) {
		return Nil, ErrBadID
	}
	n := l.AllocateSlot()
	if n == Nil {
		return Nil, ErrFull
	}

	l.data[n] = v
	l.link(n, id, l.next[id])
	return n, nil
}

// InsertBefore inserts v right before the element with the given id.
// Returns Nil and ErrBadID if id is not occupied, or ErrFull when no slot is free.
func (l *List) InsertBefore(id int, v Elem) (int, error) {
	if !l.IsOccupied(id) {
		return Nil, ErrBadID
	}
	n := l.AllocateSlot()
	if n == Nil {
		return Nil, ErrFull
	}

	l.data[n] = v
	l.link(n, l.prev[id], id)
	return n, nil
}

// link splices slot id between before and after, either of which may be Nil,
// and keeps head and tail in sync.
func (l *List) link(id, before, after int) {
	l.prev[id] = before
	l.next[id] = after

	if before == Nil {
		l.head = id
	} else {
		l.next[before] = id
	}
	if after == Nil {
		l.tail = id
	} else {
		l.prev[after] = id
	}
}

// unlink removes occupied slot id from the chain, joining its neighbours.
func (l *List) unlink(id int) {
	before, after := l.prev[id], l.next[id]

	if before == Nil {
		l.head = after
	} else {
		l.next[before] = after
	}
	if after == Nil {
		l.tail = before
	} else {
		l.prev[after] = before
	}
}

// FindByID returns the value stored at id, or Poison if id is out of bounds
// or free.
func (l *List) FindByID(id int) Elem {
	if !l.IsOccupied(id) {
		return Poison
	}
	return l.data[id]
}

// FindByValue walks the occupied chain from the head and returns the id of
// the first element equal to v, or Nil. This is O(n); keep ids around
// instead where possible.
func (l *List) FindByValue(v Elem) int {
	for id, val := range l.All() {
		if val == v {
			return id
		}
	}
	return Nil
}

// DeleteByID removes the element at id and returns its value. The slot
// becomes the head of the free chain and is the next one handed out.
// Returns Poison and ErrBadID if id is out of bounds or already free.
func (l *List) DeleteByID(id int) (Elem, error) {
	if !l.IsOccupied(id) {
		return Poison, ErrBadID
	}

	v := l.data[id]
	l.unlink(id)
	l.ReleaseSlot(id)
	return v, nil
}

// DeleteByValue removes the first element equal to v and returns the id it
// occupied. Returns Nil and ErrNotFound if v is absent.
func (l *List) DeleteByValue(v Elem) (int, error) {
	id := l.FindByValue(v)
	if id == Nil {
		return Nil, ErrNotFound
	}
	if _, err := l.DeleteByID(id); err != nil {
		return Nil, err
	}
	return id, nil
}
