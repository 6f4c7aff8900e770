package list

import (
	"iter"
	"log/slog"

	"github.com/joshuapare/slotlist/internal/bounds"
)

// DefaultMaxCapacity is the largest capacity a List may reach unless
// overridden with WithMaxCapacity.
const DefaultMaxCapacity = 1 << 26

// List is a doubly-linked list of Elem stored in parallel slices.
// The zero value is not ready to use; call New.
type List struct {
	data []Elem // Poison for free slots
	next []int  // occupied: next element; free: next free slot
	prev []int  // occupied: previous element; free: always Nil

	freeHead int // first free slot, Nil if full
	head     int // first occupied slot, Nil if empty
	tail     int // last occupied slot, Nil if empty
	size     int // capacity of all three slices

	linearize   bool
	maxCapacity int
	log         *slog.Logger
}

// Option configures a List.
type Option func(*List)

// WithLinearization makes Grow compact the occupied chain into slots
// 0..Len()-1 before extending storage. Ids are renumbered when this runs.
func WithLinearization(enabled bool) Option {
	return func(l *List) {
		l.linearize = enabled
	}
}

// WithMaxCapacity caps the capacity New and Grow accept.
func WithMaxCapacity(n int) Option {
	return func(l *List) {
		if n > 0 {
			l.maxCapacity = n
		}
	}
}

// WithLogger sets the logger used for growth and exhaustion events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.log = logger
		}
	}
}

// New creates a list with the given capacity. Every slot starts free: data is
// Poison, prev is Nil and the free chain runs 0 → 1 → … → capacity-1.
func New(capacity int, opts ...Option) (*List, error) {
	l := &List{
		freeHead:    Nil,
		head:        Nil,
		tail:        Nil,
		maxCapacity: DefaultMaxCapacity,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	if capacity <= 0 || capacity > l.maxCapacity {
		return nil, ErrAlloc
	}

	l.data = make([]Elem, capacity)
	l.next = make([]int, capacity)
	l.prev = make([]int, capacity)
	l.size = capacity
	l.threadFree(0, capacity, Nil)
	l.freeHead = 0

	return l, nil
}

// threadFree resets slots [from, to) to the free state and chains them in
// increasing order, with the last one linking to tail.
func (l *List) threadFree(from, to, tail int) {
	for i := from; i < to; i++ {
		l.data[i] = Poison
		l.prev[i] = Nil
		l.next[i] = i + 1
	}
	l.next[to-1] = tail
}

// Destroy releases the list's storage. The list must not be used afterwards.
func (l *List) Destroy() {
	l.data, l.next, l.prev = nil, nil, nil
	l.freeHead, l.head, l.tail = Nil, Nil, Nil
	l.size = 0
}

// Copy copies src into dst. dst must already be constructed with the same
// capacity as src; Copy never allocates. On ErrCopy dst is left in an
// unspecified state and must be discarded.
func Copy(dst, src *List) error {
	if dst == nil || src == nil {
		return ErrCopy
	}
	if src.data == nil || src.next == nil || src.prev == nil ||
		dst.data == nil || dst.next == nil || dst.prev == nil {
		return ErrCopy
	}
	if dst.size != src.size ||
		len(dst.data) != src.size || len(dst.next) != src.size || len(dst.prev) != src.size {
		return ErrCopy
	}

	copy(dst.data, src.data)
	copy(dst.next, src.next)
	copy(dst.prev, src.prev)

	dst.freeHead = src.freeHead
	dst.head = src.head
	dst.tail = src.tail
	dst.size = src.size
	return nil
}

// Clone returns an independent copy of the list with the same options.
func (l *List) Clone() (*List, error) {
	dst, err := New(l.size,
		WithLinearization(l.linearize),
		WithMaxCapacity(l.maxCapacity),
		WithLogger(l.log),
	)
	if err != nil {
		return nil, err
	}
	if err := Copy(dst, l); err != nil {
		return nil, err
	}
	return dst, nil
}

// Layout returns a read-only view of the list's storage.
func (l *List) Layout() *Layout {
	return &Layout{
		Data:     l.data,
		Next:     l.next,
		Prev:     l.prev,
		FreeHead: l.freeHead,
		Head:     l.head,
		Tail:     l.tail,
		Size:     l.size,
	}
}

// Cap returns the number of slots.
func (l *List) Cap() int { return l.size }

// Head returns the id of the first element, or Nil if the list is empty.
func (l *List) Head() int { return l.head }

// Tail returns the id of the last element, or Nil if the list is empty.
func (l *List) Tail() int { return l.tail }

// FreeHead returns the id of the next slot AllocateSlot will hand out.
func (l *List) FreeHead() int { return l.freeHead }

// IsOccupied reports whether id refers to a slot holding an element.
// Free slots always have prev == Nil, so only the head may be occupied
// without a predecessor.
func (l *List) IsOccupied(id int) bool {
	if !bounds.Index(id, len(l.prev)) {
		return false
	}
	return l.prev[id] != Nil || id == l.head
}

// Next returns the id following id in the occupied chain, or Nil.
func (l *List) Next(id int) int {
	if !l.IsOccupied(id) {
		return Nil
	}
	return l.next[id]
}

// Prev returns the id preceding id in the occupied chain, or Nil.
func (l *List) Prev(id int) int {
	if !l.IsOccupied(id) {
		return Nil
	}
	return l.prev[id]
}

// Len walks the occupied chain and returns the number of elements.
func (l *List) Len() int {
	n := 0
	for id := l.head; id != Nil && n < l.size; id = l.next[id] {
		n++
	}
	return n
}

// FreeLen walks the free chain and returns the number of free slots.
func (l *List) FreeLen() int {
	n := 0
	for id := l.freeHead; id != Nil && n < l.size; id = l.next[id] {
		n++
	}
	return n
}

// All returns an iterator over (id, value) pairs in chain order.
// The list must not be modified during iteration.
func (l *List) All() iter.Seq2[int, Elem] {
	return func(yield func(int, Elem) bool) {
		steps := 0
		for id := l.head; id != Nil && steps < l.size; id = l.next[id] {
			if !yield(id, l.data[id]) {
				return
			}
			steps++
		}
	}
}

// Values returns the elements in chain order.
func (l *List) Values() []Elem {
	out := make([]Elem, 0, l.size)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}
