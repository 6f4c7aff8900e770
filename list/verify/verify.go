package verify

import (
	"github.com/joshuapare/slotlist/internal/bounds"
	"github.com/joshuapare/slotlist/list"
)

// slot states recorded while walking the chains.
const (
	unseen uint8 = iota
	occupied
	free
)

// List verifies l. A nil list yields ErrNoList.
func List(l *list.List) Mask {
	if l == nil {
		return ErrNoList
	}
	return Layout(l.Layout())
}

// Layout runs every structural check on ly and returns the violated
// categories. It never writes to ly and never indexes outside its slices.
func Layout(ly *list.Layout) Mask {
	if ly == nil {
		return ErrNoList
	}

	var m Mask
	if ly.Data == nil {
		m |= ErrNoData
	}
	if ly.Next == nil {
		m |= ErrNoNext
	}
	if ly.Prev == nil {
		m |= ErrNoPrev
	}
	if m != 0 {
		return m
	}

	// Walk only the prefix every slice actually has.
	n := min(len(ly.Data), len(ly.Next), len(ly.Prev))
	if ly.Size <= 0 || ly.Size != len(ly.Data) || ly.Size != len(ly.Next) || ly.Size != len(ly.Prev) {
		m |= ErrSize
	}
	if n == 0 {
		return m
	}

	state := make([]uint8, n)
	used, mm := walkOccupied(ly, n, state)
	m |= mm
	freed, mm := walkFree(ly, n, state)
	m |= mm

	if used+freed != n {
		m |= ErrSize
	}
	return m
}

// walkOccupied follows next from the head, then prev from the tail, marking
// the slots it reaches. Returns the forward chain length.
func walkOccupied(ly *list.Layout, n int, state []uint8) (int, Mask) {
	var m Mask
	head, tail := ly.Head, ly.Tail

	if !bounds.Link(head, n) || !bounds.Link(tail, n) {
		return 0, ErrHeadTail
	}
	if (head == list.Nil) != (tail == list.Nil) {
		m |= ErrHeadTail
	}
	if head != list.Nil && ly.Prev[head] != list.Nil {
		m |= ErrHeadTail
	}
	if tail != list.Nil && ly.Next[tail] != list.Nil {
		m |= ErrHeadTail
	}

	// Forward: every step must be new, in range, and point back where we came from.
	count, last, id, done := 0, list.Nil, head, true
	for id != list.Nil {
		if !bounds.Index(id, n) || state[id] != unseen || count >= n {
			m |= ErrChain
			done = false
			break
		}
		state[id] = occupied
		if ly.Prev[id] != last {
			m |= ErrChain
		}
		last, id = id, ly.Next[id]
		count++
	}
	if done && last != tail {
		m |= ErrHeadTail
	}

	// Backward: must stay within the forward chain and end at the head.
	steps, first, id := 0, list.Nil, tail
	done = true
	for id != list.Nil {
		if !bounds.Index(id, n) || state[id] != occupied || steps >= n {
			m |= ErrChain
			done = false
			break
		}
		first, id = id, ly.Prev[id]
		steps++
	}
	if done && (first != head || steps != count) {
		m |= ErrHeadTail
	}

	return count, m
}

// walkFree follows the free chain from the free head. Returns its length.
func walkFree(ly *list.Layout, n int, state []uint8) (int, Mask) {
	var m Mask
	if !bounds.Link(ly.FreeHead, n) {
		return 0, ErrFree
	}

	count, id := 0, ly.FreeHead
	for id != list.Nil {
		if !bounds.Index(id, n) || state[id] != unseen || count >= n {
			m |= ErrFree
			break
		}
		state[id] = free
		if ly.Prev[id] != list.Nil {
			m |= ErrFreePrev
		}
		id = ly.Next[id]
		count++
	}
	return count, m
}
