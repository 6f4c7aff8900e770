// Package list provides a doubly-linked list stored in flat parallel slices.
//
// # Overview
//
// A List keeps three slices of equal length, data, next and prev, and links
// elements by slot index instead of by pointer. Two chains share the next
// slice:
//
//   - The occupied chain: a doubly-linked chain through next and prev,
//     running from Head to Tail.
//   - The free chain: a singly-linked LIFO pool through next, rooted at the
//     free head. Free slots always have prev == Nil and data == Poison.
//
// Slot ids returned by the insert operations are stable: they do not change
// when the list grows, only when Linearize is called explicitly.
//
// # Usage Example
//
//	l, err := list.New(3)
//	if err != nil {
//	    return err
//	}
//
//	a, _ := l.InsertEnd(10) // a == 0
//	b, _ := l.InsertEnd(20) // b == 1
//	l.InsertAfter(a, 15)    // chain: 10 15 20
//
//	v, err := l.DeleteByID(b) // v == 20, slot 1 is now the free head
//
//	if _, err := l.InsertEnd(40); errors.Is(err, list.ErrFull) {
//	    err = l.Grow(8)
//	}
//
// # Capacity
//
// Inserts never grow the list. When the free chain is empty they fail with
// ErrFull and return Nil; growing is the caller's decision:
//
//	err := l.Grow(l.Cap() * 2)
//
// Growth only extends. Asking for a size that is not larger than the current
// capacity fails with ErrForbidden and leaves the list untouched.
//
// # Verification
//
// The list package never checks its own structure. Use the verify
// subpackage at debug checkpoints:
//
//	if mask := verify.List(l); mask != 0 {
//	    log.Fatalf("list corrupted: %v", mask)
//	}
//
// # Thread Safety
//
// List instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Related Packages
//
//   - github.com/joshuapare/slotlist/list/verify: Structural verifier
//   - github.com/joshuapare/slotlist/list/dump: Graphviz and HTML dumps
package list
