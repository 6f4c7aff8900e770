// Package testutil provides helpers shared by tests across packages.
package testutil

import (
	"testing"

	"github.com/joshuapare/slotlist/list"
)

// NewList creates a list of the given capacity and appends values in order.
// Fails the test if construction or any insert fails.
//
// Example:
//
//	l := testutil.NewList(t, 4, 10, 20, 30)
func NewList(t testing.TB, capacity int, values ...list.Elem) *list.List {
	t.Helper()

	l, err := list.New(capacity)
	if err != nil {
		t.Fatalf("Failed to create list: %v", err)
	}
	for _, v := range values {
		if _, err := l.InsertEnd(v); err != nil {
			t.Fatalf("Failed to insert %d: %v", v, err)
		}
	}
	return l
}

// Chain returns the ids of the occupied chain, head first.
func Chain(l *list.List) []int {
	ids := []int{}
	for id := range l.All() {
		ids = append(ids, id)
	}
	return ids
}

// FreeChain returns the ids of the free chain, free head first. It stops
// after Cap() steps so it terminates on a cyclic chain.
func FreeChain(l *list.List) []int {
	ly := l.Layout()
	ids := []int{}
	for id := ly.FreeHead; id >= 0 && id < len(ly.Next) && len(ids) < ly.Size; id = ly.Next[id] {
		ids = append(ids, id)
	}
	return ids
}
