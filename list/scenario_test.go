package list_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotlist/internal/testutil"
	"github.com/joshuapare/slotlist/list"
	"github.com/joshuapare/slotlist/list/verify"
)

type Elem = list.Elem

func requireClean(t *testing.T, l *list.List) {
	t.Helper()
	mask := verify.List(l)
	require.Zero(t, mask, "list should verify clean, got %v", mask)
}

// TestScenario_Capacity3 walks the reference fill/delete/reuse sequence.
func TestScenario_Capacity3(t *testing.T) {
	l, err := list.New(3)
	require.NoError(t, err)
	requireClean(t, l)
	require.Equal(t, []int{0, 1, 2}, testutil.FreeChain(l))

	steps := []struct {
		value Elem
		want  int
		chain []int
	}{
		{10, 0, []int{0}},
		{20, 1, []int{0, 1}},
		{30, 2, []int{0, 1, 2}},
	}
	for _, s := range steps {
		id, err := l.InsertEnd(s.value)
		require.NoError(t, err)
		require.Equal(t, s.want, id)
		require.Equal(t, s.chain, testutil.Chain(l))
		requireClean(t, l)
	}

	id, err := l.InsertEnd(40)
	require.ErrorIs(t, err, list.ErrFull)
	require.Equal(t, list.Nil, id)
	requireClean(t, l)

	v, err := l.DeleteByID(1)
	require.NoError(t, err)
	require.Equal(t, Elem(20), v)
	require.Equal(t, []int{0, 2}, testutil.Chain(l))
	require.Equal(t, []int{1}, testutil.FreeChain(l))
	requireClean(t, l)

	id, err = l.InsertEnd(50)
	require.NoError(t, err)
	require.Equal(t, 1, id, "freed slot is reused")
	require.Equal(t, []int{0, 2, 1}, testutil.Chain(l))
	require.Equal(t, []Elem{10, 30, 50}, l.Values())
	requireClean(t, l)
}

func TestProperty_FreshListsVerifyClean(t *testing.T) {
	for _, n := range []int{1, 2, 3, 16, 257} {
		l, err := list.New(n)
		require.NoError(t, err)
		requireClean(t, l)
		require.Equal(t, n, l.FreeLen())
		require.Equal(t, 0, l.FreeHead())
		require.Equal(t, verify.List(l), verify.List(l), "verify is idempotent")
	}
}

func TestProperty_FillThenOverflow(t *testing.T) {
	const n = 32
	l, err := list.New(n)
	require.NoError(t, err)

	got := map[int]Elem{}
	for i := 0; i < n; i++ {
		v := Elem(i * 7)
		var id int
		if i%2 == 0 {
			id, err = l.InsertEnd(v)
		} else {
			id, err = l.InsertBegin(v)
		}
		require.NoError(t, err)
		got[id] = v
		requireClean(t, l)
	}
	for id, v := range got {
		require.Equal(t, v, l.FindByID(id))
	}

	before := l.Layout()
	data := append([]Elem(nil), before.Data...)
	next := append([]int(nil), before.Next...)

	id, err := l.InsertEnd(1)
	require.ErrorIs(t, err, list.ErrFull)
	require.Equal(t, list.Nil, id)
	require.Equal(t, data, l.Layout().Data)
	require.Equal(t, next, l.Layout().Next)
	requireClean(t, l)
}

func TestProperty_RandomOpsStayClean(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	l, err := list.New(8)
	require.NoError(t, err)

	live := []int{}
	for step := 0; step < 2000; step++ {
		switch op := r.IntN(7); {
		case op == 0 && len(live) > 0:
			idx := r.IntN(len(live))
			_, err := l.DeleteByID(live[idx])
			require.NoError(t, err)
			live = append(live[:idx], live[idx+1:]...)
		case op == 1 && len(live) > 0:
			id, err := l.InsertAfter(live[r.IntN(len(live))], Elem(step))
			if err == nil {
				live = append(live, id)
			} else {
				require.ErrorIs(t, err, list.ErrFull)
			}
		case op == 2 && len(live) > 0:
			id, err := l.InsertBefore(live[r.IntN(len(live))], Elem(step))
			if err == nil {
				live = append(live, id)
			} else {
				require.ErrorIs(t, err, list.ErrFull)
			}
		case op == 3 && l.Cap() < 256:
			require.NoError(t, l.Grow(l.Cap()+r.IntN(8)+1))
		default:
			id, err := l.InsertEnd(Elem(step))
			if err == nil {
				live = append(live, id)
			} else {
				require.ErrorIs(t, err, list.ErrFull)
			}
		}
		requireClean(t, l)
		require.Equal(t, len(live), l.Len())
		require.Equal(t, l.Cap(), l.Len()+l.FreeLen())
	}
}

func TestProperty_LinearizeStaysClean(t *testing.T) {
	l, err := list.New(10, list.WithLinearization(true))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		_, err := l.InsertBegin(Elem(i))
		require.NoError(t, err)
	}
	for _, v := range []Elem{3, 6, 9} {
		_, err := l.DeleteByValue(v)
		require.NoError(t, err)
	}
	want := l.Values()

	require.NoError(t, l.Grow(20))
	requireClean(t, l)
	require.Equal(t, want, l.Values())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, testutil.Chain(l))
}

func TestProperty_CopyVerifiesClean(t *testing.T) {
	src, err := list.New(5)
	require.NoError(t, err)
	_, _ = src.InsertEnd(1)
	_, _ = src.InsertEnd(2)

	dst, err := list.New(5)
	require.NoError(t, err)
	require.NoError(t, list.Copy(dst, src))
	requireClean(t, dst)
	require.Equal(t, src.Values(), dst.Values())
}
