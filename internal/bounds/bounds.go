package bounds

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Index reports whether i is a valid slot index for a sequence of length n.
func Index(i, n int) bool {
	return i >= 0 && i < n
}

// Link reports whether i is a valid link value: either -1 (no link) or a
// valid slot index for a sequence of length n.
func Link(i, n int) bool {
	return i == -1 || Index(i, n)
}

// CheckGrowth validates that growing a sequence of length cur to next stays
// within limit. Returns the number of new slots, or an error describing the
// specific failure (non-increasing size, overflow or over the limit).
//
// This is the recommended way to validate a resize before touching storage:
//
//	added, err := bounds.CheckGrowth(len(data), newSize, maxSlots)
//	if err != nil {
//	    return fmt.Errorf("grow: %w", err)
//	}
func CheckGrowth(cur, next, limit int) (int, error) {
	if cur < 0 {
		return 0, fmt.Errorf("negative length: %d", cur)
	}
	if next <= cur {
		return 0, fmt.Errorf("non-increasing size: %d -> %d", cur, next)
	}
	added, ok := AddOverflowSafe(next, -cur)
	if !ok {
		return 0, fmt.Errorf("overflow: %d - %d", next, cur)
	}
	if limit > 0 && next > limit {
		return 0, fmt.Errorf("limit: size=%d > max=%d", next, limit)
	}
	return added, nil
}
