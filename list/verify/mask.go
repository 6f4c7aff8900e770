package verify

import "strings"

// Mask is a bit-vector of violated invariant categories.
type Mask uint32

const (
	ErrNoList   Mask = 1 << iota // nil list
	ErrNoData                    // nil data slice
	ErrNoNext                    // nil next slice
	ErrNoPrev                    // nil prev slice
	ErrHeadTail                  // head or tail incorrect
	ErrChain                     // occupied chain broken or cyclic
	ErrFreePrev                  // free slot with prev != -1
	ErrFree                      // free head or free chain incorrect
	ErrSize                      // size incorrect
)

var categories = []struct {
	bit     Mask
	name    string
	message string
}{
	{ErrNoList, "no-list", "List nullptr"},
	{ErrNoData, "no-data", "List data nullptr"},
	{ErrNoNext, "no-next", "List next nullptr"},
	{ErrNoPrev, "no-prev", "List prev nullptr"},
	{ErrHeadTail, "head-tail", "List head or tail incorrect"},
	{ErrChain, "chain", "List chain in next or prev has loops"},
	{ErrFreePrev, "free-prev", "Free list node has prev != -1"},
	{ErrFree, "free", "List fre incorrect"},
	{ErrSize, "size", "List size incorrect"},
}

// Has reports whether every bit of b is set in m.
func (m Mask) Has(b Mask) bool {
	return m&b == b
}

// Errors returns a human-readable message for every set bit, in bit order.
func (m Mask) Errors() []string {
	var out []string
	for _, c := range categories {
		if m&c.bit != 0 {
			out = append(out, c.message)
		}
	}
	return out
}

// String lists the short names of the set bits, e.g. "chain|size".
func (m Mask) String() string {
	if m == 0 {
		return "ok"
	}
	var names []string
	for _, c := range categories {
		if m&c.bit != 0 {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, "|")
}
