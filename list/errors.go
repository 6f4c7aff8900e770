package list

import "errors"

var (
	// ErrAlloc indicates that backing storage could not be obtained (bad capacity).
	ErrAlloc = errors.New("list: allocation failed")

	// ErrCopy indicates that a copy could not be performed; the destination must be discarded.
	ErrCopy = errors.New("list: copy failed")

	// ErrForbidden indicates a grow request that does not increase capacity.
	ErrForbidden = errors.New("list: grow to non-increasing size is forbidden")

	// ErrGrowFail indicates that growth started but storage could not be extended.
	ErrGrowFail = errors.New("list: grow failed")

	// ErrFull indicates that no free slot is left.
	ErrFull = errors.New("list: no free slot")

	// ErrBadID indicates an out-of-bounds id or an id that refers to a free slot.
	ErrBadID = errors.New("list: bad element id")

	// ErrNotFound indicates that a value is not present in the occupied chain.
	ErrNotFound = errors.New("list: value not found")
)
