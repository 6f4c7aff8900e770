// Package verify validates the structure of a list.List.
//
// # Overview
//
// Layout runs every structural check against a list.Layout and returns a
// Mask with one bit per violated category. A zero Mask means the list is
// clean. The verifier never writes to the list and bounds-checks every
// access, so it is safe to run on corrupted storage.
//
//	if mask := verify.List(l); mask != 0 {
//	    fmt.Printf("corrupted: %v\n", mask)
//	}
//
// # Categories
//
//	ErrNoList    nil list or layout
//	ErrNoData    nil data slice
//	ErrNoNext    nil next slice
//	ErrNoPrev    nil prev slice
//	ErrHeadTail  head/tail bookkeeping inconsistent with the chain
//	ErrChain     cycle, bad link, shared slot or broken next/prev symmetry
//	ErrFreePrev  free slot with prev != -1
//	ErrFree      free head or free chain invalid
//	ErrSize      stored size disagrees with the slices or the slot count
//
// A missing list or missing slice short-circuits the structural checks.
//
// # Check
//
// Check wraps List for debug checkpoints. It returns a *ValidationError
// carrying the mask and the call site; what to do with it is up to the
// caller:
//
//	if err := verify.Check(l, verify.Here("queue")); err != nil {
//	    dumper.Dump(ctx, l.Layout(), err.(*verify.ValidationError).Mask, verify.Here("queue"))
//	    log.Fatal(err)
//	}
package verify
