package list

// Elem is the element type stored in a List.
type Elem = int32

const (
	// Poison marks the data of a slot that holds nothing.
	// Values equal to Poison should not be stored.
	Poison Elem = 0xD00D1E

	// Nil is the "no slot" link value and the id returned by failed operations.
	Nil = -1
)

// Layout is a read-only view of a List's storage, used by the verifier and
// the dump collaborator. The slices alias the list's own storage and are only
// valid until the next mutating call; they must not be written to.
type Layout struct {
	Data []Elem
	Next []int
	Prev []int

	FreeHead int // first free slot, Nil if none
	Head     int // first occupied slot, Nil if empty
	Tail     int // last occupied slot, Nil if empty
	Size     int // capacity
}
