package verify

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/joshuapare/slotlist/list"
)

// DebugInfo identifies the call site of a verification, for diagnostics only.
type DebugInfo struct {
	Name string // label of the list being checked
	File string
	Func string
	Line int
}

func (d DebugInfo) String() string {
	return fmt.Sprintf("List %q called from %s %s (%d)", d.Name, d.File, d.Func, d.Line)
}

// Here returns a DebugInfo describing its caller.
func Here(name string) DebugInfo {
	info := DebugInfo{Name: name}
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return info
	}
	info.File = filepath.Base(file)
	info.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		info.Func = fn.Name()
	}
	return info
}

// ValidationError reports a list that failed verification.
type ValidationError struct {
	Mask Mask
	Info DebugInfo
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("list corrupted (%d: %v): %s", uint32(e.Mask), e.Mask, e.Info)
}

// Check verifies l and returns a *ValidationError if any invariant is
// violated, or nil. It never aborts; the caller decides what to do.
func Check(l *list.List, info DebugInfo) error {
	if m := List(l); m != 0 {
		return &ValidationError{Mask: m, Info: info}
	}
	return nil
}
