package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/slotlist/internal/logger"
	"github.com/joshuapare/slotlist/list"
	"github.com/joshuapare/slotlist/list/verify"
)

// opSpec describes the arguments of a script operation.
type opSpec struct {
	arity int
	value int // index of the argument holding an element value, -1 if none
}

var opSpecs = map[string]opSpec{
	"new":           {1, -1},
	"insert-begin":  {1, 0},
	"insert-end":    {1, 0},
	"insert-after":  {2, 1},
	"insert-before": {2, 1},
	"find-id":       {1, -1},
	"find-value":    {1, 0},
	"delete-id":     {1, -1},
	"delete-value":  {1, 0},
	"grow":          {1, -1},
	"linearize":     {0, -1},
	"verify":        {0, -1},
}

// op is one parsed script line.
type op struct {
	Line int
	Name string
	Args []int
}

func (o op) String() string {
	parts := []string{o.Name}
	for _, a := range o.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, " ")
}

// parseScript reads one operation per line. Blank lines and lines starting
// with '#' are ignored. The first operation must be "new".
//
// Input is UTF-8; a UTF-8 or UTF-16 byte order mark switches the decoder, so
// scripts saved by Windows editors parse as well.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, decoder))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		spec, ok := opSpecs[fields[0]]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operation %q", line, fields[0])
		}
		if len(fields)-1 != spec.arity {
			return nil, fmt.Errorf("line %d: %s takes %d argument(s), got %d", line, fields[0], spec.arity, len(fields)-1)
		}

		o := op{Line: line, Name: fields[0], Args: make([]int, 0, spec.arity)}
		for i, f := range fields[1:] {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad argument %q: %w", line, f, err)
			}
			if i == spec.value && (n < math.MinInt32 || n > math.MaxInt32) {
				return nil, fmt.Errorf("line %d: value %d does not fit an element", line, n)
			}
			o.Args = append(o.Args, n)
		}

		if len(ops) == 0 && o.Name != "new" {
			return nil, fmt.Errorf("line %d: script must start with \"new\"", line)
		}
		if len(ops) > 0 && o.Name == "new" {
			return nil, fmt.Errorf("line %d: \"new\" may only appear once", line)
		}
		ops = append(ops, o)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	if len(ops) == 0 {
		return nil, errors.New("empty script")
	}
	return ops, nil
}

// step is the outcome of one operation.
type step struct {
	Line   int    `json:"line"`
	Op     string `json:"op"`
	ID     *int   `json:"id,omitempty"`
	Value  *int32 `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
	Mask   uint32 `json:"mask"`
	Status string `json:"status"`
	Chain  []int  `json:"chain"`
}

// runner applies parsed operations to a list, verifying after each one.
type runner struct {
	name  string
	l     *list.List
	opts  []list.Option
	steps []step
}

func newRunner(name string, opts ...list.Option) *runner {
	return &runner{name: name, opts: opts}
}

// corrupted reports whether any step failed verification.
func (r *runner) corrupted() bool {
	for _, s := range r.steps {
		if s.Mask != 0 {
			return true
		}
	}
	return false
}

// run applies every op. Construction failures abort the run; operation
// failures (full list, bad id...) are recorded and the run continues.
func (r *runner) run(ops []op) error {
	for _, o := range ops {
		s, err := r.apply(o)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", o.Line, o.Name, err)
		}
		r.steps = append(r.steps, s)
	}
	return nil
}

func (r *runner) apply(o op) (step, error) {
	s := step{Line: o.Line, Op: o.String()}
	setID := func(id int) { s.ID = &id }
	setValue := func(v list.Elem) { s.Value = &v }

	var err error
	switch o.Name {
	case "new":
		r.l, err = list.New(o.Args[0], r.opts...)
		if err != nil {
			return s, err
		}
	case "insert-begin":
		var id int
		id, err = r.l.InsertBegin(list.Elem(o.Args[0]))
		setID(id)
	case "insert-end":
		var id int
		id, err = r.l.InsertEnd(list.Elem(o.Args[0]))
		setID(id)
	case "insert-after":
		var id int
		id, err = r.l.InsertAfter(o.Args[0], list.Elem(o.Args[1]))
		setID(id)
	case "insert-before":
		var id int
		id, err = r.l.InsertBefore(o.Args[0], list.Elem(o.Args[1]))
		setID(id)
	case "find-id":
		setValue(r.l.FindByID(o.Args[0]))
	case "find-value":
		setID(r.l.FindByValue(list.Elem(o.Args[0])))
	case "delete-id":
		var v list.Elem
		v, err = r.l.DeleteByID(o.Args[0])
		setValue(v)
	case "delete-value":
		var id int
		id, err = r.l.DeleteByValue(list.Elem(o.Args[0]))
		setID(id)
	case "grow":
		err = r.l.Grow(o.Args[0])
		if errors.Is(err, list.ErrGrowFail) {
			return s, err
		}
	case "linearize":
		r.l.Linearize()
	case "verify":
		// Every step is verified below; an explicit verify also logs the call site.
		info := verify.DebugInfo{Name: r.name, File: r.name, Func: o.Name, Line: o.Line}
		if cerr := verify.Check(r.l, info); cerr != nil {
			logger.Warn("verify failed", "script", r.name, "line", o.Line, "error", cerr)
		}
	}
	if err != nil {
		s.Error = err.Error()
	}

	mask := verify.List(r.l)
	s.Mask = uint32(mask)
	s.Status = mask.String()
	s.Chain = chainOf(r.l)

	logger.Debug("step", "script", r.name, "line", o.Line, "op", s.Op, "mask", s.Status)
	return s, nil
}

// chainOf returns the occupied chain ids, head first.
func chainOf(l *list.List) []int {
	ids := []int{}
	for id := range l.All() {
		ids = append(ids, id)
	}
	return ids
}
