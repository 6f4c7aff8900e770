package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotlist/internal/logger"
	"github.com/joshuapare/slotlist/list"
)

// errCorrupted is returned when a script leaves the list failing verification.
var errCorrupted = errors.New("list failed verification")

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay an operation script and verify after every step",
		Long: `The run command replays a script of list operations, one per line,
verifying the list structure after each step.

Operations:
  new N                 insert-begin V          insert-end V
  insert-after ID V     insert-before ID V      find-id ID
  find-value V          delete-id ID            delete-value V
  grow N                linearize               verify

Use "-" to read the script from stdin.

Example:
  listctl run ops.txt
  listctl run ops.txt --json
  cat ops.txt | listctl run -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(args)
		},
	}
	return cmd
}

func runScript(args []string) error {
	r, err := replay(args[0])
	if err != nil {
		return err
	}
	return report(r)
}

// replay parses and runs the script at path ("-" for stdin).
func replay(path string) (*runner, error) {
	var src io.Reader = os.Stdin
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		src = f
		name = filepath.Base(path)
	}

	printVerbose("Replaying script: %s\n", name)

	ops, err := parseScript(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	r := newRunner(name, listOptions()...)
	if err := r.run(ops); err != nil {
		logger.Error("replay aborted", "script", name, "error", err)
		return nil, err
	}
	return r, nil
}

func listOptions() []list.Option {
	return []list.Option{
		list.WithLinearization(linearize),
		list.WithLogger(logger.L),
	}
}

// report prints the steps of r and fails if any step left the list corrupted.
func report(r *runner) error {
	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"script": r.name,
			"steps":  r.steps,
			"valid":  !r.corrupted(),
		}); err != nil {
			return err
		}
	} else {
		for _, s := range r.steps {
			printInfo("%4d: %-22s %-14s [%s]", s.Line, s.Op, result(s), paint(s.Status, s.Mask == 0))
			if s.Error != "" {
				printInfo("  %s", s.Error)
			}
			printInfo("\n")
			printVerbose("      chain: %s\n", formatChain(s.Chain))
		}
		if r.corrupted() {
			printInfo("\nResult: %s\n", paint("✗ INVALID", false))
		} else {
			printInfo("\nResult: %s\n", paint("✓ VALID", true))
		}
	}

	if r.corrupted() {
		return errCorrupted
	}
	return nil
}

func result(s step) string {
	switch {
	case s.ID != nil:
		return fmt.Sprintf("-> id %d", *s.ID)
	case s.Value != nil:
		return fmt.Sprintf("-> %d", *s.Value)
	default:
		return ""
	}
}

func formatChain(ids []int) string {
	if len(ids) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " -> ")
}
