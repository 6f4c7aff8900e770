package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return tty }
	t.Cleanup(func() { stdoutIsTerminal = orig })
}

func TestPaint(t *testing.T) {
	tests := []struct {
		name    string
		tty     bool
		noColor bool
		ok      bool
		want    string
	}{
		{"redirected", false, false, true, "ok"},
		{"tty ok", true, false, true, "\x1b[32mok\x1b[0m"},
		{"tty bad", true, false, false, "\x1b[31mok\x1b[0m"},
		{"no-color flag", true, true, true, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			t.Setenv("NO_COLOR", "")
			withTerminal(t, tt.tty)
			noColor = tt.noColor
			require.Equal(t, tt.want, paint("ok", tt.ok))
		})
	}
}

func TestPaint_NoColorEnv(t *testing.T) {
	resetFlags()
	withTerminal(t, true)
	t.Setenv("NO_COLOR", "1")
	require.Equal(t, "ok", paint("ok", true))
}

func TestReport_ColorsBothResults(t *testing.T) {
	resetFlags()
	t.Setenv("NO_COLOR", "")
	withTerminal(t, true)

	output, err := captureOutput(t, runDemo)
	require.NoError(t, err)
	require.Contains(t, output, "Result: \x1b[32m✓ VALID\x1b[0m")
	require.Contains(t, output, "[\x1b[32mok\x1b[0m]")

	r := newRunner("bad")
	r.steps = []step{{Line: 1, Op: "new 1", Mask: 1 << 5, Status: "chain"}}
	output, err = captureOutput(t, func() error { return report(r) })
	require.ErrorIs(t, err, errCorrupted)
	require.Contains(t, output, "Result: \x1b[31m✗ INVALID\x1b[0m")
	require.Contains(t, output, "[\x1b[31mchain\x1b[0m]")
}
