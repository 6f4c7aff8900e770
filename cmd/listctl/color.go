package main

import (
	"os"

	"golang.org/x/term"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// stdoutIsTerminal is swapped out in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// useColor reports whether status output should carry ANSI colors.
// Redirected output and --no-color stay plain.
func useColor() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return stdoutIsTerminal()
}

// paint colors text green when ok and red otherwise.
func paint(text string, ok bool) string {
	if !useColor() {
		return text
	}
	if ok {
		return ansiGreen + text + ansiReset
	}
	return ansiRed + text + ansiReset
}
