//go:build unix

package dump

import (
	"os"

	"golang.org/x/sys/unix"
)

// flush makes the written data durable.
func flush(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}
