//go:build !unix

package dump

import "os"

// flush makes the written data durable.
func flush(f *os.File) error {
	return f.Sync()
}
