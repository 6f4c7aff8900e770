package dump

import (
	"context"
	"fmt"
	"os/exec"
)

// Renderer turns a DOT file into an image. It reports whether an image was
// produced.
type Renderer interface {
	Render(ctx context.Context, dotPath, imagePath string) (bool, error)
}

// NopRenderer renders nothing.
type NopRenderer struct{}

func (NopRenderer) Render(context.Context, string, string) (bool, error) {
	return false, nil
}

// DotRenderer runs the Graphviz dot binary.
type DotRenderer struct {
	Binary string // default "dot"
	Format string // default "png"
}

func (r DotRenderer) Render(ctx context.Context, dotPath, imagePath string) (bool, error) {
	bin := r.Binary
	if bin == "" {
		bin = "dot"
	}
	format := r.Format
	if format == "" {
		format = "png"
	}

	cmd := exec.CommandContext(ctx, bin, "-T"+format, dotPath, "-o", imagePath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return false, fmt.Errorf("%s: %w: %s", bin, err, out)
	}
	return true, nil
}
