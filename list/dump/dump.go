package dump

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joshuapare/slotlist/list"
	"github.com/joshuapare/slotlist/list/verify"
)

// ReportName is the HTML file every dump is appended to.
const ReportName = "dump.html"

// Report describes the files written by one Dump call.
type Report struct {
	ID        int
	DotPath   string
	ImagePath string // empty when nothing was rendered
	HTMLPath  string
	Mask      verify.Mask
}

// Dumper writes numbered dumps into a directory.
type Dumper struct {
	dir      string
	opts     Options
	renderer Renderer
	log      *slog.Logger
	seq      int
}

// Option configures a Dumper.
type Option func(*Dumper)

// WithRenderer sets the renderer used for images.
func WithRenderer(r Renderer) Option {
	return func(d *Dumper) {
		if r != nil {
			d.renderer = r
		}
	}
}

// WithOptions sets the DOT generation options.
func WithOptions(o Options) Option {
	return func(d *Dumper) {
		d.opts = o
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dumper) {
		if l != nil {
			d.log = l
		}
	}
}

// New creates a Dumper writing into dir, creating it if needed.
func New(dir string, opts ...Option) (*Dumper, error) {
	d := &Dumper{
		dir:      dir,
		opts:     DefaultOptions(),
		renderer: NopRenderer{},
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dump dir: %w", err)
	}
	return d, nil
}

// Dir returns the directory dumps are written to.
func (d *Dumper) Dir() string { return d.dir }

// Dump writes the DOT file for ly, renders it and appends an entry to the
// HTML report.
func (d *Dumper) Dump(ctx context.Context, ly *list.Layout, mask verify.Mask, info verify.DebugInfo) (Report, error) {
	d.seq++
	rep := Report{
		ID:       d.seq,
		DotPath:  filepath.Join(d.dir, fmt.Sprintf("dump_%d.dot", d.seq)),
		HTMLPath: filepath.Join(d.dir, ReportName),
		Mask:     mask,
	}

	src := DOT(rep.ID, ly, mask, info, d.opts)
	if err := writeFile(rep.DotPath, []byte(src)); err != nil {
		return rep, fmt.Errorf("write dot: %w", err)
	}

	img := filepath.Join(d.dir, fmt.Sprintf("graph_dump_%d.png", rep.ID))
	rendered, err := d.renderer.Render(ctx, rep.DotPath, img)
	if err != nil {
		return rep, fmt.Errorf("render %s: %w", rep.DotPath, err)
	}
	if rendered {
		rep.ImagePath = img
	}

	if err := appendFile(rep.HTMLPath, entry(rep, src, mask, info)); err != nil {
		return rep, fmt.Errorf("append report: %w", err)
	}

	d.log.Debug("list dumped", "id", rep.ID, "mask", mask.String(), "dot", rep.DotPath, "rendered", rendered)
	return rep, nil
}

// entry builds the HTML fragment for one dump.
func entry(rep Report, src string, mask verify.Mask, info verify.DebugInfo) []byte {
	var out []byte
	out = fmt.Appendf(out, "<h3>dump %d: %s</h3>\n", rep.ID, html.EscapeString(info.String()))
	out = fmt.Appendf(out, "<pre>%s</pre>\n", html.EscapeString(mask.String()))
	if rep.ImagePath != "" {
		out = fmt.Appendf(out, "<img src=\"./%s\">\n", filepath.Base(rep.ImagePath))
	} else {
		out = fmt.Appendf(out, "<pre>%s</pre>\n", html.EscapeString(src))
	}
	return out
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return finish(f, data)
}

func appendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return finish(f, data)
}

// finish writes data, flushes it to disk and closes f.
func finish(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := flush(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
