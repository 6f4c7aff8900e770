package dump

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotlist/internal/testutil"
	"github.com/joshuapare/slotlist/list"
	"github.com/joshuapare/slotlist/list/verify"
)

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return opts
}

func TestDOT_Structure(t *testing.T) {
	l := testutil.NewList(t, 4, 10, 20, 30)
	_, err := l.DeleteByID(1)
	require.NoError(t, err)

	out := DOT(7, l.Layout(), 0, verify.DebugInfo{Name: "l", File: "x.go", Func: "main", Line: 3}, fixedOptions())
	t.Logf("DOT output:\n%s", out)

	firstLine, _, _ := strings.Cut(out, "\n")
	require.True(t, strings.HasPrefix(out, "digraph"))
	require.Contains(t, firstLine, "list_7")
	require.Contains(t, out, `rankdir="LR"`)
	require.Contains(t, out, "cluster_")

	require.Contains(t, out, `label=" 0 | data = 10 | <fnext> next = 2 | <fprev> prev = -1 "`)
	require.Contains(t, out, `label=" 2 | data = 30 | <fnext> next = -1 | <fprev> prev = 0 "`)
	require.Contains(t, out, `label=" 1 | data = 13634846 | <fnext> next = 3 | <fprev> prev = -1 "`)
	require.Contains(t, out, `shape="record"`)

	// 0 -> 2 is the only occupied next link, 1 -> 3 the only free one,
	// 2 -> 0 the only prev link.
	require.Equal(t, 1, strings.Count(out, `color="blue"`))
	require.Equal(t, 1, strings.Count(out, `color="grey"`))
	require.Equal(t, 1, strings.Count(out, `color="red"`))
	require.Equal(t, 3, strings.Count(out, `style="invis"`))
	require.Equal(t, 2, strings.Count(out, `fillcolor="#4CB944"`))
	require.Equal(t, 2, strings.Count(out, `fillcolor="#F5EE9E"`))

	// Three invisible, three colored and the free-head pointer.
	require.Equal(t, 7, strings.Count(out, "->"))

	require.Contains(t, out, `label="List ok"`)
	require.Contains(t, out, `List \"l\" called from x.go main (3)`)
	require.Contains(t, out, "Tue Jan  2 03:04:05 2024")
}

func TestDOT_HeadIsOccupied(t *testing.T) {
	l := testutil.NewList(t, 2, 5)
	out := DOT(1, l.Layout(), 0, verify.DebugInfo{}, fixedOptions())

	require.Equal(t, 1, strings.Count(out, `fillcolor="#4CB944"`))
	require.Equal(t, 1, strings.Count(out, `fillcolor="#F5EE9E"`))
}

func TestDOT_ErrorsAndCorruption(t *testing.T) {
	ly := &list.Layout{
		Data:     []list.Elem{1, 2},
		Next:     []int{1, 99},
		Prev:     []int{-1},
		FreeHead: 5,
		Head:     0,
		Tail:     1,
		Size:     2,
	}
	mask := verify.Layout(ly)
	require.NotZero(t, mask)

	var out string
	require.NotPanics(t, func() { out = DOT(1, ly, mask, verify.DebugInfo{}, fixedOptions()) })
	require.Contains(t, out, "List size incorrect")
	require.Contains(t, out, `label=" 0 | data = 1 |`)
	require.NotContains(t, out, `" 1 | data`, "only slots every slice holds are drawn")
	require.NotContains(t, out, "->", "no link stays inside the drawn slots")
}

func TestDOT_NilLayout(t *testing.T) {
	out := DOT(1, nil, verify.ErrNoList, verify.DebugInfo{}, fixedOptions())
	require.Contains(t, out, "List nullptr")
	require.NotContains(t, out, "data =")
}

type recordingRenderer struct {
	calls [][2]string
	err   error
}

func (r *recordingRenderer) Render(_ context.Context, dotPath, imagePath string) (bool, error) {
	r.calls = append(r.calls, [2]string{dotPath, imagePath})
	if r.err != nil {
		return false, r.err
	}
	return true, os.WriteFile(imagePath, []byte("png"), 0o644)
}

func TestDumper_WritesFilesAndAppendsReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	r := &recordingRenderer{}
	d, err := New(dir, WithRenderer(r), WithOptions(fixedOptions()))
	require.NoError(t, err)
	require.Equal(t, dir, d.Dir())

	l := testutil.NewList(t, 3, 1, 2)
	ctx := context.Background()

	rep1, err := d.Dump(ctx, l.Layout(), verify.List(l), verify.Here("first"))
	require.NoError(t, err)
	rep2, err := d.Dump(ctx, l.Layout(), verify.List(l), verify.Here("second"))
	require.NoError(t, err)

	require.Equal(t, 1, rep1.ID)
	require.Equal(t, 2, rep2.ID)
	require.FileExists(t, rep1.DotPath)
	require.FileExists(t, rep2.DotPath)
	require.Equal(t, filepath.Join(dir, "graph_dump_2.png"), rep2.ImagePath)
	require.Len(t, r.calls, 2)

	report, err := os.ReadFile(filepath.Join(dir, ReportName))
	require.NoError(t, err)
	require.Contains(t, string(report), `<img src="./graph_dump_1.png">`)
	require.Contains(t, string(report), `<img src="./graph_dump_2.png">`)
	require.Contains(t, string(report), "&#34;second&#34;")
}

func TestDumper_DefaultEmbedsSource(t *testing.T) {
	dir := t.TempDir()
	d, err := New(dir)
	require.NoError(t, err)

	l := testutil.NewList(t, 2, 4)
	rep, err := d.Dump(context.Background(), l.Layout(), 0, verify.DebugInfo{Name: "plain"})
	require.NoError(t, err)
	require.Empty(t, rep.ImagePath)

	report, err := os.ReadFile(rep.HTMLPath)
	require.NoError(t, err)
	require.Contains(t, string(report), "digraph list_1")
	require.NotContains(t, string(report), "<img")
}

func TestNew_DefaultLoggerDiscards(t *testing.T) {
	d, err := New(t.TempDir())
	require.NoError(t, err)
	require.False(t, d.log.Enabled(t.Context(), slog.LevelError))
}

func TestDumper_RenderError(t *testing.T) {
	boom := errors.New("boom")
	d, err := New(t.TempDir(), WithRenderer(&recordingRenderer{err: boom}))
	require.NoError(t, err)

	l := testutil.NewList(t, 2)
	_, err = d.Dump(context.Background(), l.Layout(), 0, verify.DebugInfo{})
	require.ErrorIs(t, err, boom)
}

func TestDotRenderer_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "g.dot")
	require.NoError(t, os.WriteFile(dotPath, []byte("digraph g {}\n"), 0o644))

	r := DotRenderer{Binary: filepath.Join(dir, "no-such-dot")}
	ok, err := r.Render(context.Background(), dotPath, filepath.Join(dir, "g.png"))
	require.Error(t, err)
	require.False(t, ok)
}

func TestDotRenderer_Real(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("graphviz dot not installed")
	}
	d, err := New(t.TempDir(), WithRenderer(DotRenderer{}))
	require.NoError(t, err)

	l := testutil.NewList(t, 3, 1, 2)
	rep, err := d.Dump(context.Background(), l.Layout(), 0, verify.Here("real"))
	require.NoError(t, err)
	require.FileExists(t, rep.ImagePath)
}
