// Package dump renders a list's storage as Graphviz graphs and appends them
// to an HTML report.
//
// Each Dump call writes dump_<n>.dot, asks the Renderer to turn it into
// graph_dump_<n>.png, and appends an entry to dump.html, all inside the
// Dumper's directory:
//
//	d, err := dump.New("dumps", dump.WithRenderer(dump.DotRenderer{}))
//	if err != nil {
//	    return err
//	}
//	mask := verify.List(l)
//	rep, err := d.Dump(ctx, l.Layout(), mask, verify.Here("queue"))
//
// Dump only reads the layout. Rendering is delegated to the external "dot"
// binary; NopRenderer (the default) skips it and embeds the DOT source in the
// report instead.
package dump
