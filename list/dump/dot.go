package dump

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/emicklei/dot"

	"github.com/joshuapare/slotlist/list"
	"github.com/joshuapare/slotlist/list/verify"
)

const (
	colorOccupied = "#4CB944"
	colorFree     = "#F5EE9E"
	colorCluster  = "#B5E2FA"
)

// Options controls DOT generation.
type Options struct {
	// FontName is used for every node label.
	// Default: "Helvetica, Arial, sans-serif"
	FontName string

	// ShowInfo adds a cluster with verifier messages, the call site and a
	// timestamp.
	// Default: true
	ShowInfo bool

	// Now supplies the timestamp. Default: time.Now
	Now func() time.Time
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		FontName: "Helvetica, Arial, sans-serif",
		ShowInfo: true,
		Now:      time.Now,
	}
}

// DOT renders ly as a Graphviz digraph: one record node per slot, blue next
// edges along the occupied chain, grey next edges along the free chain and
// red prev edges. It reads only what the slices actually hold, so a corrupted
// or destroyed layout still produces a graph.
func DOT(id int, ly *list.Layout, mask verify.Mask, info verify.DebugInfo, opts Options) string {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	g := dot.NewGraph(dot.Directed)
	g.ID(fmt.Sprintf("list_%d", id))
	g.Attr("rankdir", "LR")
	g.Attr("splines", "ortho")
	g.Attr("nodesep", "0.8")

	if ly != nil {
		n := min(len(ly.Data), len(ly.Next), len(ly.Prev))
		nodes := slotNodes(g, id, ly, n, opts)
		slotEdges(g, ly, nodes)
		freeHead(g, ly, nodes, opts)
	}
	if opts.ShowInfo {
		infoCluster(g, mask, info, opts)
	}
	return g.String()
}

func occupied(ly *list.Layout, i int) bool {
	return ly.Prev[i] != list.Nil || i == ly.Head
}

func slotNodes(g *dot.Graph, id int, ly *list.Layout, n int, opts Options) []dot.Node {
	sub := g.Subgraph(fmt.Sprintf("nodes_%d", id), dot.ClusterOption{})
	sub.Attr("bgcolor", colorCluster)
	sub.Attr("label", "")

	nodes := make([]dot.Node, n)
	for i := range n {
		fill := colorFree
		if occupied(ly, i) {
			fill = colorOccupied
		}
		nodes[i] = sub.Node("node_"+strconv.Itoa(i)).
			Attr("shape", "record").
			Attr("style", "rounded,filled").
			Attr("color", "green").
			Attr("fillcolor", fill).
			Attr("fontname", opts.FontName).
			Attr("label", fmt.Sprintf(" %d | data = %d | <fnext> next = %d | <fprev> prev = %d ",
				i, ly.Data[i], ly.Next[i], ly.Prev[i]))
	}
	return nodes
}

// edge adds a link with the common pen settings.
func edge(g *dot.Graph, from, to dot.Node) dot.Edge {
	return g.Edge(from, to).Attr("minlen", "1").Attr("penwidth", "1.5")
}

func slotEdges(g *dot.Graph, ly *list.Layout, nodes []dot.Node) {
	n := len(nodes)

	// Invisible edges keep the slots in index order.
	for i := 0; i+1 < n; i++ {
		edge(g, nodes[i], nodes[i+1]).Attr("weight", "10").Attr("style", "invis")
	}

	for i := range n {
		next := ly.Next[i]
		if next < 0 || next >= n {
			continue
		}
		color := "grey"
		if occupied(ly, i) {
			color = "blue"
		}
		edge(g, nodes[i], nodes[next]).Attr("color", color)
	}

	for i := range n {
		if p := ly.Prev[i]; p >= 0 && p < n {
			edge(g, nodes[i], nodes[p]).Attr("color", "red")
		}
	}
}

func freeHead(g *dot.Graph, ly *list.Layout, nodes []dot.Node, opts Options) {
	sub := g.Subgraph("val", dot.ClusterOption{})
	sub.Attr("label", "")
	fre := sub.Node("val_fre").
		Attr("shape", "none").
		Attr("fontname", opts.FontName).
		Attr("label", fmt.Sprintf(" fre\n%d ", ly.FreeHead))

	if ly.FreeHead >= 0 && ly.FreeHead < len(nodes) {
		edge(g, fre, nodes[ly.FreeHead])
	}
}

func infoCluster(g *dot.Graph, mask verify.Mask, info verify.DebugInfo, opts Options) {
	errs := strings.Join(mask.Errors(), "\n")
	if errs == "" {
		errs = "List ok"
	}
	sub := g.Subgraph("add_info", dot.ClusterOption{})
	sub.Attr("label", "")
	sub.Node("node_err_info").Attr("shape", "plaintext").Attr("label", errs)
	sub.Node("node_dbg_info").Attr("shape", "plaintext").Attr("label", info.String())
	sub.Node("node_add_info").Attr("shape", "plaintext").Attr("label", opts.Now().Format(time.ANSIC))
}
