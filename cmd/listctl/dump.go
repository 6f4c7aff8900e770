package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotlist/internal/logger"
	"github.com/joshuapare/slotlist/list/dump"
	"github.com/joshuapare/slotlist/list/verify"
)

var (
	dumpOut    string
	dumpRender bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpOut, "out", "o", "dumps", "Directory for DOT files and the HTML report")
	cmd.Flags().BoolVar(&dumpRender, "render", false, "Render PNG images with the Graphviz dot binary")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <script>",
		Short: "Replay a script and dump the final list as Graphviz and HTML",
		Long: `The dump command replays a script and writes the final list storage
as a Graphviz DOT file, appending an entry to dump.html in the output
directory. With --render the DOT file is turned into a PNG by "dot".

Example:
  listctl dump ops.txt --out dumps
  listctl dump ops.txt --out dumps --render`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.Context(), args)
		},
	}
	return cmd
}

func runDump(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := replay(args[0])
	if err != nil {
		return err
	}

	opts := []dump.Option{dump.WithLogger(logger.L)}
	if dumpRender {
		opts = append(opts, dump.WithRenderer(dump.DotRenderer{}))
	}
	d, err := dump.New(dumpOut, opts...)
	if err != nil {
		return err
	}

	mask := verify.List(r.l)
	info := verify.DebugInfo{Name: r.name, File: r.name, Func: "dump"}
	if n := len(r.steps); n > 0 {
		info.Line = r.steps[n-1].Line
	}

	rep, err := d.Dump(ctx, r.l.Layout(), mask, info)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(rep)
	}
	printInfo("Dump %d written:\n", rep.ID)
	printInfo("  DOT:    %s\n", rep.DotPath)
	if rep.ImagePath != "" {
		printInfo("  Image:  %s\n", rep.ImagePath)
	}
	printInfo("  Report: %s\n", rep.HTMLPath)
	printInfo("  Status: %s\n", paint(mask.String(), mask == 0))
	return nil
}
