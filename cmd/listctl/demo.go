package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// demoScript fills a capacity-3 list, overflows it, frees the middle slot
// and shows it being reused.
const demoScript = `# capacity 3: free chain 0 -> 1 -> 2
new 3
insert-end 10
insert-end 20
insert-end 30
# full
insert-end 40
delete-id 1
# slot 1 is reused
insert-end 50
verify
`

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in fill, delete and reuse scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	ops, err := parseScript(strings.NewReader(demoScript))
	if err != nil {
		return err
	}
	r := newRunner("demo", listOptions()...)
	if err := r.run(ops); err != nil {
		return err
	}
	return report(r)
}
