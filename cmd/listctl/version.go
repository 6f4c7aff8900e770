package main

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slotlist/list"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// buildInfo is what `listctl version` reports.
type buildInfo struct {
	Version     string `json:"version"`
	Module      string `json:"module"`
	GoVersion   string `json:"go"`
	MaxCapacity int    `json:"max_capacity"`
	Poison      int32  `json:"poison"`
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and list engine limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

func currentBuild() buildInfo {
	info := buildInfo{
		Version:     version,
		Module:      "github.com/joshuapare/slotlist",
		MaxCapacity: list.DefaultMaxCapacity,
		Poison:      list.Poison,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
	}
	return info
}

func runVersion() error {
	info := currentBuild()
	if jsonOut {
		return printJSON(info)
	}
	printInfo("listctl %s\n", info.Version)
	printInfo("  engine:       %s\n", info.Module)
	if info.GoVersion != "" {
		printInfo("  go:           %s\n", info.GoVersion)
	}
	printInfo("  max capacity: %d slots\n", info.MaxCapacity)
	printInfo("  poison:       %#x\n", info.Poison)
	return nil
}
