package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joshuapare/cehive/hive"
	"github.com/joshuapare/cehive/pkg/types"
	"github.com/spf13/cobra"
)

var (
	dumpPrefix     string
	dumpValuesOnly bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpPrefix, "prefix", "", "Dump only paths under this prefix")
	cmd.Flags().BoolVar(&dumpValuesOnly, "values-only", false, "Show only values, without their paths")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <hive>",
		Short: "Flatten a hive and print all paths and values",
		Long: `The dump command decodes a CE hive and prints every registry path with
its value, sorted by path.

Example:
  cehivectl dump default.hv
  cehivectl dump default.hv --prefix /HKLM
  cehivectl dump default.hv --values-only
  cehivectl dump default.hv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	hivePath := args[0]

	printVerbose("Opening hive: %s\n", hivePath)

	h, err := hive.Open(hivePath)
	if err != nil {
		return fmt.Errorf("failed to open hive: %w", err)
	}
	defer h.Close()

	reg, err := h.FlatMap()
	if err != nil {
		return fmt.Errorf("failed to decode hive: %w", err)
	}

	if dumpPrefix != "" {
		filtered := make(types.FlatRegistry, len(reg))
		for path, val := range reg {
			if strings.HasPrefix(path, dumpPrefix) {
				filtered[path] = val
			}
		}
		reg = filtered
	}

	printVerbose("Decoded %d values\n", len(reg))

	if jsonOut {
		return printJSON(reg)
	}
	if dumpValuesOnly {
		paths := make([]string, 0, len(reg))
		for path := range reg {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Fprintln(os.Stdout, reg[path])
		}
		return nil
	}
	return hive.Fprint(os.Stdout, reg)
}
