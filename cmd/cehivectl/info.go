package main

import (
	"encoding/hex"
	"fmt"

	"github.com/joshuapare/cehive/hive"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <hive>",
		Short: "Validate a hive header and report its metadata",
		Long: `The info command checks the EKIM header magic and displays the header
fields without decoding the rest of the file.

Example:
  cehivectl info default.hv
  cehivectl info default.hv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	hivePath := args[0]

	printVerbose("Opening hive: %s\n", hivePath)

	h, err := hive.Open(hivePath)
	if err != nil {
		return fmt.Errorf("failed to open hive: %w", err)
	}
	defer h.Close()

	info, err := h.Info()
	if err != nil {
		return fmt.Errorf("failed to read hive header: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nHive Information:\n")
	printInfo("  File: %s\n", hivePath)
	printInfo("  Actual size: %d bytes\n", h.Size())
	printInfo("  Header size: 0x%X\n", info.HeaderSize)
	printInfo("  Declared file size: %d bytes\n", info.FileSize)
	printInfo("  File type: 0x%X\n", info.FileType)
	printInfo("  Base address: 0x%08X\n", info.BaseAddr)
	printInfo("  Recovery log size: %d\n", info.RecoveryLogSize)
	printInfo("  Registry hive: %t\n", info.RegHive)
	printInfo("  Database volume: %t\n", info.DBVolume)
	printInfo("  File checksum: %s\n", hex.EncodeToString(info.FileChecksum[:]))
	printInfo("  Boot checksum: %s\n", hex.EncodeToString(info.BootChecksum[:]))

	return nil
}
