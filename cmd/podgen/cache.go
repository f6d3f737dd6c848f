package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"podgen/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the expansion disk cache",
}

var cacheDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete every cached expansion",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache("podgen")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "cache dropped")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheDropCmd)
}
