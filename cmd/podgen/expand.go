package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"podgen/internal/diag"
	"podgen/internal/diagfmt"
	"podgen/internal/driver"
	"podgen/internal/expand"
	"podgen/internal/source"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] path",
	Short: "Expand derive attributes in a file or directory",
	Long:  `Expand locates #[derive(...)] attributes and prints the generated trait impl scaffolds`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExpand,
}

func init() {
	expandCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	expandCmd.Flags().Bool("no-cache", false, "skip the expansion disk cache")
	expandCmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json)")
}

func runExpand(cmd *cobra.Command, args []string) error {
	path := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	diagFormat, _ := cmd.Flags().GetString("diag-format")

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	startDir := path
	if !info.IsDir() {
		startDir = filepath.Dir(path)
	}
	reg, err := buildRegistry(startDir)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return expandDirectory(cmd, path, reg, maxDiagnostics, jobs, diagFormat)
	}
	return expandOneFile(cmd, path, reg, maxDiagnostics, noCache, diagFormat)
}

func expandOneFile(cmd *cobra.Command, path string, reg *expand.Registry, maxDiagnostics int, noCache bool, diagFormat string) error {
	var (
		res *driver.Result
		err error
	)
	if noCache {
		res, err = driver.ExpandFile(path, reg, maxDiagnostics)
	} else {
		var cache *driver.DiskCache
		cache, err = driver.OpenDiskCache("podgen")
		if err != nil {
			// A broken cache dir should not block expansion.
			res, err = driver.ExpandFile(path, reg, maxDiagnostics)
		} else {
			res, err = driver.ExpandFileCached(path, reg, maxDiagnostics, cache)
		}
	}
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	printDiagnostics(cmd, res.Bag, res.FileSet, diagFormat)
	fmt.Fprint(cmd.OutOrStdout(), res.Output)

	if res.Bag.HasErrors() {
		return fmt.Errorf("expansion of %s failed", path)
	}
	return nil
}

func expandDirectory(cmd *cobra.Command, dir string, reg *expand.Registry, maxDiagnostics, jobs int, diagFormat string) error {
	fileSet, results, err := driver.ExpandDir(cmd.Context(), dir, reg, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	failed := false
	for _, r := range results {
		printDiagnostics(cmd, r.Bag, fileSet, diagFormat)
		if r.Output != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", r.Path, r.Output)
		}
		if r.Bag.HasErrors() {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("expansion of %s failed", dir)
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, diagFormat string) {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if bag.Len() == 0 || (quiet && !bag.HasErrors() && !bag.HasWarnings()) {
		return
	}
	bag.Sort()
	bag.Dedup()

	if diagFormat == "json" {
		_ = diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
		return
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
}
