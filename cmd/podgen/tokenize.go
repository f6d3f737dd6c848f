package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"podgen/internal/diag"
	"podgen/internal/diagfmt"
	"podgen/internal/lexer"
	"podgen/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rs",
	Short: "Tokenize a source file",
	Long:  `Tokenize dumps the token tree of a source file, groups and all`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics)
	toks, _, _ := lexer.Tokenize(fileSet.Get(fileID), lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	if bag.HasErrors() || bag.HasWarnings() {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		diagfmt.FormatTokensPretty(os.Stdout, toks, fileSet)
		return nil
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, toks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
