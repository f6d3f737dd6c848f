// Package driver wires the pipeline together: load a file, tokenize it,
// locate and expand derive sites, render the scaffolds. The CLI and the
// parallel directory walker both sit on top of it.
package driver

import (
	"strings"

	"podgen/internal/diag"
	"podgen/internal/expand"
	"podgen/internal/lexer"
	"podgen/internal/source"
	"podgen/internal/token"
)

// Result carries everything one file's expansion produced. Output is empty
// when tokenization or parsing failed; the Bag says why.
type Result struct {
	FileSet   *source.FileSet
	File      *source.File
	Tokens    []token.Token
	Bag       *diag.Bag
	Scaffolds []expand.Scaffold
	Output    string
	FromCache bool
}

// ExpandFile loads one file and expands every registered derive site in it.
// The returned error covers I/O only; anything in the file itself lands in
// the Result's Bag.
func ExpandFile(path string, reg *expand.Registry, maxDiagnostics int) (*Result, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	return expandLoaded(fileSet, fileSet.Get(fileID), reg, bag), nil
}

// ExpandVirtual expands in-memory content under a display name. Used for
// stdin and tests.
func ExpandVirtual(name string, content []byte, reg *expand.Registry, maxDiagnostics int) *Result {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, content)
	bag := diag.NewBag(maxDiagnostics)
	return expandLoaded(fileSet, fileSet.Get(fileID), reg, bag)
}

func expandLoaded(fileSet *source.FileSet, file *source.File, reg *expand.Registry, bag *diag.Bag) *Result {
	reporter := diag.BagReporter{Bag: bag}

	toks, end, ok := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	res := &Result{
		FileSet: fileSet,
		File:    file,
		Tokens:  toks,
		Bag:     bag,
	}
	if !ok {
		return res
	}

	scaffolds, perr := expand.File(toks, end, reg)
	if perr != nil {
		perr.Report(reporter)
		return res
	}
	if len(scaffolds) == 0 {
		reporter.Report(diag.ExpNoDeriveSites, diag.SevInfo,
			source.Span{File: file.ID}, "no derive sites in "+file.Path, nil)
		return res
	}

	res.Scaffolds = scaffolds
	res.Output = Render(scaffolds)
	return res
}

// Render prints each scaffold as one line of source text.
func Render(scaffolds []expand.Scaffold) string {
	var b strings.Builder
	for i := range scaffolds {
		b.WriteString(token.Print(scaffolds[i].Output))
		b.WriteByte('\n')
	}
	return b.String()
}
