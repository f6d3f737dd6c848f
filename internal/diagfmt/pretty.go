package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"podgen/internal/diag"
	"podgen/internal/source"
)

// Pretty renders diagnostics in a human-readable form. Walks bag.Items()
// (callers sort the bag first). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// with notes after it in the same layout. Color is opt-in.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, opts, d.Primary, sevLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
		printContext(w, fs, d.Primary)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			printHeader(w, fs, opts, n.Span, "note", "", n.Msg)
			printContext(w, fs, n.Span)
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, opts PrettyOpts, sp source.Span, label, code, msg string) {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	if code != "" {
		label += " " + code
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		formatPath(f.Path, opts.PathMode), start.Line, start.Col, label, msg)
}

// printContext shows the first line the span touches, with a caret run under
// the spanned columns. Multi-line spans underline to the end of the first
// line.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" && start.Col <= 1 {
		return
	}

	startCol := int(start.Col)
	if startCol < 1 {
		startCol = 1
	}
	if startCol > len(line)+1 {
		startCol = len(line) + 1
	}
	endCol := len(line) + 1
	if end.Line == start.Line && int(end.Col) <= endCol {
		endCol = int(end.Col)
	}
	if endCol < startCol {
		endCol = startCol
	}

	pad := runewidth.StringWidth(line[:startCol-1])
	width := runewidth.StringWidth(line[startCol-1 : endCol-1])
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}

func sevLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(sev.String())
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(sev.String())
	default:
		return color.New(color.FgCyan).Sprint(sev.String())
	}
}

func formatPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if wd, err := filepath.Abs("."); err == nil {
			if rel, rerr := filepath.Rel(wd, path); rerr == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
