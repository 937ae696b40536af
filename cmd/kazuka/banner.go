package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// bannerWriter returns a writer that renders ANSI color codes on a real
// terminal (including Windows consoles, via go-colorable) and strips them
// when stdout is redirected to a file or pipe.
func bannerWriter() io.Writer {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return colorable.NewColorableStdout()
	}
	return colorable.NewNonColorable(os.Stdout)
}

func printBanner(version string, dryRun bool) {
	w := bannerWriter()
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", bold("kazuka"), version)
	if dryRun {
		warn := color.New(color.FgYellow, color.Bold).SprintFunc()
		fmt.Fprintf(w, "%s no bundles or transactions will be submitted\n", warn("[dry-run]"))
	}
}
