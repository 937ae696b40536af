package main

import (
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
)

// setupLogging configures the go-ethereum structured logger at verbosity
// (0=crit .. 5=trace), writing to stderr with color when it's a terminal.
func setupLogging(verbosity int) {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	handler := log.LvlFilterHandler(log.Lvl(verbosity), log.StreamHandler(os.Stderr, log.TerminalFormat(useColor)))
	log.Root().SetHandler(handler)
}
