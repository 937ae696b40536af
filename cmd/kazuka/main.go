package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vyorkin/kazuka/internal/flags"
)

// Git SHA1 commit hash of the release (set via linker flags).
var gitCommit = ""
var gitDate = ""

var app *cli.App

func init() {
	app = flags.NewApp(gitCommit, gitDate, "an event-driven MEV trading engine")
	app.Flags = appFlags
	app.Action = run
	app.Commands = []*cli.Command{
		versionCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
