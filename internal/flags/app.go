package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// NewApp creates a cli.App with the metadata common to every binary in
// this module: name, usage line, and a version string assembled from the
// linker-injected git commit/date.
func NewApp(gitCommit, gitDate, usage string) *cli.App {
	app := cli.NewApp()
	app.EnableBashCompletion = true
	app.Name = "kazuka"
	app.Usage = usage
	app.Version = versionString(gitCommit, gitDate)
	app.Copyright = "Copyright 2024 The kazuka Authors"
	return app
}

func versionString(gitCommit, gitDate string) string {
	v := "dev"
	if gitCommit != "" {
		if len(gitCommit) > 8 {
			gitCommit = gitCommit[:8]
		}
		v = fmt.Sprintf("%s-%s", v, gitCommit)
	}
	if gitDate != "" {
		v = fmt.Sprintf("%s-%s", v, gitDate)
	}
	return v
}
