// Command boxcar composes Rails applications from configuration modules.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/roach88/boxcar/internal/cli"
)

// Set by -ldflags at release time.
var version = "dev"

func main() {
	root := cli.NewRootCommand()
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
