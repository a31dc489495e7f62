// Command maritime runs the maritime records server and its tooling.
//
// @title Maritime API
// @version 1.0
// @description Ship, port and voyage records with referential integrity and fleet statistics.
// @BasePath /api
package main

import (
	"fmt"
	"os"

	"evalgo.org/maritime/internal/commands"
	"evalgo.org/maritime/internal/version"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime
	version.GitCommit = GitCommit

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
