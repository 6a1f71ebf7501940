// Package main is the entry point for the atlantis CLI.
//
// atlantis removes deployed application stacks and the resources they leave
// behind. Every destructive step sits behind operator confirmation.
//
// For detailed usage information, run:
//
//	atlantis --help
package main

import (
	"fmt"
	"os"

	"github.com/63klabs/atlantis/cmd/atlantis/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
