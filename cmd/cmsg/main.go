// Package main is the entry point for the cmsg binary.
package main

import "github.com/Cyclone1070/cmsg/internal/cli"

// Set by the release build via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
