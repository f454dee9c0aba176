// Package main is the entry point for the askdb CLI.
package main

import "github.com/askdb/askdb/cmd"

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	cmd.Version = Version
	cmd.Execute()
}
