// Package main provides the sgd command-line tool, a thin front end for
// querying the Saccharomyces Genome Database REST backend.
package main

import "os"

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
