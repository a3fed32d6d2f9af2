package main

import (
	"fmt"
	"os"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if helpRequested {
		// Usage output, including --help, exits non-zero: the browser
		// only exits zero after a normal quit or catalog exhaustion.
		os.Exit(1)
	}
}
