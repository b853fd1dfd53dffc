// Package main is the entry point for the yamlstore CLI.
//
// Usage:
//
//	yamlstore [flags] <command> [args]
//
// Commands:
//
//	get  - Resolve a keypath against a store and print the value
//	ls   - List the documents in a store
package main

import (
	"fmt"
	"os"

	"github.com/agentic-research/yamlstore/cmd/yamlstore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
