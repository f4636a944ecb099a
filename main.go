// Package main provides the entry point for the claunch URL handler.
//
// claunch receives a claunch:// URL from the OS URL-scheme shim, validates
// and decodes it, asks the user for confirmation, and spawns an interactive
// claude session in a terminal window.
package main

import (
	cmdroot "github.com/alban/claunch/cmd"
	"github.com/alban/claunch/pkg/common"
)

// main is the entry point of the application. It sets up the panic recovery
// system at the top level and executes the root command, which will process
// CLI flags and execute the selected subcommand.
func main() {
	// Setup global panic recovery that will catch any unhandled panics
	// and prevent the application from crashing uncleanly
	defer common.RecoverPanic()

	// Execute the root command
	cmdroot.Execute()
}
