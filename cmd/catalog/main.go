// Catalog is a terminal product-catalog manager.
//
// It shows a searchable, paginated product list in either a table or a card
// grid, and lets you add and edit products through a modal form. Products
// live in memory for the session, starting from a built-in dataset or a
// YAML/JSON seed file.
//
// Usage:
//
//	catalog [command] [flags]
//
// Running without arguments launches the interactive interface.
// See 'catalog --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/muurk/catalog/internal/logging"
)

func main() {
	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
