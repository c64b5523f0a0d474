// Package ui renders the styled, non-interactive output of catalog
// subcommands such as `catalog list` and `catalog config show`.
//
// Components follow a "print once and exit" pattern:
//
//   - Header: banner with the command and the parameters in effect
//   - Result: success, failure or notice box with details and hints
//   - Printer: writes components to stdout (or any io.Writer in tests)
//
// RenderOnce pushes content through Bubble Tea's renderer for terminals;
// Printer writes plain bytes and is what piped output and tests use.
//
// Example:
//
//	p := ui.NewPrinter(nil)
//	p.PrintHeader("Product Catalog", "catalog list",
//	    ui.Param{Key: "Query", Value: "desk"},
//	    ui.Param{Key: "Page", Value: "1 of 1"},
//	)
//	p.PrintResult(ui.NewWarningResult("No products match", "clear the query"))
package ui
