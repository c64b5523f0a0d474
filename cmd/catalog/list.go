package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/catalog/internal/catalog"
	"github.com/muurk/catalog/internal/product"
	"github.com/muurk/catalog/internal/tui"
	"github.com/muurk/catalog/internal/ui"
)

// Prices are numbers in JSON output, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type listFlags struct {
	query  string
	page   int
	format string
}

func newListCmd(global *globalFlags) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of products and exit",
		Long: `Print a page of products without starting the interactive interface.

The query filters by product name, case-insensitively. Layout follows
--view; --format json or yaml prints the page as data instead.`,
		Example: `  # First page in the default layout
  catalog list

  # Search and page through results
  catalog list --query desk --page 2

  # Cards instead of a table
  catalog list --view card

  # Machine-readable output
  catalog list --query mug --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, global, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "Filter products whose name contains this text")
	cmd.Flags().IntVarP(&flags.page, "page", "p", 1, "Page to print (1-based)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format (text, json, yaml)")

	return cmd
}

func runList(cmd *cobra.Command, global *globalFlags, flags *listFlags) error {
	s, err := loadSettings(cmd, global)
	if err != nil {
		return err
	}

	state := catalog.NewState(catalog.New(s.seed), s.prefs.PageSize, s.view)
	state.SetDebouncedQuery(flags.query)
	state.GoToPage(flags.page)

	out := cmd.OutOrStdout()
	switch flags.format {
	case "json":
		return writeJSON(out, state)
	case "yaml":
		return writeYAML(out, state)
	case "text":
	default:
		return fmt.Errorf("unknown format %q (expected text, json or yaml)", flags.format)
	}

	var b strings.Builder
	printPage(ui.NewPrinter(&b), cmd.CommandPath(), flags.query, state, s.prices)

	if out == io.Writer(os.Stdout) && ui.IsTerminal() {
		return ui.RenderOnce(b.String())
	}
	_, err = io.WriteString(out, b.String())
	return err
}

func printPage(p *ui.Printer, command, query string, state catalog.State, prices product.PriceFormatter) {
	controls := state.Controls()

	params := []ui.Param{
		{Key: "Page", Value: fmt.Sprintf("%d of %d", controls.Page, controls.TotalPages)},
		{Key: "View", Value: string(state.View)},
	}
	if strings.TrimSpace(query) != "" {
		params = append([]ui.Param{{Key: "Query", Value: query}}, params...)
	}
	p.PrintHeader("Product Catalog", command, params...)

	visible := state.Visible()
	if len(visible) == 0 {
		p.PrintResult(ui.NewWarningResult("No products match "+strconv.Quote(query),
			"use a shorter or different query",
			"run without --query to list every product",
		))
		return
	}

	width := p.Width() - 4
	if state.View == catalog.ViewCard {
		p.Println(tui.RenderCards(visible, -1, prices, width))
	} else {
		p.Println(tui.RenderList(visible, -1, prices, width))
	}
	p.PrintFooter(fmt.Sprintf("%d of %d products match", len(state.Filtered()), state.Catalog.Len()))
}

// pageDocument is the shape of json/yaml output.
type pageDocument struct {
	Query      string            `json:"query,omitempty" yaml:"query,omitempty"`
	Page       int               `json:"page" yaml:"page"`
	TotalPages int               `json:"total_pages" yaml:"total_pages"`
	Total      int               `json:"total" yaml:"total"`
	Products   []product.Product `json:"products" yaml:"products"`
}

func newPageDocument(state catalog.State) pageDocument {
	controls := state.Controls()
	return pageDocument{
		Query:      strings.TrimSpace(state.DebouncedQuery),
		Page:       controls.Page,
		TotalPages: controls.TotalPages,
		Total:      len(state.Filtered()),
		Products:   state.Visible(),
	}
}

func writeJSON(w io.Writer, state catalog.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newPageDocument(state)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, state catalog.State) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newPageDocument(state)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
