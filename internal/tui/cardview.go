package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/catalog/internal/product"
)

// RenderCards draws one page of products as a grid of cards, as many per
// row as the width allows. Cards show the description when present and a
// stock meter relative to the best-stocked product on the page.
func RenderCards(products []product.Product, selected int, prices product.PriceFormatter, width int) string {
	if len(products) == 0 {
		return EmptyStateStyle.Render(emptyMessage)
	}

	perRow := max(width/CardWidth, 1)

	var maxStock int64
	for _, p := range products {
		maxStock = max(maxStock, p.Stock)
	}

	meter := progress.New(
		progress.WithSolidFill(string(SecondaryColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(CardWidth-16),
	)

	var rows []string
	for start := 0; start < len(products); start += perRow {
		end := min(start+perRow, len(products))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(products[i], i == selected, prices, meter, maxStock))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(p product.Product, selected bool, prices product.PriceFormatter, meter progress.Model, maxStock int64) string {
	inner := CardWidth - 4

	name := CardTitleStyle.Width(inner).MaxHeight(1).Render(p.Name)
	priceLine := lipgloss.JoinHorizontal(lipgloss.Top,
		PriceStyle.Render(prices.Format(p.Price)),
		"  ",
		CategoryStyle.Render(p.Category),
	)

	var stockLine string
	if p.Stock <= 0 {
		stockLine = OutOfStockStyle.Render("Out of stock")
	} else {
		ratio := 0.0
		if maxStock > 0 {
			ratio = float64(p.Stock) / float64(maxStock)
		}
		stockLine = fmt.Sprintf("%-9s %s", fmt.Sprintf("%d left", p.Stock), meter.ViewAs(ratio))
	}

	lines := []string{name, priceLine, stockLine}
	if p.Description != "" {
		lines = append(lines, SubtitleStyle.Width(inner).MaxHeight(2).Render(p.Description))
	}

	style := CardStyle
	action := HelpStyle.Render(fmt.Sprintf("#%d", p.ID))
	if selected {
		style = SelectedCardStyle
		action = StatusStyle.Render(fmt.Sprintf("#%d  ✎ enter to edit", p.ID))
	}
	lines = append(lines, action)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
