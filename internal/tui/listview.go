package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/catalog/internal/product"
)

const emptyMessage = "No products found."

// List columns
const (
	colID = iota
	colName
	colCategory
	colPrice
	colStock
	colAction
)

// RenderList draws one page of products as a table. The selected row is
// highlighted and carries the edit hint.
func RenderList(products []product.Product, selected int, prices product.PriceFormatter, width int) string {
	if len(products) == 0 {
		return EmptyStateStyle.Render(emptyMessage)
	}

	rows := make([][]string, len(products))
	for i, p := range products {
		action := ""
		if i == selected {
			action = "✎ edit"
		}
		rows[i] = []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Category,
			prices.Format(p.Price),
			stockLabel(p.Stock),
			action,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SubtleColor)).
		Headers("ID", "NAME", "CATEGORY", "PRICE", "STOCK", "").
		Rows(rows...).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = HeaderCellStyle
			case row == selected:
				style = SelectedCellStyle
			default:
				style = CellStyle
			}
			if col == colPrice || col == colStock || col == colID {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	return t.Render()
}

func stockLabel(stock int64) string {
	if stock <= 0 {
		return "out"
	}
	return strconv.FormatInt(stock, 10)
}
