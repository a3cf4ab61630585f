package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
)

// renderProductTable arma la tabla del inventario con el marcador de stock
// bajo por fila, como la vista de stock del sistema original.
func renderProductTable(products []dto.ProductResponse) string {
	if len(products) == 0 {
		return styleMuted.Render("(inventario vacío)")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleMuted).
		Headers("ID", "NOMBRE", "CATEGORÍA", "PRECIO", "CANT", "REORDEN", "")

	for _, p := range products {
		mark := ""
		if p.IsLowStock {
			mark = styleWarning.Render("⚠")
		}
		t.Row(
			strconv.Itoa(p.ID),
			p.Name,
			p.Category,
			p.Price.String(),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.ReorderLevel),
			mark,
		)
	}
	return t.Render()
}

// renderSearchResults lista nombre y cantidad de los productos hallados.
func renderSearchResults(products []dto.ProductResponse) string {
	if len(products) == 0 {
		return styleMuted.Render("(sin resultados)")
	}
	var b strings.Builder
	for _, p := range products {
		b.WriteString(fmt.Sprintf("%s — %d\n", p.Name, p.Quantity))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderReports combina el valor total y el reporte de rotación.
func RenderReports(total decimal.Decimal, turnover []dto.TurnoverEntryDTO) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("REPORTES DEL INVENTARIO"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Valor total del inventario: %s\n", styleSuccess.Render(total.StringFixed(2))))
	b.WriteString(styleTitle.Render("ROTACIÓN (unidades vendidas)"))
	b.WriteString("\n")
	if len(turnover) == 0 {
		b.WriteString(styleMuted.Render("(inventario vacío)"))
		return b.String()
	}
	for _, e := range turnover {
		b.WriteString(fmt.Sprintf("%s: %d unidades vendidas\n", e.Name, e.UnitsSold))
	}
	return strings.TrimRight(b.String(), "\n")
}
