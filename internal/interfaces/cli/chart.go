package cli

import (
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
)

const chartMaxBarWidth = 40

// RenderStockChart dibuja un gráfico de barras horizontal con los niveles
// de stock. Recibe la instantánea de solo lectura (nombre, cantidad): no
// toca el inventario. Las cantidades negativas o cero se dibujan sin barra.
func RenderStockChart(levels []dto.StockLevelDTO) string {
	if len(levels) == 0 {
		return styleMuted.Render("(inventario vacío)")
	}

	maxQty := 0
	nameWidth := 0
	for _, l := range levels {
		if l.Quantity > maxQty {
			maxQty = l.Quantity
		}
		if w := len([]rune(l.Name)); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("NIVELES DE INVENTARIO"))
	b.WriteString("\n")
	for _, l := range levels {
		bar := ""
		if l.Quantity > 0 && maxQty > 0 {
			width := l.Quantity * chartMaxBarWidth / maxQty
			if width == 0 {
				width = 1
			}
			bar = strings.Repeat("█", width)
		}
		b.WriteString(fmt.Sprintf("%-*s %s %d\n", nameWidth, l.Name, styleBar.Render(bar), l.Quantity))
	}
	return b.String()
}
