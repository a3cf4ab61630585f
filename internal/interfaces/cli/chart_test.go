package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/interfaces/cli"
)

func TestRenderStockChart_EscalaAlMaximo(t *testing.T) {
	out := cli.RenderStockChart([]dto.StockLevelDTO{
		{Name: "Widget", Quantity: 100},
		{Name: "Caja", Quantity: 50},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3) // título + dos barras

	// la barra más larga usa el ancho completo; la de la mitad, la mitad
	assert.Equal(t, 40, strings.Count(lines[1], "█"))
	assert.Equal(t, 20, strings.Count(lines[2], "█"))
	assert.Contains(t, lines[1], "Widget")
	assert.Contains(t, lines[1], "100")
}

func TestRenderStockChart_CantidadNoPositivaSinBarra(t *testing.T) {
	out := cli.RenderStockChart([]dto.StockLevelDTO{
		{Name: "Agotado", Quantity: 0},
		{Name: "Negativo", Quantity: -4},
		{Name: "Normal", Quantity: 8},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Zero(t, strings.Count(lines[1], "█"))
	assert.Zero(t, strings.Count(lines[2], "█"))
	assert.Equal(t, 40, strings.Count(lines[3], "█"))
}

func TestRenderStockChart_InventarioVacio(t *testing.T) {
	out := cli.RenderStockChart(nil)
	assert.Contains(t, out, "inventario vacío")
}

func TestAlertNotifier_FormatoDeAlerta(t *testing.T) {
	var buf bytes.Buffer
	n := cli.NewAlertNotifier(&buf)

	n.NotifyLowStock(entity.NewProduct(1, "Tornillos", "Hardware", decimal.NewFromFloat(0.10), 3, 5))

	assert.Contains(t, buf.String(), "ALERTA DE STOCK BAJO: Tornillos (3 restantes)")
}
