package cli

import (
	"fmt"
	"io"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

// AlertNotifier imprime las alertas de stock bajo en la terminal del
// operador. Implementa inventory.LowStockNotifier.
type AlertNotifier struct {
	out io.Writer
}

// NewAlertNotifier construye el notificador sobre el writer dado.
func NewAlertNotifier(out io.Writer) *AlertNotifier {
	return &AlertNotifier{out: out}
}

// NotifyLowStock emite la alerta legible: nombre y unidades restantes.
func (n *AlertNotifier) NotifyLowStock(product *entity.Product) {
	fmt.Fprintln(n.out, styleWarning.Render(
		fmt.Sprintf("⚠ ALERTA DE STOCK BAJO: %s (%d restantes)", product.Name, product.Quantity)))
}
