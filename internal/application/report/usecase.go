package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// InventorySource expone la vista de solo lectura del inventario. Se lee a
// través del caso de uso y no del repositorio directamente porque una
// importación de CSV reemplaza el almacén completo: el reporte siempre
// debe ver el almacén vigente.
type InventorySource interface {
	Products() []*entity.Product
}

// MovementSource expone la bitácora de movimientos en orden cronológico.
type MovementSource interface {
	Movements() []*entity.StockMovement
}

// UseCase calcula los reportes agregados del inventario. Son lecturas
// puras: ningún reporte muta estado.
type UseCase struct {
	inventory InventorySource
	movements MovementSource
	log       *logger.Logger
}

// NewUseCase construye el motor de reportes.
func NewUseCase(inventory InventorySource, movements MovementSource, log *logger.Logger) *UseCase {
	return &UseCase{inventory: inventory, movements: movements, log: log}
}

// TotalInventoryValue devuelve la suma de precio * cantidad sobre todos
// los productos del inventario.
func (uc *UseCase) TotalInventoryValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range uc.inventory.Products() {
		total = total.Add(p.TotalValue())
	}
	uc.log.Debug().Str("total", total.String()).Msg("valor total del inventario calculado")
	return total
}

// TurnoverReport acumula las unidades vendidas (valor absoluto de los
// movimientos OUT) por producto y emite una entrada por cada producto que
// sigue en el inventario, en su orden, con 0 para los que no registran
// salidas. Los productos ya eliminados no aparecen en el reporte aunque su
// historial siga en la bitácora.
func (uc *UseCase) TurnoverReport() []dto.TurnoverEntryDTO {
	sold := make(map[int]int)
	for _, m := range uc.movements.Movements() {
		if m.Type != entity.MovementTypeOUT {
			continue
		}
		units := m.Quantity
		if units < 0 {
			units = -units
		}
		sold[m.ProductID] += units
	}

	products := uc.inventory.Products()
	entries := make([]dto.TurnoverEntryDTO, 0, len(products))
	for _, p := range products {
		entries = append(entries, dto.TurnoverEntryDTO{
			ProductID: p.ID,
			Name:      p.Name,
			UnitsSold: sold[p.ID],
		})
	}
	return entries
}
