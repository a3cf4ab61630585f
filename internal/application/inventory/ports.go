package inventory

import (
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

// LowStockNotifier recibe la alerta cuando un producto queda en o bajo su
// punto de reorden. Es un efecto observable del caso de uso, no una
// consulta: se dispara tras cada alta y tras cada ajuste de cantidad.
type LowStockNotifier interface {
	NotifyLowStock(product *entity.Product)
}

// InventoryFile puerto de persistencia plana del inventario (CSV).
type InventoryFile interface {
	Export(products []*entity.Product, path string) error
	Import(path string) ([]*entity.Product, error)
}

// ProductStoreFactory crea un almacén de productos vacío. La importación
// construye un almacén nuevo y solo lo instala si el archivo entero parsea,
// de modo que un CSV corrupto no toca el estado en memoria.
type ProductStoreFactory func() repository.ProductRepository
