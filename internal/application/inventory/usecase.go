package inventory

import (
	"time"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// UseCase orquesta el inventario en memoria y su bitácora de movimientos.
// El proceso es de un solo usuario y una sola sesión: no hay bloqueo ni
// acceso concurrente; cada operación se ejecuta completa antes de la
// siguiente.
type UseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	notifier  LowStockNotifier
	files     InventoryFile
	newStore  ProductStoreFactory
	strict    bool
	log       *logger.Logger
}

// NewUseCase construye el caso de uso. strict true rechaza ajustes que
// dejarían la cantidad negativa; false conserva el modo permisivo.
func NewUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	notifier LowStockNotifier,
	files InventoryFile,
	newStore ProductStoreFactory,
	strict bool,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		products:  products,
		movements: movements,
		notifier:  notifier,
		files:     files,
		newStore:  newStore,
		strict:    strict,
		log:       log,
	}
}

// AddProduct registra un producto nuevo o sobrescribe el existente con el
// mismo ID (last write wins, sin error). Devuelve true si hubo
// sobrescritura. Tras guardar siempre corre la verificación de stock bajo.
func (uc *UseCase) AddProduct(in dto.CreateProductRequest) (bool, error) {
	if in.Price.IsNegative() {
		return false, domain.ErrInvalidInput
	}
	product := entity.NewProduct(in.ID, in.Name, in.Category, in.Price, in.Quantity, in.ReorderLevel)
	overwritten := uc.products.Save(product)
	if overwritten {
		uc.log.Warn().Int("product_id", product.ID).Msg("producto sobrescrito: el ID ya existía")
	} else {
		uc.log.Info().Int("product_id", product.ID).Str("name", product.Name).Msg("producto registrado")
	}
	uc.checkLowStock(product)
	return overwritten, nil
}

// RemoveProduct elimina el producto si existe; sobre un ID ausente es un
// no-op idempotente, no un error.
func (uc *UseCase) RemoveProduct(id int) {
	uc.products.Delete(id)
	uc.log.Info().Int("product_id", id).Msg("producto eliminado")
}

// GetProduct devuelve el producto o nil si no existe.
func (uc *UseCase) GetProduct(id int) *dto.ProductResponse {
	return toProductResponse(uc.products.GetByID(id))
}

// SearchByName busca por subcadena del nombre, sin distinguir mayúsculas.
func (uc *UseCase) SearchByName(name string) []dto.ProductResponse {
	return toProductResponses(uc.products.SearchByName(name))
}

// SearchByCategory busca por categoría exacta, sin distinguir mayúsculas.
func (uc *UseCase) SearchByCategory(category string) []dto.ProductResponse {
	return toProductResponses(uc.products.SearchByCategory(category))
}

// ListProducts devuelve el inventario completo en orden de inserción, cada
// producto con su bandera de stock bajo.
func (uc *UseCase) ListProducts() []dto.ProductResponse {
	return toProductResponses(uc.products.List())
}

// AdjustQuantity aplica un delta con signo sobre la cantidad de un producto
// y registra el movimiento correspondiente en la bitácora.
//
// Errores: ErrNotFound si el producto no existe (a diferencia del borrado,
// un ajuste sobre un ID ausente se reporta para no enmascarar errores del
// operador); ErrInvalidInput si delta es cero (un movimiento sin signo no
// es IN ni OUT); ErrInsufficientStock en modo estricto cuando el ajuste
// dejaría la cantidad bajo cero. En caso de error no se muta nada ni se
// registra movimiento.
func (uc *UseCase) AdjustQuantity(id, delta int) (*dto.ProductResponse, error) {
	product := uc.products.GetByID(id)
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	if uc.strict && product.Quantity+delta < 0 {
		uc.log.Warn().
			Int("product_id", id).
			Int("quantity", product.Quantity).
			Int("delta", delta).
			Msg("ajuste rechazado en modo estricto")
		return nil, domain.ErrInsufficientStock
	}

	product.UpdateQuantity(delta)
	movement := &entity.StockMovement{
		ID:        uc.movements.Count() + 1,
		ProductID: id,
		Quantity:  delta,
		Type:      entity.MovementTypeFor(delta),
		Date:      time.Now(),
	}
	uc.movements.Append(movement)
	uc.log.Info().
		Int("movement_id", movement.ID).
		Int("product_id", id).
		Int("delta", delta).
		Str("type", movement.Type).
		Msg("movimiento registrado")

	uc.checkLowStock(product)
	return toProductResponse(product), nil
}

// Movements expone la bitácora en orden cronológico (solo lectura).
func (uc *UseCase) Movements() []*entity.StockMovement {
	return uc.movements.List()
}

// Products expone el inventario vigente en orden de inserción (solo
// lectura). Tras una importación apunta al almacén recién instalado.
func (uc *UseCase) Products() []*entity.Product {
	return uc.products.List()
}

// StockLevels devuelve la instantánea (nombre, cantidad) que consume la
// capa de visualización.
func (uc *UseCase) StockLevels() []dto.StockLevelDTO {
	products := uc.products.List()
	levels := make([]dto.StockLevelDTO, 0, len(products))
	for _, p := range products {
		levels = append(levels, dto.StockLevelDTO{Name: p.Name, Quantity: p.Quantity})
	}
	return levels
}

// ExportCSV escribe el inventario completo, en orden de inserción, a path.
func (uc *UseCase) ExportCSV(path string) error {
	return uc.files.Export(uc.products.List(), path)
}

// ImportCSV reemplaza el inventario por el contenido del archivo. Cada
// producto parseado entra por el mismo camino de alta que en runtime, así
// las alertas de stock bajo se disparan también durante la carga. El
// almacén vivo solo se reemplaza si la importación entera tiene éxito.
func (uc *UseCase) ImportCSV(path string) error {
	parsed, err := uc.files.Import(path)
	if err != nil {
		return err
	}
	fresh := uc.newStore()
	for _, p := range parsed {
		fresh.Save(p)
		uc.checkLowStock(p)
	}
	uc.products = fresh
	return nil
}

// checkLowStock dispara la notificación cuando el producto está en o bajo
// su punto de reorden. Se invoca tras cada alta y tras cada ajuste.
func (uc *UseCase) checkLowStock(product *entity.Product) {
	if !product.IsLowStock() {
		return
	}
	uc.log.Warn().
		Int("product_id", product.ID).
		Str("name", product.Name).
		Int("quantity", product.Quantity).
		Int("reorder_level", product.ReorderLevel).
		Msg("stock bajo")
	uc.notifier.NotifyLowStock(product)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		IsLowStock:   p.IsLowStock(),
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items
}
