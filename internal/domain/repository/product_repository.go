package repository

import "github.com/jhoicas/inventario-cli/internal/domain/entity"

// ProductRepository define el puerto de almacenamiento de productos (DIP).
// El contrato es el de un almacén en memoria de proceso único: las lecturas
// nunca fallan y Delete sobre un id ausente es un no-op idempotente.
type ProductRepository interface {
	// Save inserta o sobrescribe la entrada del id del producto (last write
	// wins); devuelve true si sobrescribió una entrada existente. Una
	// sobrescritura conserva la posición de inserción original.
	Save(product *entity.Product) (overwritten bool)
	// GetByID devuelve el producto o nil si no existe.
	GetByID(id int) *entity.Product
	Delete(id int)
	// SearchByName busca por subcadena del nombre, sin distinguir mayúsculas.
	SearchByName(name string) []*entity.Product
	// SearchByCategory busca por igualdad exacta de categoría, sin distinguir mayúsculas.
	SearchByCategory(category string) []*entity.Product
	// List devuelve todos los productos en orden de inserción.
	List() []*entity.Product
}
