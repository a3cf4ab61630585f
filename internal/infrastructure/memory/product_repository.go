package memory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

// Verificación de contrato en compilación.
var (
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.MovementRepository = (*MovementLog)(nil)
)

// ProductRepository implementa repository.ProductRepository sobre un mapa
// en memoria más un slice de ids que conserva el orden de inserción
// (el orden de exportación a CSV es el orden de inserción).
type ProductRepository struct {
	products map[int]*entity.Product
	order    []int
	fold     cases.Caser
}

// NewProductRepository construye un almacén vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[int]*entity.Product),
		fold:     cases.Fold(),
	}
}

// Save inserta o sobrescribe; la sobrescritura conserva la posición original.
func (r *ProductRepository) Save(product *entity.Product) bool {
	_, exists := r.products[product.ID]
	r.products[product.ID] = product
	if !exists {
		r.order = append(r.order, product.ID)
	}
	return exists
}

// GetByID devuelve el producto o nil.
func (r *ProductRepository) GetByID(id int) *entity.Product {
	return r.products[id]
}

// Delete elimina la entrada si existe; no-op si no.
func (r *ProductRepository) Delete(id int) {
	if _, exists := r.products[id]; !exists {
		return
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// SearchByName busca por subcadena del nombre con case folding Unicode.
func (r *ProductRepository) SearchByName(name string) []*entity.Product {
	needle := r.fold.String(name)
	results := make([]*entity.Product, 0)
	for _, p := range r.List() {
		if strings.Contains(r.fold.String(p.Name), needle) {
			results = append(results, p)
		}
	}
	return results
}

// SearchByCategory busca por igualdad exacta de categoría con case folding.
// "hardware" encuentra "Hardware"; "Hard" no encuentra nada.
func (r *ProductRepository) SearchByCategory(category string) []*entity.Product {
	needle := r.fold.String(category)
	results := make([]*entity.Product, 0)
	for _, p := range r.List() {
		if r.fold.String(p.Category) == needle {
			results = append(results, p)
		}
	}
	return results
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepository) List() []*entity.Product {
	results := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		results = append(results, r.products[id])
	}
	return results
}
