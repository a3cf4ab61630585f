package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
)

func producto(id int, name, category string) *entity.Product {
	return entity.NewProduct(id, name, category, decimal.NewFromFloat(1.00), 10, 2)
}

func TestSaveYGetByID(t *testing.T) {
	repo := memory.NewProductRepository()
	p := producto(1, "Widget", "Hardware")

	overwritten := repo.Save(p)

	assert.False(t, overwritten)
	assert.Same(t, p, repo.GetByID(1))
	assert.Nil(t, repo.GetByID(99))
}

func TestSave_SobrescribeConservandoPosicion(t *testing.T) {
	repo := memory.NewProductRepository()
	repo.Save(producto(1, "Widget", "Hardware"))
	repo.Save(producto(2, "Tuerca", "Hardware"))

	overwritten := repo.Save(producto(1, "Widget v2", "Hardware"))

	require.True(t, overwritten, "guardar con un ID existente debe reportar sobrescritura")
	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Widget v2", list[0].Name, "la sobrescritura conserva la posición de inserción")
	assert.Equal(t, "Tuerca", list[1].Name)
}

func TestDelete_IdempotenteConIDInexistente(t *testing.T) {
	repo := memory.NewProductRepository()
	repo.Save(producto(1, "Widget", "Hardware"))

	repo.Delete(1)
	repo.Delete(1)  // segunda vez: no-op
	repo.Delete(42) // nunca existió: no-op

	assert.Nil(t, repo.GetByID(1))
	assert.Empty(t, repo.List())
}

func TestList_OrdenDeInsercion(t *testing.T) {
	repo := memory.NewProductRepository()
	repo.Save(producto(3, "C", "x"))
	repo.Save(producto(1, "A", "x"))
	repo.Save(producto(2, "B", "x"))

	list := repo.List()
	require.Len(t, list, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{list[0].ID, list[1].ID, list[2].ID})
}

func TestSearchByName_SubcadenaSinMayusculas(t *testing.T) {
	repo := memory.NewProductRepository()
	repo.Save(producto(1, "Widget", "Hardware"))
	repo.Save(producto(2, "Gadget", "Hardware"))

	results := repo.SearchByName("wid")
	require.Len(t, results, 1)
	assert.Equal(t, "Widget", results[0].Name)

	// "Wid" es subcadena de "Widget"
	assert.Len(t, repo.SearchByName("Wid"), 1)
	// subcadena compartida: ambos terminan en "get"
	assert.Len(t, repo.SearchByName("GET"), 2)
	assert.Empty(t, repo.SearchByName("tornillo"))
}

func TestSearchByCategory_ExactaSinMayusculas(t *testing.T) {
	repo := memory.NewProductRepository()
	repo.Save(producto(1, "Widget", "Hardware"))

	assert.Len(t, repo.SearchByCategory("hardware"), 1, "la búsqueda de categoría no distingue mayúsculas")
	assert.Empty(t, repo.SearchByCategory("Hard"), "la categoría es igualdad exacta, no subcadena")
}
