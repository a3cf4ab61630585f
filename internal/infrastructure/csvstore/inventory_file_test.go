package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

func newFile() *csvstore.InventoryFile {
	return csvstore.NewInventoryFile(logger.Nop())
}

func TestExport_EncabezadoYFilasEnOrden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.csv")
	products := []*entity.Product{
		entity.NewProduct(1, "Widget", "Hardware", decimal.NewFromFloat(2.50), 100, 10),
		entity.NewProduct(2, "Caja, grande", "Empaque", decimal.NewFromFloat(10.00), 5, 1),
	}

	require.NoError(t, newFile().Export(products, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	contenido := string(raw)
	assert.Contains(t, contenido, "product_id,name,category,price,quantity,reorder_level\n")
	assert.Contains(t, contenido, "1,Widget,Hardware,2.5,100,10\n")
	// el nombre con coma queda entrecomillado según CSV estándar
	assert.Contains(t, contenido, `"Caja, grande"`)
}

func TestImport_ColumnasPorNombreNoPorPosicion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.csv")
	contenido := "name,reorder_level,product_id,quantity,price,category\nWidget,10,1,100,2.50,Hardware\n"
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	products, err := newFile().Import(path)

	require.NoError(t, err)
	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "Hardware", p.Category)
	assert.True(t, decimal.NewFromFloat(2.50).Equal(p.Price))
	assert.Equal(t, 100, p.Quantity)
	assert.Equal(t, 10, p.ReorderLevel)
}

func TestImport_ColumnaFaltante(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.csv")
	contenido := "product_id,name,category,price,quantity\n1,Widget,Hardware,2.50,100\n"
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	_, err := newFile().Import(path)

	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestImport_NumericoMalformadoFallaTodo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.csv")
	contenido := "product_id,name,category,price,quantity,reorder_level\n" +
		"1,Widget,Hardware,2.50,100,10\n" +
		"2,Caja,Empaque,10.00,cinco,1\n"
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	products, err := newFile().Import(path)

	assert.ErrorIs(t, err, domain.ErrParse, "una fila mala falla la importación entera, sin recuperación parcial")
	assert.Nil(t, products)
}

func TestImport_ArchivoInexistente(t *testing.T) {
	_, err := newFile().Import(filepath.Join(t.TempDir(), "no-existe.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestRoundTrip_CamposIdenticos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.csv")
	originales := []*entity.Product{
		entity.NewProduct(1, "Widget", "Hardware", decimal.NewFromFloat(2.50), 100, 10),
		entity.NewProduct(2, "Tuerca", "hardware", decimal.NewFromFloat(0.05), -3, 0),
		entity.NewProduct(9, "Caja, grande", "Empaque", decimal.NewFromInt(10), 5, 1),
	}
	f := newFile()

	require.NoError(t, f.Export(originales, path))
	importados, err := f.Import(path)
	require.NoError(t, err)

	require.Len(t, importados, len(originales))
	for i, want := range originales {
		got := importados[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Category, got.Category)
		assert.True(t, want.Price.Equal(got.Price), "precio %s != %s", want.Price, got.Price)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.Equal(t, want.ReorderLevel, got.ReorderLevel)
	}
}

func TestExport_SobrescribeAtomicamente(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inv.csv")
	require.NoError(t, os.WriteFile(path, []byte("contenido viejo"), 0o644))

	require.NoError(t, newFile().Export([]*entity.Product{
		entity.NewProduct(1, "Widget", "Hardware", decimal.NewFromFloat(2.50), 100, 10),
	}, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "contenido viejo")

	// no quedan temporales huérfanos en el directorio
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "inv.csv", entries[0].Name())
}
