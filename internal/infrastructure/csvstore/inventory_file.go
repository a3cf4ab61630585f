package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// Columnas del archivo de inventario. Export siempre escribe este orden
// exacto; Import identifica las columnas por nombre, no por posición.
var exportHeader = []string{"product_id", "name", "category", "price", "quantity", "reorder_level"}

// InventoryFile serializa y deserializa el inventario como CSV plano.
type InventoryFile struct {
	log *logger.Logger
}

// NewInventoryFile construye el adaptador CSV.
func NewInventoryFile(log *logger.Logger) *InventoryFile {
	return &InventoryFile{log: log}
}

// Export escribe el encabezado y una fila por producto, en el orden recibido.
// Escribe a un archivo temporal del mismo directorio y renombra al final,
// para que un corte a mitad de escritura no corrompa el CSV destino.
func (f *InventoryFile) Export(products []*entity.Product, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".inventario-*.csv")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(exportHeader); err != nil {
		tmp.Close()
		return err
	}
	for _, p := range products {
		row := []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category,
			p.Price.String(),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.ReorderLevel),
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	f.log.Info().Str("path", path).Int("products", len(products)).Msg("inventario exportado")
	return nil
}

// Import lee el archivo completo y devuelve los productos en el orden de las
// filas. Cualquier campo numérico malformado falla la importación entera:
// no hay recuperación parcial por fila.
func (f *InventoryFile) Import(path string) ([]*entity.Product, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var products []*entity.Product
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", line, err)
		}
		p, err := parseRow(row, cols, line)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	f.log.Info().Str("path", path).Int("products", len(products)).Msg("inventario importado")
	return products, nil
}

// columnIndex mapea cada columna requerida a su posición en el encabezado.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range exportHeader {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("columna %q ausente en el encabezado: %w", required, domain.ErrParse)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int, line int) (*entity.Product, error) {
	id, err := parseInt(row, cols, "product_id", line)
	if err != nil {
		return nil, err
	}
	quantity, err := parseInt(row, cols, "quantity", line)
	if err != nil {
		return nil, err
	}
	reorder, err := parseInt(row, cols, "reorder_level", line)
	if err != nil {
		return nil, err
	}
	rawPrice := row[cols["price"]]
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return nil, fmt.Errorf("fila %d: price %q: %w", line, rawPrice, domain.ErrParse)
	}
	return entity.NewProduct(id, row[cols["name"]], row[cols["category"]], price, quantity, reorder), nil
}

func parseInt(row []string, cols map[string]int, col string, line int) (int, error) {
	raw := row[cols[col]]
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("fila %d: %s %q: %w", line, col, raw, domain.ErrParse)
	}
	return n, nil
}
