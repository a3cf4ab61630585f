package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/inventory"
	"github.com/jhoicas/inventario-cli/internal/application/report"
	"github.com/jhoicas/inventario-cli/internal/domain"
)

// Acciones del menú principal.
const (
	actionAdd      = "add"
	actionRemove   = "remove"
	actionList     = "list"
	actionSearch   = "search_name"
	actionCategory = "search_category"
	actionAdjust   = "adjust"
	actionChart    = "chart"
	actionExport   = "export"
	actionImport   = "import"
	actionReports  = "reports"
	actionExit     = "exit"
)

// Menu es la sesión interactiva del inventario: parsea entrada, invoca los
// casos de uso y muestra los resultados. Los errores se informan al
// operador y la sesión continúa.
type Menu struct {
	inventory *inventory.UseCase
	reports   *report.UseCase
	out       io.Writer
	csvPath   string // ruta precargada en los prompts de export/import
}

// NewMenu construye la sesión interactiva.
func NewMenu(inv *inventory.UseCase, rep *report.UseCase, out io.Writer, csvPath string) *Menu {
	return &Menu{inventory: inv, reports: rep, out: out, csvPath: csvPath}
}

// Run ejecuta el ciclo del menú hasta que el operador elija salir (o
// cancele con ctrl-c).
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, styleTitle.Render("SISTEMA DE GESTIÓN DE INVENTARIO"))
	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("¿Qué desea hacer?").
				Options(
					huh.NewOption("Agregar producto", actionAdd),
					huh.NewOption("Eliminar producto", actionRemove),
					huh.NewOption("Listar productos", actionList),
					huh.NewOption("Buscar por nombre", actionSearch),
					huh.NewOption("Buscar por categoría", actionCategory),
					huh.NewOption("Ajustar cantidad", actionAdjust),
					huh.NewOption("Gráfico de inventario", actionChart),
					huh.NewOption("Exportar a CSV", actionExport),
					huh.NewOption("Importar desde CSV", actionImport),
					huh.NewOption("Reportes estadísticos", actionReports),
					huh.NewOption("Salir", actionExit),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		if choice == actionExit {
			fmt.Fprintln(m.out, styleMuted.Render("Saliendo del sistema."))
			return nil
		}
		if err := m.dispatch(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue // prompt cancelado: de vuelta al menú
			}
			m.printError(err)
		}
	}
}

func (m *Menu) dispatch(choice string) error {
	switch choice {
	case actionAdd:
		return m.addProduct()
	case actionRemove:
		return m.removeProduct()
	case actionList:
		fmt.Fprintln(m.out, renderProductTable(m.inventory.ListProducts()))
	case actionSearch:
		return m.searchByName()
	case actionCategory:
		return m.searchByCategory()
	case actionAdjust:
		return m.adjustQuantity()
	case actionChart:
		fmt.Fprintln(m.out, RenderStockChart(m.inventory.StockLevels()))
	case actionExport:
		return m.exportCSV()
	case actionImport:
		return m.importCSV()
	case actionReports:
		fmt.Fprintln(m.out, RenderReports(m.reports.TotalInventoryValue(), m.reports.TurnoverReport()))
	}
	return nil
}

func (m *Menu) addProduct() error {
	var id, name, category, price, quantity, reorder string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("ID").Validate(validateInt).Value(&id),
		huh.NewInput().Title("Nombre").Validate(validateNonEmpty).Value(&name),
		huh.NewInput().Title("Categoría").Value(&category),
		huh.NewInput().Title("Precio").Validate(validateDecimal).Value(&price),
		huh.NewInput().Title("Cantidad").Validate(validateInt).Value(&quantity),
		huh.NewInput().Title("Punto de reorden").Validate(validateInt).Value(&reorder),
	))
	if err := form.Run(); err != nil {
		return err
	}

	req := dto.CreateProductRequest{
		ID:           mustInt(id),
		Name:         strings.TrimSpace(name),
		Category:     strings.TrimSpace(category),
		Price:        mustDecimal(price),
		Quantity:     mustInt(quantity),
		ReorderLevel: mustInt(reorder),
	}
	overwritten, err := m.inventory.AddProduct(req)
	if err != nil {
		return err
	}
	if overwritten {
		fmt.Fprintln(m.out, styleWarning.Render(fmt.Sprintf("El ID %d ya existía: producto sobrescrito.", req.ID)))
	} else {
		fmt.Fprintln(m.out, styleSuccess.Render("Producto registrado."))
	}
	return nil
}

func (m *Menu) removeProduct() error {
	id, err := m.promptInt("ID del producto")
	if err != nil {
		return err
	}
	m.inventory.RemoveProduct(id)
	fmt.Fprintln(m.out, styleSuccess.Render("Producto eliminado."))
	return nil
}

func (m *Menu) searchByName() error {
	name, err := m.promptText("Nombre a buscar")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, renderSearchResults(m.inventory.SearchByName(name)))
	return nil
}

func (m *Menu) searchByCategory() error {
	category, err := m.promptText("Categoría")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, renderSearchResults(m.inventory.SearchByCategory(category)))
	return nil
}

func (m *Menu) adjustQuantity() error {
	id, err := m.promptInt("ID del producto")
	if err != nil {
		return err
	}
	delta, err := m.promptInt("Cantidad (+/-)")
	if err != nil {
		return err
	}
	updated, err := m.inventory.AdjustQuantity(id, delta)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, styleSuccess.Render(
		fmt.Sprintf("Cantidad actualizada: %s ahora tiene %d.", updated.Name, updated.Quantity)))
	return nil
}

func (m *Menu) exportCSV() error {
	path, err := m.promptPath("Archivo CSV destino")
	if err != nil {
		return err
	}
	if err := m.inventory.ExportCSV(path); err != nil {
		return err
	}
	fmt.Fprintln(m.out, styleSuccess.Render("Guardado correctamente."))
	return nil
}

func (m *Menu) importCSV() error {
	path, err := m.promptPath("Archivo CSV origen")
	if err != nil {
		return err
	}
	if err := m.inventory.ImportCSV(path); err != nil {
		return err
	}
	fmt.Fprintln(m.out, styleSuccess.Render("Cargado correctamente."))
	return nil
}

// printError traduce la taxonomía de errores a mensajes de operador; la
// sesión nunca se cae por un error de una operación.
func (m *Menu) printError(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(m.out, styleError.Render("No existe un producto con ese ID."))
	case errors.Is(err, domain.ErrInsufficientStock):
		fmt.Fprintln(m.out, styleError.Render("Stock insuficiente para ese ajuste."))
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(m.out, styleError.Render("Entrada inválida (el ajuste no puede ser cero y el precio no puede ser negativo)."))
	case errors.Is(err, domain.ErrParse):
		fmt.Fprintln(m.out, styleError.Render("El archivo contiene campos numéricos inválidos: "+err.Error()))
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(m.out, styleError.Render("No se encontró el archivo."))
	default:
		fmt.Fprintln(m.out, styleError.Render("Error: "+err.Error()))
	}
}

// ── prompts ──────────────────────────────────────────────────────────────────

func (m *Menu) promptText(title string) (string, error) {
	var s string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Validate(validateNonEmpty).Value(&s),
	)).Run()
	return strings.TrimSpace(s), err
}

func (m *Menu) promptInt(title string) (int, error) {
	var s string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Validate(validateInt).Value(&s),
	)).Run()
	if err != nil {
		return 0, err
	}
	return mustInt(s), nil
}

func (m *Menu) promptPath(title string) (string, error) {
	s := m.csvPath
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Validate(validateNonEmpty).Value(&s),
	)).Run()
	return strings.TrimSpace(s), err
}

// ── validadores de entrada ───────────────────────────────────────────────────

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("no puede estar vacío")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("debe ser un número entero")
	}
	return nil
}

func mustInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func validateDecimal(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return errors.New("debe ser un número (ej. 2.50)")
	}
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(strings.TrimSpace(s))
	return d
}
