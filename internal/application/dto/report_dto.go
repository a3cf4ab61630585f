package dto

// TurnoverEntryDTO unidades vendidas (movimientos OUT acumulados) de un
// producto que sigue en el inventario.
type TurnoverEntryDTO struct {
	ProductID int
	Name      string
	UnitsSold int
}

// StockLevelDTO par (nombre, cantidad) para la capa de visualización.
// Es una instantánea de solo lectura: graficarla no toca el inventario.
type StockLevelDTO struct {
	Name     string
	Quantity int
}
