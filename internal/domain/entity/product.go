package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario local (un solo usuario, una sola bodega).
// Quantity es entero con signo: en modo permisivo los ajustes pueden dejarlo negativo.
type Product struct {
	ID           int
	Name         string
	Category     string
	Price        decimal.Decimal // precio de venta
	Quantity     int
	ReorderLevel int // punto de reorden
}

// NewProduct construye un producto con sus seis campos.
func NewProduct(id int, name, category string, price decimal.Decimal, quantity, reorderLevel int) *Product {
	return &Product{
		ID:           id,
		Name:         name,
		Category:     category,
		Price:        price,
		Quantity:     quantity,
		ReorderLevel: reorderLevel,
	}
}

// IsLowStock indica si el producto está en o por debajo de su punto de reorden.
// El límite es inclusivo: Quantity == ReorderLevel ya cuenta como stock bajo.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// UpdateQuantity aplica un delta con signo sobre la cantidad, sin piso.
func (p *Product) UpdateQuantity(delta int) {
	p.Quantity += delta
}

// TotalValue devuelve Price * Quantity para agregados de reportes.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
