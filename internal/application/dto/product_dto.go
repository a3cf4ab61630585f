package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para registrar (o sobrescribir) un producto.
type CreateProductRequest struct {
	ID           int
	Name         string
	Category     string
	Price        decimal.Decimal
	Quantity     int
	ReorderLevel int
}

// ProductResponse producto para presentación, con su estado de stock bajo ya derivado.
type ProductResponse struct {
	ID           int
	Name         string
	Category     string
	Price        decimal.Decimal
	Quantity     int
	ReorderLevel int
	IsLowStock   bool
}
