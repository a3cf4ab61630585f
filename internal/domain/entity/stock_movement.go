package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// StockMovement registra un cambio de cantidad sobre un producto.
// Inmutable una vez agregado a la bitácora; nunca se elimina.
type StockMovement struct {
	ID        int    // 1-based, contiguo, asignado como count+1 al registrar
	ProductID int    // no se valida que el producto siga existiendo
	Quantity  int    // delta con signo: positivo entrada, negativo salida
	Type      string // IN u OUT, función total del signo del delta
	Date      time.Time
}

// MovementTypeFor clasifica un delta por su signo. Un delta de cero no tiene
// tipo: los ajustes de cero se rechazan antes de llegar aquí.
func MovementTypeFor(delta int) string {
	if delta > 0 {
		return MovementTypeIN
	}
	return MovementTypeOUT
}
