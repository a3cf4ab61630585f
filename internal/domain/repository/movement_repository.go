package repository

import "github.com/jhoicas/inventario-cli/internal/domain/entity"

// MovementRepository define el puerto de la bitácora de movimientos.
// Es append-only: no existe actualización ni borrado de movimientos.
type MovementRepository interface {
	Append(movement *entity.StockMovement)
	// List devuelve los movimientos en orden de registro (cronológico).
	List() []*entity.StockMovement
	// Count devuelve el total registrado; el caller asigna el próximo ID
	// como Count()+1 antes de Append.
	Count() int
}
