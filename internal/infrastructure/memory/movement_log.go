package memory

import "github.com/jhoicas/inventario-cli/internal/domain/entity"

// MovementLog implementa repository.MovementRepository como bitácora
// append-only en memoria: orden de inserción = orden cronológico.
type MovementLog struct {
	movements []*entity.StockMovement
}

// NewMovementLog construye una bitácora vacía.
func NewMovementLog() *MovementLog {
	return &MovementLog{}
}

// Append agrega el movimiento al final de la bitácora.
func (l *MovementLog) Append(movement *entity.StockMovement) {
	l.movements = append(l.movements, movement)
}

// List devuelve los movimientos en orden de registro.
func (l *MovementLog) List() []*entity.StockMovement {
	return l.movements
}

// Count devuelve el total de movimientos registrados.
func (l *MovementLog) Count() int {
	return len(l.movements)
}
