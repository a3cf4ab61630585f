package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

func TestIsLowStock_LimiteInclusivo(t *testing.T) {
	p := entity.NewProduct(1, "Widget", "Hardware", decimal.NewFromFloat(2.50), 10, 10)

	// Quantity == ReorderLevel ya cuenta como stock bajo
	assert.True(t, p.IsLowStock(), "cantidad igual al punto de reorden debe ser stock bajo")

	p.UpdateQuantity(1)
	assert.False(t, p.IsLowStock())

	p.UpdateQuantity(-2)
	assert.True(t, p.IsLowStock())
}

func TestUpdateQuantity_PermiteNegativo(t *testing.T) {
	p := entity.NewProduct(1, "Widget", "Hardware", decimal.NewFromFloat(2.50), 3, 0)
	p.UpdateQuantity(-5)
	assert.Equal(t, -2, p.Quantity, "sin modo estricto la cantidad puede quedar bajo cero")
}

func TestMovementTypeFor_SignoDelDelta(t *testing.T) {
	assert.Equal(t, entity.MovementTypeIN, entity.MovementTypeFor(7))
	assert.Equal(t, entity.MovementTypeOUT, entity.MovementTypeFor(-7))
}

func TestTotalValue(t *testing.T) {
	p := entity.NewProduct(1, "Widget", "Hardware", decimal.NewFromFloat(2.50), 100, 10)
	assert.True(t, decimal.NewFromInt(250).Equal(p.TotalValue()))
}
