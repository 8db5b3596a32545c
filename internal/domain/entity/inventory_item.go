package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem es una cuenta de stock de filamento: una ubicación física con
// una cantidad en gramos derivada del libro de movimientos. QuantityGrams
// siempre es igual a la suma de los Change de sus movimientos; nunca se
// modifica directamente, solo vía el libro.
type InventoryItem struct {
	ID               string
	MaterialID       string
	Location         string
	QuantityGrams    decimal.Decimal // cache derivado del libro
	ReorderLevel     decimal.Decimal // >= 0
	SpoolSerial      string          // serial marcado en la bobina (opcional)
	UnitCostOverride *decimal.Decimal // >= 0 (opcional)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BelowReorder indica si la cuenta está bajo su punto de reorden.
func (i *InventoryItem) BelowReorder() bool {
	return i.QuantityGrams.LessThan(i.ReorderLevel)
}
