package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HardwareItem es una cuenta de stock de hardware: referencia una definición
// de catálogo y mantiene la cantidad en mano derivada de sus movimientos.
type HardwareItem struct {
	ID                   string
	HardwareDefinitionID string
	BinLocation          string
	QuantityOnHand       decimal.Decimal // cache derivado del libro
	ReorderLevel         decimal.Decimal // >= 0
	UnitCostOverride     *decimal.Decimal // >= 0 (opcional)
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// BelowReorder indica si la cuenta está bajo su punto de reorden.
func (h *HardwareItem) BelowReorder() bool {
	return h.QuantityOnHand.LessThan(h.ReorderLevel)
}
