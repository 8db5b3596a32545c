package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body para POST /api/inventory.
type CreateInventoryItemRequest struct {
	MaterialID       string           `json:"material_id"`
	Location         string           `json:"location"`
	QuantityGrams    decimal.Decimal  `json:"quantity_grams"` // saldo inicial
	ReorderLevel     decimal.Decimal  `json:"reorder_level"`
	SpoolSerial      string           `json:"spool_serial,omitempty"`
	UnitCostOverride *decimal.Decimal `json:"unit_cost_override,omitempty"`
}

// UpdateInventoryItemRequest body para PUT /api/inventory/:id. La cantidad no
// es editable: si llega, se rechaza con 400 (solo el libro la mueve).
type UpdateInventoryItemRequest struct {
	MaterialID       *string          `json:"material_id,omitempty"`
	Location         *string          `json:"location,omitempty"`
	QuantityGrams    *decimal.Decimal `json:"quantity_grams,omitempty"`
	ReorderLevel     *decimal.Decimal `json:"reorder_level,omitempty"`
	SpoolSerial      *string          `json:"spool_serial,omitempty"`
	UnitCostOverride *decimal.Decimal `json:"unit_cost_override,omitempty"`
}

// InventoryItemResponse representación JSON de una cuenta de stock de
// filamento.
type InventoryItemResponse struct {
	ID               string           `json:"id"`
	MaterialID       string           `json:"material_id"`
	Location         string           `json:"location"`
	QuantityGrams    decimal.Decimal  `json:"quantity_grams"`
	ReorderLevel     decimal.Decimal  `json:"reorder_level"`
	SpoolSerial      string           `json:"spool_serial,omitempty"`
	UnitCostOverride *decimal.Decimal `json:"unit_cost_override,omitempty"`
	BelowReorder     bool             `json:"below_reorder"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ApplyMovementRequest body para POST /api/inventory/movements y
// POST /api/hardware/movements.
type ApplyMovementRequest struct {
	AccountID string          `json:"account_id"`
	Type      string          `json:"movement_type"` // incoming, outgoing, adjustment
	Change    decimal.Decimal `json:"change"`
	Reference string          `json:"reference,omitempty"`
	Note      string          `json:"note,omitempty"`
}

// MovementResponse representación JSON de una entrada del libro.
type MovementResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Type      string          `json:"movement_type"`
	Change    decimal.Decimal `json:"change"`
	Reference string          `json:"reference,omitempty"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
