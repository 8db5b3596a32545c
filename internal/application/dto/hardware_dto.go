package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateHardwareDefinitionRequest body para POST /api/hardware/definitions.
type CreateHardwareDefinitionRequest struct {
	Name                   string          `json:"name"`
	Category               string          `json:"category,omitempty"`
	Supplier               string          `json:"supplier,omitempty"`
	ManufacturerPartNumber string          `json:"manufacturer_part_number,omitempty"`
	UnitOfMeasure          string          `json:"unit_of_measure,omitempty"` // default "piece"
	UnitCost               decimal.Decimal `json:"unit_cost"`
	Notes                  string          `json:"notes,omitempty"`
}

// UpdateHardwareDefinitionRequest body para PUT /api/hardware/definitions/:id.
type UpdateHardwareDefinitionRequest struct {
	Name                   *string          `json:"name,omitempty"`
	Category               *string          `json:"category,omitempty"`
	Supplier               *string          `json:"supplier,omitempty"`
	ManufacturerPartNumber *string          `json:"manufacturer_part_number,omitempty"`
	UnitOfMeasure          *string          `json:"unit_of_measure,omitempty"`
	UnitCost               *decimal.Decimal `json:"unit_cost,omitempty"`
	Notes                  *string          `json:"notes,omitempty"`
}

// HardwareDefinitionResponse representación JSON de una definición de hardware.
type HardwareDefinitionResponse struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Category               string          `json:"category,omitempty"`
	Supplier               string          `json:"supplier,omitempty"`
	ManufacturerPartNumber string          `json:"manufacturer_part_number,omitempty"`
	UnitOfMeasure          string          `json:"unit_of_measure"`
	UnitCost               decimal.Decimal `json:"unit_cost"`
	Notes                  string          `json:"notes,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// CreateHardwareItemRequest body para POST /api/hardware/items.
type CreateHardwareItemRequest struct {
	HardwareDefinitionID string           `json:"hardware_definition_id"`
	BinLocation          string           `json:"bin_location"`
	QuantityOnHand       decimal.Decimal  `json:"quantity_on_hand"` // saldo inicial
	ReorderLevel         decimal.Decimal  `json:"reorder_level"`
	UnitCostOverride     *decimal.Decimal `json:"unit_cost_override,omitempty"`
}

// UpdateHardwareItemRequest body para PUT /api/hardware/items/:id. La cantidad
// no es editable: si llega, se rechaza con 400 (solo el libro la mueve).
type UpdateHardwareItemRequest struct {
	HardwareDefinitionID *string          `json:"hardware_definition_id,omitempty"`
	BinLocation          *string          `json:"bin_location,omitempty"`
	QuantityOnHand       *decimal.Decimal `json:"quantity_on_hand,omitempty"`
	ReorderLevel         *decimal.Decimal `json:"reorder_level,omitempty"`
	UnitCostOverride     *decimal.Decimal `json:"unit_cost_override,omitempty"`
}

// HardwareItemResponse representación JSON de una cuenta de stock de hardware.
type HardwareItemResponse struct {
	ID                   string           `json:"id"`
	HardwareDefinitionID string           `json:"hardware_definition_id"`
	BinLocation          string           `json:"bin_location"`
	QuantityOnHand       decimal.Decimal  `json:"quantity_on_hand"`
	ReorderLevel         decimal.Decimal  `json:"reorder_level"`
	UnitCostOverride     *decimal.Decimal `json:"unit_cost_override,omitempty"`
	BelowReorder         bool             `json:"below_reorder"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}
