package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest body para POST /api/materials.
type CreateMaterialRequest struct {
	Name             string          `json:"name"`
	Brand            string          `json:"brand,omitempty"`
	FilamentType     string          `json:"filament_type"`
	Category         string          `json:"category,omitempty"`
	Color            string          `json:"color"`
	Supplier         string          `json:"supplier,omitempty"`
	PricePerGram     decimal.Decimal `json:"price_per_gram"`
	SpoolWeightGrams decimal.Decimal `json:"spool_weight_grams"`
	Barcode          string          `json:"barcode,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// UpdateMaterialRequest body para PUT /api/materials/:id. Campos nil no se
// tocan.
type UpdateMaterialRequest struct {
	Name             *string          `json:"name,omitempty"`
	Brand            *string          `json:"brand,omitempty"`
	FilamentType     *string          `json:"filament_type,omitempty"`
	Category         *string          `json:"category,omitempty"`
	Color            *string          `json:"color,omitempty"`
	Supplier         *string          `json:"supplier,omitempty"`
	PricePerGram     *decimal.Decimal `json:"price_per_gram,omitempty"`
	SpoolWeightGrams *decimal.Decimal `json:"spool_weight_grams,omitempty"`
	Barcode          *string          `json:"barcode,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

// MaterialResponse representación JSON de un material.
type MaterialResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Brand            string          `json:"brand,omitempty"`
	FilamentType     string          `json:"filament_type"`
	Category         string          `json:"category,omitempty"`
	Color            string          `json:"color"`
	Supplier         string          `json:"supplier,omitempty"`
	PricePerGram     decimal.Decimal `json:"price_per_gram"`
	SpoolWeightGrams decimal.Decimal `json:"spool_weight_grams"`
	Barcode          string          `json:"barcode,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
