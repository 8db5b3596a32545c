package dto

import "github.com/shopspring/decimal"

// QuoteRequest body para POST /api/pricing/quote.
type QuoteRequest struct {
	MaterialID      string          `json:"material_id"`
	WeightGrams     decimal.Decimal `json:"weight_grams"`
	PrintTimeHours  decimal.Decimal `json:"print_time_hours"`
	MachineHourRate decimal.Decimal `json:"machine_hour_rate"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	MarginPct       decimal.Decimal `json:"margin_pct"`
}

// QuoteBreakdownDTO desglose de la cotización, redondeado a 2 decimales para
// presentación (el cálculo interno conserva precisión completa).
type QuoteBreakdownDTO struct {
	MaterialCost decimal.Decimal `json:"material_cost"`
	MachineCost  decimal.Decimal `json:"machine_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	MarginAmount decimal.Decimal `json:"margin_amount"`
	Total        decimal.Decimal `json:"total"`
}

// QuoteResponse respuesta de cotización: desglose + snapshot del material
// usado, para que el cliente muestre con qué precios se calculó.
type QuoteResponse struct {
	Pricing          QuoteBreakdownDTO `json:"pricing"`
	MaterialSnapshot MaterialResponse  `json:"material_snapshot"`
}
