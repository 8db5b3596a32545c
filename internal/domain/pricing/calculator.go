// Package pricing implementa el cálculo de cotizaciones como servicio de
// dominio puro: sin estado, sin I/O. El redondeo se deja a la capa de
// presentación; aquí los valores conservan precisión decimal completa.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// QuoteInput parámetros del trabajo a cotizar. El material llega ya resuelto
// por el caller; este paquete no consulta el catálogo.
type QuoteInput struct {
	WeightGrams     decimal.Decimal // > 0
	PrintTimeHours  decimal.Decimal // >= 0
	MachineHourRate decimal.Decimal
	LaborCost       decimal.Decimal
	MarginPct       decimal.Decimal // >= 0, porcentaje sobre el subtotal
}

// QuoteBreakdown resultado efímero de la cotización; no se persiste.
type QuoteBreakdown struct {
	MaterialCost decimal.Decimal
	MachineCost  decimal.Decimal
	LaborCost    decimal.Decimal
	Subtotal     decimal.Decimal
	MarginAmount decimal.Decimal
	Total        decimal.Decimal
}

// Quote calcula el desglose de precio para un trabajo de impresión:
//
//	material = gramos * precio_por_gramo
//	máquina  = horas * tarifa_hora
//	subtotal = material + máquina + mano de obra
//	margen   = subtotal * (pct / 100)
//	total    = subtotal + margen
func Quote(material *entity.Material, in QuoteInput) (*QuoteBreakdown, error) {
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if !in.WeightGrams.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.PrintTimeHours.IsNegative() || in.MarginPct.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	materialCost := in.WeightGrams.Mul(material.PricePerGram)
	machineCost := in.PrintTimeHours.Mul(in.MachineHourRate)
	subtotal := materialCost.Add(machineCost).Add(in.LaborCost)
	marginAmount := subtotal.Mul(in.MarginPct).Div(hundred)

	return &QuoteBreakdown{
		MaterialCost: materialCost,
		MachineCost:  machineCost,
		LaborCost:    in.LaborCost,
		Subtotal:     subtotal,
		MarginAmount: marginAmount,
		Total:        subtotal.Add(marginAmount),
	}, nil
}
