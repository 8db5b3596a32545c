package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testMaterial(pricePerGram string) *entity.Material {
	return &entity.Material{
		ID:           "00000000-0000-0000-0000-000000000001",
		Name:         "PLA Negro",
		FilamentType: "PLA",
		Color:        "negro",
		PricePerGram: decimal.RequireFromString(pricePerGram),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestQuote_VectorReferencia valida el desglose completo con el vector de
// referencia: 120 g a 0.05/g, 6 h a 12/h, 8 de mano de obra y 35% de margen.
func TestQuote_VectorReferencia(t *testing.T) {
	q, err := pricing.Quote(testMaterial("0.05"), pricing.QuoteInput{
		WeightGrams:     dec("120"),
		PrintTimeHours:  dec("6"),
		MachineHourRate: dec("12"),
		LaborCost:       dec("8"),
		MarginPct:       dec("35"),
	})
	require.NoError(t, err)

	assert.True(t, q.MaterialCost.Equal(dec("6")), "material_cost = %s", q.MaterialCost)
	assert.True(t, q.MachineCost.Equal(dec("72")), "machine_cost = %s", q.MachineCost)
	assert.True(t, q.LaborCost.Equal(dec("8")), "labor_cost = %s", q.LaborCost)
	assert.True(t, q.Subtotal.Equal(dec("86")), "subtotal = %s", q.Subtotal)
	assert.True(t, q.MarginAmount.Equal(dec("30.1")), "margin_amount = %s", q.MarginAmount)
	assert.True(t, q.Total.Equal(dec("116.1")), "total = %s", q.Total)
}

// TestQuote_MargenCero verifica que sin margen el total es igual al subtotal.
func TestQuote_MargenCero(t *testing.T) {
	q, err := pricing.Quote(testMaterial("0.10"), pricing.QuoteInput{
		WeightGrams:     dec("50"),
		PrintTimeHours:  dec("2"),
		MachineHourRate: dec("10"),
		LaborCost:       dec("0"),
		MarginPct:       dec("0"),
	})
	require.NoError(t, err)
	assert.True(t, q.MarginAmount.IsZero())
	assert.True(t, q.Total.Equal(q.Subtotal))
}

// TestQuote_TiempoCeroPermitido: cero horas de máquina es válido (solo costo
// de material y mano de obra).
func TestQuote_TiempoCeroPermitido(t *testing.T) {
	q, err := pricing.Quote(testMaterial("0.05"), pricing.QuoteInput{
		WeightGrams:     dec("100"),
		PrintTimeHours:  dec("0"),
		MachineHourRate: dec("12"),
		LaborCost:       dec("5"),
		MarginPct:       dec("10"),
	})
	require.NoError(t, err)
	assert.True(t, q.MachineCost.IsZero())
	assert.True(t, q.Subtotal.Equal(dec("10")))
}

// TestQuote_EntradasInvalidas cubre los rechazos de validación.
func TestQuote_EntradasInvalidas(t *testing.T) {
	valid := pricing.QuoteInput{
		WeightGrams:     dec("100"),
		PrintTimeHours:  dec("1"),
		MachineHourRate: dec("10"),
		LaborCost:       dec("0"),
		MarginPct:       dec("10"),
	}

	cases := []struct {
		name   string
		mutate func(*pricing.QuoteInput)
	}{
		{"peso cero", func(in *pricing.QuoteInput) { in.WeightGrams = decimal.Zero }},
		{"peso negativo", func(in *pricing.QuoteInput) { in.WeightGrams = dec("-10") }},
		{"horas negativas", func(in *pricing.QuoteInput) { in.PrintTimeHours = dec("-1") }},
		{"margen negativo", func(in *pricing.QuoteInput) { in.MarginPct = dec("-5") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := pricing.Quote(testMaterial("0.05"), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestQuote_MaterialNoResuelto: material nil es NotFound, no panic.
func TestQuote_MaterialNoResuelto(t *testing.T) {
	_, err := pricing.Quote(nil, pricing.QuoteInput{WeightGrams: dec("10")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestQuote_SinEfectosSecundarios: el material de entrada no se modifica.
func TestQuote_SinEfectosSecundarios(t *testing.T) {
	m := testMaterial("0.05")
	before := m.PricePerGram
	_, err := pricing.Quote(m, pricing.QuoteInput{
		WeightGrams:     dec("10"),
		PrintTimeHours:  dec("1"),
		MachineHourRate: dec("1"),
	})
	require.NoError(t, err)
	assert.True(t, m.PricePerGram.Equal(before))
}
