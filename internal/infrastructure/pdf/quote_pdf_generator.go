// Package pdf genera la hoja de cotización imprimible de un trabajo de
// impresión 3D.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Fecha de emisión                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MATERIAL: nombre, tipo, color, precio por gramo             │
//	│  PARÁMETROS: peso, horas, tarifa máquina, mano de obra       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: material / máquina / mano de obra / subtotal      │
//	│  TOTAL: margen + total cotizado                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/schartrand77/stockworks/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// QuotePDFGenerator genera la hoja de cotización usando Maroto v2.
type QuotePDFGenerator struct{}

// NewQuotePDFGenerator construye el generador.
func NewQuotePDFGenerator() *QuotePDFGenerator { return &QuotePDFGenerator{} }

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
func (g *QuotePDFGenerator) GenerateQuotePDF(req dto.QuoteRequest, quote *dto.QuoteResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización de impresión 3D", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(materialRow(&quote.MaterialSnapshot))
	m.AddRows(parametersRow(req))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(breakdownRows(quote.Pricing)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(req, quote.Pricing))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("COTIZACIÓN DE IMPRESIÓN 3D", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func materialRow(material *dto.MaterialResponse) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("MATERIAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(material.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   Color: %s   |   Precio: $%s/g",
				material.FilamentType,
				material.Color,
				material.PricePerGram.StringFixed(4),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func parametersRow(req dto.QuoteRequest) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PARÁMETROS DEL TRABAJO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Peso: %s g   |   Tiempo: %s h   |   Tarifa máquina: $%s/h   |   Mano de obra: $%s",
				req.WeightGrams.String(),
				req.PrintTimeHours.String(),
				req.MachineHourRate.StringFixed(2),
				req.LaborCost.StringFixed(2),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func breakdownRows(p dto.QuoteBreakdownDTO) []core.Row {
	entry := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(7).Add(text.New(label, props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1})),
			col.New(5).Add(text.New(value, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		)
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("DESGLOSE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		entry("Costo de material", "$"+p.MaterialCost.StringFixed(2)),
		entry("Tiempo de máquina", "$"+p.MachineCost.StringFixed(2)),
		entry("Mano de obra", "$"+p.LaborCost.StringFixed(2)),
		entry("Subtotal", "$"+p.Subtotal.StringFixed(2)),
	}
}

func totalRow(req dto.QuoteRequest, p dto.QuoteBreakdownDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(fmt.Sprintf("Margen (%s%%)", req.MarginPct.String()), props.Text{
				Size: 9, Align: align.Left, Top: 1, Left: 1,
			}),
			text.New("TOTAL COTIZADO", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Left,
				Color: colorPrimary, Top: 8, Left: 1,
			}),
		),
		col.New(5).Add(
			text.New("$"+p.MarginAmount.StringFixed(2), props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			}),
			text.New("$"+p.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 8, Right: 1,
			}),
		),
	)
}
