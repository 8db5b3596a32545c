package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material es la ficha de catálogo de un filamento: datos descriptivos y
// costo base por gramo. El stock físico vive en InventoryItem; editar un
// material nunca reescribe movimientos históricos.
type Material struct {
	ID               string
	Name             string
	Brand            string // opcional
	FilamentType     string // PLA, PETG, ABS, TPU...
	Category         string // acabado: basic, matte, silk, cf... (opcional)
	Color            string
	Supplier         string // opcional
	PricePerGram     decimal.Decimal // > 0
	SpoolWeightGrams decimal.Decimal // > 0, gramos por bobina
	Barcode          string // UPC/EAN/SKU (opcional)
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
