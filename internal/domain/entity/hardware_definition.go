package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HardwareDefinition es la ficha de catálogo de un consumible de ferretería
// (imanes, insertos, tornillos...). Las existencias por ubicación viven en
// HardwareItem.
type HardwareDefinition struct {
	ID                     string
	Name                   string
	Category               string // opcional: magnets, inserts, screws...
	Supplier               string // opcional
	ManufacturerPartNumber string // referencia del fabricante (opcional)
	UnitOfMeasure          string // piece, set, pack...
	UnitCost               decimal.Decimal // > 0
	Notes                  string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
