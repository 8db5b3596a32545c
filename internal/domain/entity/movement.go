package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Convención de signo sobre Change:
// incoming siempre positivo, outgoing siempre negativo, adjustment con el
// signo que aporte el caller.
const (
	MovementTypeIncoming   = "incoming"
	MovementTypeOutgoing   = "outgoing"
	MovementTypeAdjustment = "adjustment"
)

// Movement es una entrada inmutable del libro de movimientos de una cuenta de
// stock (filamento o hardware). Nunca se actualiza ni se borra de forma
// individual; solo desaparece en cascada al borrar su cuenta.
type Movement struct {
	ID        string
	AccountID string // InventoryItem.ID o HardwareItem.ID según el libro
	Type      string
	Change    decimal.Decimal // delta con signo ya normalizado, nunca cero
	Reference string          // número de trabajo, PO... (opcional)
	Note      string          // opcional
	CreatedAt time.Time
}

// ValidMovementType indica si el tipo es uno de los tres reconocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIncoming, MovementTypeOutgoing, MovementTypeAdjustment:
		return true
	}
	return false
}

// NormalizeChange aplica la convención de signo del tipo al delta recibido.
func NormalizeChange(movementType string, change decimal.Decimal) decimal.Decimal {
	switch movementType {
	case MovementTypeIncoming:
		return change.Abs()
	case MovementTypeOutgoing:
		return change.Abs().Neg()
	default:
		return change
	}
}
