package repository

import (
	"github.com/shopspring/decimal"

	"github.com/schartrand77/stockworks/internal/domain/entity"
)

// StockAccountRepository es la vista que el libro de movimientos tiene de una
// cuenta de stock, sea de filamento o de hardware: existencia y cantidad
// cacheada. Los adaptadores de InventoryItem y HardwareItem implementan ambos
// este puerto sobre su propia tabla.
type StockAccountRepository interface {
	Exists(accountID string) (bool, error)
	// QuantityForUpdate bloquea la fila de la cuenta (SELECT ... FOR UPDATE)
	// y devuelve su cantidad actual. nil si la cuenta no existe.
	QuantityForUpdate(accountID string) (*decimal.Decimal, error)
	// SetQuantity escribe la cantidad cacheada. Solo debe invocarse dentro de
	// la transacción que sostiene el bloqueo de QuantityForUpdate.
	SetQuantity(accountID string, qty decimal.Decimal) error
}

// MovementRepository puerto de persistencia del libro append-only.
type MovementRepository interface {
	Create(m *entity.Movement) error
	// ListByAccount devuelve los movimientos en orden cronológico ascendente
	// (created_at, id). Cada llamada es un snapshot fresco, no un cursor vivo.
	ListByAccount(accountID string) ([]*entity.Movement, error)
}
