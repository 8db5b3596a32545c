package ledger

import (
	"context"

	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad movimiento+cantidad:
// ambos escriben o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accounts repository.StockAccountRepository,
		movements repository.MovementRepository,
	) error) error
}
