package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/schartrand77/stockworks/internal/application/ledger"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// LedgerTxRunner implementa ledger.TxRunner sobre pgx: abre la transacción,
// construye los repositorios atados a ella y hace commit solo si fn termina
// sin error. Las fábricas deciden qué par de tablas sirve la transacción.
type LedgerTxRunner struct {
	pool         *pgxpool.Pool
	newAccounts  func(Querier) repository.StockAccountRepository
	newMovements func(Querier) repository.MovementRepository
}

var _ ledger.TxRunner = (*LedgerTxRunner)(nil)

// NewInventoryLedgerTxRunner transacciones del libro de filamento.
func NewInventoryLedgerTxRunner(pool *pgxpool.Pool) *LedgerTxRunner {
	return &LedgerTxRunner{
		pool:         pool,
		newAccounts:  func(q Querier) repository.StockAccountRepository { return NewInventoryItemRepo(q) },
		newMovements: func(q Querier) repository.MovementRepository { return NewStockMovementRepo(q) },
	}
}

// NewHardwareLedgerTxRunner transacciones del libro de hardware.
func NewHardwareLedgerTxRunner(pool *pgxpool.Pool) *LedgerTxRunner {
	return &LedgerTxRunner{
		pool:         pool,
		newAccounts:  func(q Querier) repository.StockAccountRepository { return NewHardwareItemRepo(q) },
		newMovements: func(q Querier) repository.MovementRepository { return NewHardwareMovementRepo(q) },
	}
}

func (r *LedgerTxRunner) Run(ctx context.Context, fn func(
	accounts repository.StockAccountRepository,
	movements repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("abrir transacción: %w", translateError(err))
	}
	defer tx.Rollback(ctx)

	if err := fn(r.newAccounts(tx), r.newMovements(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", translateError(err))
	}
	return nil
}
