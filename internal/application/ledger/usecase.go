// Package ledger implementa el núcleo del sistema: el libro append-only de
// movimientos de stock y la reconciliación de la cantidad cacheada de cada
// cuenta. Una misma implementación sirve a los dos libros (filamento y
// hardware); cada instancia recibe sus propios adaptadores.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// UseCase aplica movimientos de forma transaccional con bloqueo de fila
// (SELECT FOR UPDATE) y lista el historial de una cuenta.
type UseCase struct {
	txRunner  TxRunner
	accounts  repository.StockAccountRepository
	movements repository.MovementRepository
}

// NewUseCase construye el caso de uso. accounts y movements van atados al
// pool (lecturas); txRunner produce repos atados a una transacción.
func NewUseCase(txRunner TxRunner, accounts repository.StockAccountRepository, movements repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, accounts: accounts, movements: movements}
}

// MovementInput entrada para aplicar un movimiento a una cuenta de stock.
type MovementInput struct {
	AccountID string
	Type      string // incoming, outgoing, adjustment
	Change    decimal.Decimal
	Reference string
	Note      string
}

// ApplyMovement valida la entrada, normaliza el signo según el tipo y, en una
// sola transacción, bloquea la fila de la cuenta, inserta el movimiento y
// actualiza la cantidad cacheada. Ningún estado intermedio es observable: la
// cantidad nueva aparece junto con el movimiento o no aparece nada.
//
// La cantidad puede quedar negativa: el libro registra hechos; impedir el
// sobregiro es política de negocio de capas superiores.
func (uc *UseCase) ApplyMovement(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Change.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.Movement{
		ID:        uuid.New().String(),
		AccountID: in.AccountID,
		Type:      in.Type,
		Change:    entity.NormalizeChange(in.Type, in.Change),
		Reference: in.Reference,
		Note:      in.Note,
		CreatedAt: time.Now().UTC(),
	}

	err := uc.txRunner.Run(ctx, func(
		accounts repository.StockAccountRepository,
		movements repository.MovementRepository,
	) error {
		qty, err := accounts.QuantityForUpdate(in.AccountID)
		if err != nil {
			return err
		}
		if qty == nil {
			return domain.ErrNotFound
		}
		if err := movements.Create(mov); err != nil {
			return err
		}
		return accounts.SetQuantity(in.AccountID, qty.Add(mov.Change))
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ListMovements devuelve el historial completo de la cuenta en orden
// cronológico ascendente. Re-consultar sin escrituras intermedias produce la
// misma secuencia.
func (uc *UseCase) ListMovements(accountID string) ([]*entity.Movement, error) {
	ok, err := uc.accounts.Exists(accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.movements.ListByAccount(accountID)
}
