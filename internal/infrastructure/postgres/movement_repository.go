package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// MovementRepo adaptador PostgreSQL genérico del libro append-only: el mismo
// código sirve a stock_movements y hardware_movements parametrizando tabla y
// columna FK.
type MovementRepo struct {
	db        Querier
	table     string
	accountFK string
}

var _ repository.MovementRepository = (*MovementRepo)(nil)

// NewStockMovementRepo libro de movimientos de filamento.
func NewStockMovementRepo(db Querier) *MovementRepo {
	return &MovementRepo{db: db, table: "stock_movements", accountFK: "inventory_item_id"}
}

// NewHardwareMovementRepo libro de movimientos de hardware.
func NewHardwareMovementRepo(db Querier) *MovementRepo {
	return &MovementRepo{db: db, table: "hardware_movements", accountFK: "hardware_item_id"}
}

func (r *MovementRepo) Create(m *entity.Movement) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, %s, movement_type, change, reference, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, r.table, r.accountFK),
		m.ID, m.AccountID, m.Type, m.Change, m.Reference, m.Note, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar movimiento: %w", translateError(err))
	}
	return nil
}

func (r *MovementRepo) ListByAccount(accountID string) ([]*entity.Movement, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT id, %s, movement_type, change, reference, note, created_at
		FROM %s WHERE %s = $1
		ORDER BY created_at ASC, id ASC`, r.accountFK, r.table, r.accountFK),
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", translateError(err))
	}
	defer rows.Close()

	var movements []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear movimiento: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.AccountID, &m.Type, &m.Change, &m.Reference, &m.Note,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
