package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// HardwareItemRepo adaptador PostgreSQL de las cuentas de stock de hardware.
// Implementa además StockAccountRepository para el libro de hardware.
type HardwareItemRepo struct {
	db Querier
}

var (
	_ repository.HardwareItemRepository = (*HardwareItemRepo)(nil)
	_ repository.StockAccountRepository = (*HardwareItemRepo)(nil)
)

// NewHardwareItemRepo acepta un pool o una transacción (Querier).
func NewHardwareItemRepo(db Querier) *HardwareItemRepo {
	return &HardwareItemRepo{db: db}
}

const hardwareItemColumns = `id, hardware_definition_id, bin_location,
	quantity_on_hand, reorder_level, unit_cost_override, created_at, updated_at`

func scanHardwareItem(row pgx.Row) (*entity.HardwareItem, error) {
	var item entity.HardwareItem
	err := row.Scan(
		&item.ID, &item.HardwareDefinitionID, &item.BinLocation,
		&item.QuantityOnHand, &item.ReorderLevel, &item.UnitCostOverride,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *HardwareItemRepo) Create(item *entity.HardwareItem) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx, `
		INSERT INTO hardware_items (`+hardwareItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.HardwareDefinitionID, item.BinLocation,
		item.QuantityOnHand, item.ReorderLevel, item.UnitCostOverride,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar ítem de hardware: %w", translateError(err))
	}
	return nil
}

func (r *HardwareItemRepo) GetByID(id string) (*entity.HardwareItem, error) {
	ctx := context.Background()
	item, err := scanHardwareItem(r.db.QueryRow(ctx, `
		SELECT `+hardwareItemColumns+` FROM hardware_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar ítem de hardware: %w", translateError(err))
	}
	return item, nil
}

func (r *HardwareItemRepo) List() ([]*entity.HardwareItem, error) {
	return r.list(`SELECT ` + hardwareItemColumns + ` FROM hardware_items ORDER BY bin_location, id`)
}

func (r *HardwareItemRepo) ListBelowReorder() ([]*entity.HardwareItem, error) {
	return r.list(`SELECT ` + hardwareItemColumns + ` FROM hardware_items
		WHERE quantity_on_hand < reorder_level ORDER BY bin_location, id`)
}

func (r *HardwareItemRepo) list(query string) ([]*entity.HardwareItem, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar ítems de hardware: %w", translateError(err))
	}
	defer rows.Close()

	var items []*entity.HardwareItem
	for rows.Next() {
		item, err := scanHardwareItem(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear ítem de hardware: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update nunca escribe quantity_on_hand: la cantidad cacheada solo cambia
// vía el libro de movimientos.
func (r *HardwareItemRepo) Update(item *entity.HardwareItem) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `
		UPDATE hardware_items SET
			hardware_definition_id = $2, bin_location = $3,
			reorder_level = $4, unit_cost_override = $5, updated_at = $6
		WHERE id = $1`,
		item.ID, item.HardwareDefinitionID, item.BinLocation,
		item.ReorderLevel, item.UnitCostOverride, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar ítem de hardware: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HardwareItemRepo) Delete(id string) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `DELETE FROM hardware_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar ítem de hardware: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HardwareItemRepo) CountByDefinition(definitionID string) (int, error) {
	ctx := context.Background()
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM hardware_items WHERE hardware_definition_id = $1`, definitionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar ítems por definición: %w", translateError(err))
	}
	return count, nil
}

// ── StockAccountRepository ──────────────────────────────────────────────

func (r *HardwareItemRepo) Exists(accountID string) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM hardware_items WHERE id = $1)`, accountID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar cuenta de hardware: %w", translateError(err))
	}
	return exists, nil
}

func (r *HardwareItemRepo) QuantityForUpdate(accountID string) (*decimal.Decimal, error) {
	ctx := context.Background()
	var qty decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT quantity_on_hand FROM hardware_items WHERE id = $1 FOR UPDATE`, accountID).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("bloquear cuenta de hardware: %w", translateError(err))
	}
	return &qty, nil
}

func (r *HardwareItemRepo) SetQuantity(accountID string, qty decimal.Decimal) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `
		UPDATE hardware_items SET quantity_on_hand = $2, updated_at = NOW()
		WHERE id = $1`, accountID, qty)
	if err != nil {
		return fmt.Errorf("escribir cantidad de hardware: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
