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

// InventoryItemRepo adaptador PostgreSQL de las cuentas de stock de
// filamento. Implementa además StockAccountRepository para que el libro de
// movimientos opere sobre la misma tabla.
type InventoryItemRepo struct {
	db Querier
}

var (
	_ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)
	_ repository.StockAccountRepository  = (*InventoryItemRepo)(nil)
)

// NewInventoryItemRepo acepta un pool o una transacción (Querier).
func NewInventoryItemRepo(db Querier) *InventoryItemRepo {
	return &InventoryItemRepo{db: db}
}

const inventoryItemColumns = `id, material_id, location, quantity_grams,
	reorder_level, spool_serial, unit_cost_override, created_at, updated_at`

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := row.Scan(
		&item.ID, &item.MaterialID, &item.Location, &item.QuantityGrams,
		&item.ReorderLevel, &item.SpoolSerial, &item.UnitCostOverride,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_items (`+inventoryItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.MaterialID, item.Location, item.QuantityGrams,
		item.ReorderLevel, item.SpoolSerial, item.UnitCostOverride,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar ítem de inventario: %w", translateError(err))
	}
	return nil
}

func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	ctx := context.Background()
	item, err := scanInventoryItem(r.db.QueryRow(ctx, `
		SELECT `+inventoryItemColumns+` FROM inventory_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar ítem de inventario: %w", translateError(err))
	}
	return item, nil
}

func (r *InventoryItemRepo) List() ([]*entity.InventoryItem, error) {
	return r.list(`SELECT ` + inventoryItemColumns + ` FROM inventory_items ORDER BY location, id`)
}

func (r *InventoryItemRepo) ListBelowReorder() ([]*entity.InventoryItem, error) {
	return r.list(`SELECT ` + inventoryItemColumns + ` FROM inventory_items
		WHERE quantity_grams < reorder_level ORDER BY location, id`)
}

func (r *InventoryItemRepo) list(query string) ([]*entity.InventoryItem, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar ítems de inventario: %w", translateError(err))
	}
	defer rows.Close()

	var items []*entity.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear ítem de inventario: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update nunca escribe quantity_grams: la cantidad cacheada solo cambia vía
// el libro de movimientos.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `
		UPDATE inventory_items SET
			material_id = $2, location = $3, reorder_level = $4,
			spool_serial = $5, unit_cost_override = $6, updated_at = $7
		WHERE id = $1`,
		item.ID, item.MaterialID, item.Location, item.ReorderLevel,
		item.SpoolSerial, item.UnitCostOverride, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar ítem de inventario: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryItemRepo) Delete(id string) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar ítem de inventario: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryItemRepo) CountByMaterial(materialID string) (int, error) {
	ctx := context.Background()
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM inventory_items WHERE material_id = $1`, materialID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar ítems por material: %w", translateError(err))
	}
	return count, nil
}

// ── StockAccountRepository ──────────────────────────────────────────────

func (r *InventoryItemRepo) Exists(accountID string) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM inventory_items WHERE id = $1)`, accountID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar cuenta de inventario: %w", translateError(err))
	}
	return exists, nil
}

func (r *InventoryItemRepo) QuantityForUpdate(accountID string) (*decimal.Decimal, error) {
	ctx := context.Background()
	var qty decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT quantity_grams FROM inventory_items WHERE id = $1 FOR UPDATE`, accountID).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("bloquear cuenta de inventario: %w", translateError(err))
	}
	return &qty, nil
}

func (r *InventoryItemRepo) SetQuantity(accountID string, qty decimal.Decimal) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `
		UPDATE inventory_items SET quantity_grams = $2, updated_at = NOW()
		WHERE id = $1`, accountID, qty)
	if err != nil {
		return fmt.Errorf("escribir cantidad de inventario: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
