package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements DDL idempotente de las cinco tablas. Sin framework de
// migraciones: el esquema se asegura al arranque, como hace InitSchema.
// Las FK de las cuentas de stock hacia el catálogo restringen el borrado
// (backstop del guard de aplicación); las FK de los movimientos hacia su
// cuenta caen en cascada.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS materials (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		brand TEXT NOT NULL DEFAULT '',
		filament_type TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL,
		supplier TEXT NOT NULL DEFAULT '',
		price_per_gram NUMERIC(12,4) NOT NULL CHECK (price_per_gram > 0),
		spool_weight_grams NUMERIC(12,2) NOT NULL CHECK (spool_weight_grams > 0),
		barcode TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hardware_definitions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		supplier TEXT NOT NULL DEFAULT '',
		manufacturer_part_number TEXT NOT NULL DEFAULT '',
		unit_of_measure TEXT NOT NULL DEFAULT 'piece',
		unit_cost NUMERIC(12,4) NOT NULL CHECK (unit_cost > 0),
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id TEXT PRIMARY KEY,
		material_id TEXT NOT NULL REFERENCES materials(id) ON DELETE RESTRICT,
		location TEXT NOT NULL,
		quantity_grams NUMERIC(14,3) NOT NULL DEFAULT 0,
		reorder_level NUMERIC(14,3) NOT NULL DEFAULT 0 CHECK (reorder_level >= 0),
		spool_serial TEXT NOT NULL DEFAULT '',
		unit_cost_override NUMERIC(12,4),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hardware_items (
		id TEXT PRIMARY KEY,
		hardware_definition_id TEXT NOT NULL REFERENCES hardware_definitions(id) ON DELETE RESTRICT,
		bin_location TEXT NOT NULL,
		quantity_on_hand NUMERIC(14,3) NOT NULL DEFAULT 0,
		reorder_level NUMERIC(14,3) NOT NULL DEFAULT 0 CHECK (reorder_level >= 0),
		unit_cost_override NUMERIC(12,4),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id TEXT PRIMARY KEY,
		inventory_item_id TEXT NOT NULL REFERENCES inventory_items(id) ON DELETE CASCADE,
		movement_type TEXT NOT NULL,
		change NUMERIC(14,3) NOT NULL CHECK (change <> 0),
		reference TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hardware_movements (
		id TEXT PRIMARY KEY,
		hardware_item_id TEXT NOT NULL REFERENCES hardware_items(id) ON DELETE CASCADE,
		movement_type TEXT NOT NULL,
		change NUMERIC(14,3) NOT NULL CHECK (change <> 0),
		reference TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_item
		ON stock_movements (inventory_item_id, created_at, id)`,
	`CREATE INDEX IF NOT EXISTS idx_hardware_movements_item
		ON hardware_movements (hardware_item_id, created_at, id)`,
}

// InitSchema crea las tablas si no existen todavía.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
