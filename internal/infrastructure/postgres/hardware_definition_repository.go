package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// HardwareDefinitionRepo adaptador PostgreSQL del catálogo de hardware.
type HardwareDefinitionRepo struct {
	db Querier
}

var _ repository.HardwareDefinitionRepository = (*HardwareDefinitionRepo)(nil)

// NewHardwareDefinitionRepo acepta un pool o una transacción (Querier).
func NewHardwareDefinitionRepo(db Querier) *HardwareDefinitionRepo {
	return &HardwareDefinitionRepo{db: db}
}

const hardwareDefinitionColumns = `id, name, category, supplier,
	manufacturer_part_number, unit_of_measure, unit_cost, notes,
	created_at, updated_at`

func scanHardwareDefinition(row pgx.Row) (*entity.HardwareDefinition, error) {
	var d entity.HardwareDefinition
	err := row.Scan(
		&d.ID, &d.Name, &d.Category, &d.Supplier, &d.ManufacturerPartNumber,
		&d.UnitOfMeasure, &d.UnitCost, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *HardwareDefinitionRepo) Create(d *entity.HardwareDefinition) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx, `
		INSERT INTO hardware_definitions (`+hardwareDefinitionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.Name, d.Category, d.Supplier, d.ManufacturerPartNumber,
		d.UnitOfMeasure, d.UnitCost, d.Notes, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar definición de hardware: %w", translateError(err))
	}
	return nil
}

func (r *HardwareDefinitionRepo) GetByID(id string) (*entity.HardwareDefinition, error) {
	ctx := context.Background()
	d, err := scanHardwareDefinition(r.db.QueryRow(ctx, `
		SELECT `+hardwareDefinitionColumns+` FROM hardware_definitions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar definición de hardware: %w", translateError(err))
	}
	return d, nil
}

func (r *HardwareDefinitionRepo) List() ([]*entity.HardwareDefinition, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, `
		SELECT `+hardwareDefinitionColumns+` FROM hardware_definitions ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listar definiciones de hardware: %w", translateError(err))
	}
	defer rows.Close()

	var defs []*entity.HardwareDefinition
	for rows.Next() {
		d, err := scanHardwareDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear definición de hardware: %w", err)
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

func (r *HardwareDefinitionRepo) Update(d *entity.HardwareDefinition) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `
		UPDATE hardware_definitions SET
			name = $2, category = $3, supplier = $4,
			manufacturer_part_number = $5, unit_of_measure = $6,
			unit_cost = $7, notes = $8, updated_at = $9
		WHERE id = $1`,
		d.ID, d.Name, d.Category, d.Supplier, d.ManufacturerPartNumber,
		d.UnitOfMeasure, d.UnitCost, d.Notes, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar definición de hardware: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HardwareDefinitionRepo) Delete(id string) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `DELETE FROM hardware_definitions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar definición de hardware: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
