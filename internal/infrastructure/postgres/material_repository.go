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

// MaterialRepo adaptador PostgreSQL del catálogo de materiales.
type MaterialRepo struct {
	db Querier
}

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// NewMaterialRepo acepta un pool o una transacción (Querier).
func NewMaterialRepo(db Querier) *MaterialRepo {
	return &MaterialRepo{db: db}
}

const materialColumns = `id, name, brand, filament_type, category, color, supplier,
	price_per_gram, spool_weight_grams, barcode, notes, created_at, updated_at`

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.Name, &m.Brand, &m.FilamentType, &m.Category, &m.Color,
		&m.Supplier, &m.PricePerGram, &m.SpoolWeightGrams, &m.Barcode,
		&m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaterialRepo) Create(m *entity.Material) error {
	ctx := context.Background()
	_, err := r.db.Exec(ctx, `
		INSERT INTO materials (`+materialColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.ID, m.Name, m.Brand, m.FilamentType, m.Category, m.Color,
		m.Supplier, m.PricePerGram, m.SpoolWeightGrams, m.Barcode,
		m.Notes, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar material: %w", translateError(err))
	}
	return nil
}

func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	ctx := context.Background()
	m, err := scanMaterial(r.db.QueryRow(ctx, `
		SELECT `+materialColumns+` FROM materials WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar material: %w", translateError(err))
	}
	return m, nil
}

func (r *MaterialRepo) List() ([]*entity.Material, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, `
		SELECT `+materialColumns+` FROM materials ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listar materiales: %w", translateError(err))
	}
	defer rows.Close()

	var materials []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear material: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (r *MaterialRepo) Update(m *entity.Material) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `
		UPDATE materials SET
			name = $2, brand = $3, filament_type = $4, category = $5,
			color = $6, supplier = $7, price_per_gram = $8,
			spool_weight_grams = $9, barcode = $10, notes = $11,
			updated_at = $12
		WHERE id = $1`,
		m.ID, m.Name, m.Brand, m.FilamentType, m.Category, m.Color,
		m.Supplier, m.PricePerGram, m.SpoolWeightGrams, m.Barcode,
		m.Notes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("actualizar material: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MaterialRepo) Delete(id string) error {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar material: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
