package postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/infrastructure/postgres"
)

// zeroRowsQuerier simula una tabla vacía: los Exec no afectan filas y las
// consultas no devuelven ninguna. Reproduce la carrera en que la fila
// desaparece entre el GetByID del caso de uso y la escritura.
type zeroRowsQuerier struct{}

func (zeroRowsQuerier) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("UPDATE 0"), nil
}

func (zeroRowsQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (zeroRowsQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return errRow{err: pgx.ErrNoRows}
}

type errRow struct{ err error }

func (r errRow) Scan(_ ...any) error { return r.err }

func TestRepos_MissingRowMapsToNotFound(t *testing.T) {
	db := zeroRowsQuerier{}
	material := &entity.Material{ID: "mat-x"}

	t.Run("material update", func(t *testing.T) {
		err := postgres.NewMaterialRepo(db).Update(material)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("material delete", func(t *testing.T) {
		err := postgres.NewMaterialRepo(db).Delete("mat-x")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("hardware definition update", func(t *testing.T) {
		err := postgres.NewHardwareDefinitionRepo(db).Update(&entity.HardwareDefinition{ID: "def-x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inventory item delete", func(t *testing.T) {
		err := postgres.NewInventoryItemRepo(db).Delete("item-x")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("inventory set quantity", func(t *testing.T) {
		err := postgres.NewInventoryItemRepo(db).SetQuantity("item-x", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("hardware item set quantity", func(t *testing.T) {
		err := postgres.NewHardwareItemRepo(db).SetQuantity("hw-x", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRepos_MissingRowReadsReturnNil(t *testing.T) {
	db := zeroRowsQuerier{}

	m, err := postgres.NewMaterialRepo(db).GetByID("mat-x")
	require.NoError(t, err)
	assert.Nil(t, m, "fila inexistente devuelve nil, nil")

	qty, err := postgres.NewInventoryItemRepo(db).QuantityForUpdate("item-x")
	require.NoError(t, err)
	assert.Nil(t, qty)
}
