package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schartrand77/stockworks/internal/application/dto"
	"github.com/schartrand77/stockworks/internal/application/ledger"
	"github.com/schartrand77/stockworks/internal/application/usecase"
	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Sin concurrencia aquí: los
// casos de uso CRUD se prueban secuencialmente.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMaterialRepo struct {
	materials map[string]*entity.Material
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: make(map[string]*entity.Material)}
}

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	cp := *m
	r.materials[m.ID] = &cp
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaterialRepo) List() ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(r.materials))
	for _, m := range r.materials {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMaterialRepo) Update(m *entity.Material) error {
	cp := *m
	r.materials[m.ID] = &cp
	return nil
}

func (r *fakeMaterialRepo) Delete(id string) error {
	delete(r.materials, id)
	return nil
}

// fakeInventoryItemRepo implementa el puerto CRUD y la vista de cuenta de
// stock del libro sobre el mismo mapa, igual que el adaptador real.
type fakeInventoryItemRepo struct {
	items     map[string]*entity.InventoryItem
	movements map[string][]*entity.Movement
}

func newFakeInventoryItemRepo() *fakeInventoryItemRepo {
	return &fakeInventoryItemRepo{
		items:     make(map[string]*entity.InventoryItem),
		movements: make(map[string][]*entity.Movement),
	}
}

func (r *fakeInventoryItemRepo) Create(item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeInventoryItemRepo) List() ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInventoryItemRepo) ListBelowReorder() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, item := range r.items {
		if item.BelowReorder() {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInventoryItemRepo) Update(item *entity.InventoryItem) error {
	existing, ok := r.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *item
	cp.QuantityGrams = existing.QuantityGrams // la cantidad no pasa por Update
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventoryItemRepo) Delete(id string) error {
	delete(r.items, id)
	delete(r.movements, id)
	return nil
}

func (r *fakeInventoryItemRepo) CountByMaterial(materialID string) (int, error) {
	count := 0
	for _, item := range r.items {
		if item.MaterialID == materialID {
			count++
		}
	}
	return count, nil
}

func (r *fakeInventoryItemRepo) Exists(accountID string) (bool, error) {
	_, ok := r.items[accountID]
	return ok, nil
}

func (r *fakeInventoryItemRepo) QuantityForUpdate(accountID string) (*decimal.Decimal, error) {
	item, ok := r.items[accountID]
	if !ok {
		return nil, nil
	}
	q := item.QuantityGrams
	return &q, nil
}

func (r *fakeInventoryItemRepo) SetQuantity(accountID string, qty decimal.Decimal) error {
	item, ok := r.items[accountID]
	if !ok {
		return domain.ErrNotFound
	}
	item.QuantityGrams = qty
	return nil
}

func (r *fakeInventoryItemRepo) CreateMovement(m *entity.Movement) error {
	cp := *m
	r.movements[m.AccountID] = append(r.movements[m.AccountID], &cp)
	return nil
}

func (r *fakeInventoryItemRepo) ListByAccount(accountID string) ([]*entity.Movement, error) {
	return r.movements[accountID], nil
}

// fakeMovementPort adapta el store al puerto MovementRepository.
type fakeMovementPort struct{ store *fakeInventoryItemRepo }

func (p *fakeMovementPort) Create(m *entity.Movement) error { return p.store.CreateMovement(m) }
func (p *fakeMovementPort) ListByAccount(id string) ([]*entity.Movement, error) {
	return p.store.ListByAccount(id)
}

// passthroughTxRunner ejecuta el callback directamente sobre los fakes. Las
// garantías transaccionales ya se prueban en el paquete ledger.
type passthroughTxRunner struct {
	accounts  repository.StockAccountRepository
	movements repository.MovementRepository
}

func (r *passthroughTxRunner) Run(_ context.Context, fn func(
	accounts repository.StockAccountRepository,
	movements repository.MovementRepository,
) error) error {
	return fn(r.accounts, r.movements)
}

// failingTxRunner simula un almacenamiento que no puede abrir transacciones.
type failingTxRunner struct{ err error }

func (r *failingTxRunner) Run(_ context.Context, _ func(
	accounts repository.StockAccountRepository,
	movements repository.MovementRepository,
) error) error {
	return r.err
}

func newFilamentLedger(items *fakeInventoryItemRepo) *ledger.UseCase {
	movements := &fakeMovementPort{store: items}
	return ledger.NewUseCase(&passthroughTxRunner{accounts: items, movements: movements}, items, movements)
}

func seedMaterial(t *testing.T, repo *fakeMaterialRepo) *entity.Material {
	t.Helper()
	m := &entity.Material{
		ID:               "mat-1",
		Name:             "PLA Galaxy Black",
		FilamentType:     "PLA",
		Color:            "negro",
		PricePerGram:     decimal.RequireFromString("0.05"),
		SpoolWeightGrams: decimal.NewFromInt(1000),
	}
	require.NoError(t, repo.Create(m))
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestMaterialUseCase_Create_Validation(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo(), newFakeInventoryItemRepo())

	cases := []struct {
		name string
		in   dto.CreateMaterialRequest
	}{
		{"sin nombre", dto.CreateMaterialRequest{FilamentType: "PLA", Color: "rojo", PricePerGram: decimal.NewFromFloat(0.05), SpoolWeightGrams: decimal.NewFromInt(1000)}},
		{"sin tipo", dto.CreateMaterialRequest{Name: "X", Color: "rojo", PricePerGram: decimal.NewFromFloat(0.05), SpoolWeightGrams: decimal.NewFromInt(1000)}},
		{"precio cero", dto.CreateMaterialRequest{Name: "X", FilamentType: "PLA", Color: "rojo", SpoolWeightGrams: decimal.NewFromInt(1000)}},
		{"bobina negativa", dto.CreateMaterialRequest{Name: "X", FilamentType: "PLA", Color: "rojo", PricePerGram: decimal.NewFromFloat(0.05), SpoolWeightGrams: decimal.NewFromInt(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestMaterialUseCase_Delete_GuardedWhileReferenced(t *testing.T) {
	materials := newFakeMaterialRepo()
	items := newFakeInventoryItemRepo()
	uc := usecase.NewMaterialUseCase(materials, items)
	m := seedMaterial(t, materials)

	require.NoError(t, items.Create(&entity.InventoryItem{
		ID:         "item-1",
		MaterialID: m.ID,
		Location:   "estante A",
	}))

	err := uc.Delete(m.ID)
	require.ErrorIs(t, err, domain.ErrEntityInUse, "material referenciado no debe borrarse")

	// Editar el material referenciado sí está permitido.
	newPrice := decimal.RequireFromString("0.07")
	_, err = uc.Update(m.ID, dto.UpdateMaterialRequest{PricePerGram: &newPrice})
	require.NoError(t, err)

	// Sin referencias, el borrado procede.
	require.NoError(t, items.Delete("item-1"))
	require.NoError(t, uc.Delete(m.ID))

	_, err = uc.GetByID(m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryItemUseCase_Create_InitialBalanceGoesThroughLedger(t *testing.T) {
	materials := newFakeMaterialRepo()
	items := newFakeInventoryItemRepo()
	ledgerUC := newFilamentLedger(items)
	uc := usecase.NewInventoryItemUseCase(items, materials, ledgerUC)
	m := seedMaterial(t, materials)

	out, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		MaterialID:    m.ID,
		Location:      "estante A",
		QuantityGrams: decimal.NewFromInt(750),
		ReorderLevel:  decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	assert.True(t, out.QuantityGrams.Equal(decimal.NewFromInt(750)))

	// El saldo inicial debe constar en el libro como ajuste, no como escritura
	// directa: cantidad == suma(libro) desde el primer movimiento.
	movements, err := ledgerUC.ListMovements(out.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementTypeAdjustment, movements[0].Type)
	assert.Equal(t, "saldo-inicial", movements[0].Reference)
	assert.True(t, movements[0].Change.Equal(decimal.NewFromInt(750)))

	stored, err := items.GetByID(out.ID)
	require.NoError(t, err)
	assert.True(t, stored.QuantityGrams.Equal(decimal.NewFromInt(750)))
}

func TestInventoryItemUseCase_Create_ZeroBalanceWritesNoMovement(t *testing.T) {
	materials := newFakeMaterialRepo()
	items := newFakeInventoryItemRepo()
	ledgerUC := newFilamentLedger(items)
	uc := usecase.NewInventoryItemUseCase(items, materials, ledgerUC)
	m := seedMaterial(t, materials)

	out, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		MaterialID: m.ID,
		Location:   "estante B",
	})
	require.NoError(t, err)
	assert.True(t, out.QuantityGrams.IsZero())

	movements, err := ledgerUC.ListMovements(out.ID)
	require.NoError(t, err)
	assert.Empty(t, movements, "cuenta en cero no debe tener movimientos")
}

func TestInventoryItemUseCase_Create_FailedInitialBalanceLeavesNoAccount(t *testing.T) {
	materials := newFakeMaterialRepo()
	items := newFakeInventoryItemRepo()
	movements := &fakeMovementPort{store: items}
	ledgerUC := ledger.NewUseCase(&failingTxRunner{err: domain.ErrTransient}, items, movements)
	uc := usecase.NewInventoryItemUseCase(items, materials, ledgerUC)
	m := seedMaterial(t, materials)

	_, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		MaterialID:    m.ID,
		Location:      "estante A",
		QuantityGrams: decimal.NewFromInt(750),
	})
	require.ErrorIs(t, err, domain.ErrTransient)

	// Un create fallido no deja la cuenta a medias: ni fila ni movimientos.
	list, err := items.List()
	require.NoError(t, err)
	assert.Empty(t, list, "la cuenta en cero no debe quedar persistida tras el fallo")
}

func TestInventoryItemUseCase_Delete_CascadesMovements(t *testing.T) {
	materials := newFakeMaterialRepo()
	items := newFakeInventoryItemRepo()
	ledgerUC := newFilamentLedger(items)
	uc := usecase.NewInventoryItemUseCase(items, materials, ledgerUC)
	m := seedMaterial(t, materials)

	out, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		MaterialID:    m.ID,
		Location:      "estante A",
		QuantityGrams: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	for _, in := range []ledger.MovementInput{
		{AccountID: out.ID, Type: entity.MovementTypeIncoming, Change: decimal.NewFromInt(250)},
		{AccountID: out.ID, Type: entity.MovementTypeOutgoing, Change: decimal.NewFromInt(120)},
		{AccountID: out.ID, Type: entity.MovementTypeAdjustment, Change: decimal.NewFromInt(-30)},
	} {
		_, err := ledgerUC.ApplyMovement(context.Background(), in)
		require.NoError(t, err)
	}

	movements, err := ledgerUC.ListMovements(out.ID)
	require.NoError(t, err)
	require.Len(t, movements, 4, "saldo inicial + 3 movimientos")

	require.NoError(t, uc.Delete(out.ID))

	// El borrado arrastra el libro completo: ni cuenta ni movimientos.
	_, err = ledgerUC.ListMovements(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	remaining, err := items.ListByAccount(out.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining, "los movimientos deben caer en cascada con la cuenta")
}

func TestInventoryItemUseCase_Create_UnknownMaterial(t *testing.T) {
	items := newFakeInventoryItemRepo()
	uc := usecase.NewInventoryItemUseCase(items, newFakeMaterialRepo(), newFilamentLedger(items))

	_, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		MaterialID: "no-existe",
		Location:   "estante A",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryItemUseCase_Update_RejectsQuantityPatch(t *testing.T) {
	materials := newFakeMaterialRepo()
	items := newFakeInventoryItemRepo()
	uc := usecase.NewInventoryItemUseCase(items, materials, newFilamentLedger(items))
	m := seedMaterial(t, materials)

	out, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		MaterialID:    m.ID,
		Location:      "estante A",
		QuantityGrams: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	patched := decimal.NewFromInt(9999)
	_, err = uc.Update(out.ID, dto.UpdateInventoryItemRequest{QuantityGrams: &patched})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "la cantidad solo la mueve el libro")

	// La ubicación sí es editable y la cantidad queda intacta.
	loc := "estante C"
	updated, err := uc.Update(out.ID, dto.UpdateInventoryItemRequest{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "estante C", updated.Location)
	assert.True(t, updated.QuantityGrams.Equal(decimal.NewFromInt(500)))
}
