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
)

type fakeHardwareDefRepo struct {
	defs map[string]*entity.HardwareDefinition
}

func newFakeHardwareDefRepo() *fakeHardwareDefRepo {
	return &fakeHardwareDefRepo{defs: make(map[string]*entity.HardwareDefinition)}
}

func (r *fakeHardwareDefRepo) Create(d *entity.HardwareDefinition) error {
	cp := *d
	r.defs[d.ID] = &cp
	return nil
}

func (r *fakeHardwareDefRepo) GetByID(id string) (*entity.HardwareDefinition, error) {
	d, ok := r.defs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeHardwareDefRepo) List() ([]*entity.HardwareDefinition, error) { return nil, nil }

func (r *fakeHardwareDefRepo) Update(d *entity.HardwareDefinition) error {
	cp := *d
	r.defs[d.ID] = &cp
	return nil
}

func (r *fakeHardwareDefRepo) Delete(id string) error {
	delete(r.defs, id)
	return nil
}

// fakeHardwareItemRepo espejo del fake de filamento: puerto CRUD + vista de
// cuenta de stock + libro sobre el mismo mapa.
type fakeHardwareItemRepo struct {
	items     map[string]*entity.HardwareItem
	movements map[string][]*entity.Movement
}

func newFakeHardwareItemRepo() *fakeHardwareItemRepo {
	return &fakeHardwareItemRepo{
		items:     make(map[string]*entity.HardwareItem),
		movements: make(map[string][]*entity.Movement),
	}
}

func (r *fakeHardwareItemRepo) Create(item *entity.HardwareItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeHardwareItemRepo) GetByID(id string) (*entity.HardwareItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeHardwareItemRepo) List() ([]*entity.HardwareItem, error) {
	out := make([]*entity.HardwareItem, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeHardwareItemRepo) ListBelowReorder() ([]*entity.HardwareItem, error) {
	var out []*entity.HardwareItem
	for _, item := range r.items {
		if item.BelowReorder() {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeHardwareItemRepo) Update(item *entity.HardwareItem) error {
	existing, ok := r.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *item
	cp.QuantityOnHand = existing.QuantityOnHand
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeHardwareItemRepo) Delete(id string) error {
	delete(r.items, id)
	delete(r.movements, id)
	return nil
}

func (r *fakeHardwareItemRepo) CountByDefinition(definitionID string) (int, error) {
	count := 0
	for _, item := range r.items {
		if item.HardwareDefinitionID == definitionID {
			count++
		}
	}
	return count, nil
}

func (r *fakeHardwareItemRepo) Exists(accountID string) (bool, error) {
	_, ok := r.items[accountID]
	return ok, nil
}

func (r *fakeHardwareItemRepo) QuantityForUpdate(accountID string) (*decimal.Decimal, error) {
	item, ok := r.items[accountID]
	if !ok {
		return nil, nil
	}
	q := item.QuantityOnHand
	return &q, nil
}

func (r *fakeHardwareItemRepo) SetQuantity(accountID string, qty decimal.Decimal) error {
	item, ok := r.items[accountID]
	if !ok {
		return domain.ErrNotFound
	}
	item.QuantityOnHand = qty
	return nil
}

type fakeHardwareMovementPort struct{ store *fakeHardwareItemRepo }

func (p *fakeHardwareMovementPort) Create(m *entity.Movement) error {
	cp := *m
	p.store.movements[m.AccountID] = append(p.store.movements[m.AccountID], &cp)
	return nil
}

func (p *fakeHardwareMovementPort) ListByAccount(id string) ([]*entity.Movement, error) {
	return p.store.movements[id], nil
}

func newHardwareLedger(items *fakeHardwareItemRepo) *ledger.UseCase {
	movements := &fakeHardwareMovementPort{store: items}
	return ledger.NewUseCase(&passthroughTxRunner{accounts: items, movements: movements}, items, movements)
}

func seedHardwareDefinition(t *testing.T, repo *fakeHardwareDefRepo) *entity.HardwareDefinition {
	t.Helper()
	d := &entity.HardwareDefinition{
		ID:            "def-1",
		Name:          "Imán N52 8x3",
		UnitOfMeasure: "piece",
		UnitCost:      decimal.RequireFromString("0.35"),
	}
	require.NoError(t, repo.Create(d))
	return d
}

func TestHardwareItemUseCase_Create_InitialBalanceGoesThroughLedger(t *testing.T) {
	defs := newFakeHardwareDefRepo()
	items := newFakeHardwareItemRepo()
	ledgerUC := newHardwareLedger(items)
	uc := usecase.NewHardwareItemUseCase(items, defs, ledgerUC)
	d := seedHardwareDefinition(t, defs)

	out, err := uc.Create(context.Background(), dto.CreateHardwareItemRequest{
		HardwareDefinitionID: d.ID,
		BinLocation:          "gaveta 3",
		QuantityOnHand:       decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	assert.True(t, out.QuantityOnHand.Equal(decimal.NewFromInt(200)))

	movements, err := ledgerUC.ListMovements(out.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementTypeAdjustment, movements[0].Type)
	assert.Equal(t, "saldo-inicial", movements[0].Reference)
}

func TestHardwareItemUseCase_Create_FailedInitialBalanceLeavesNoAccount(t *testing.T) {
	defs := newFakeHardwareDefRepo()
	items := newFakeHardwareItemRepo()
	movements := &fakeHardwareMovementPort{store: items}
	ledgerUC := ledger.NewUseCase(&failingTxRunner{err: domain.ErrTransient}, items, movements)
	uc := usecase.NewHardwareItemUseCase(items, defs, ledgerUC)
	d := seedHardwareDefinition(t, defs)

	_, err := uc.Create(context.Background(), dto.CreateHardwareItemRequest{
		HardwareDefinitionID: d.ID,
		BinLocation:          "gaveta 3",
		QuantityOnHand:       decimal.NewFromInt(200),
	})
	require.ErrorIs(t, err, domain.ErrTransient)

	// Un create fallido no deja la cuenta a medias.
	list, err := items.List()
	require.NoError(t, err)
	assert.Empty(t, list, "la cuenta en cero no debe quedar persistida tras el fallo")
}

func TestHardwareDefinitionUseCase_Delete_GuardedWhileReferenced(t *testing.T) {
	defs := newFakeHardwareDefRepo()
	items := newFakeHardwareItemRepo()
	defUC := usecase.NewHardwareDefinitionUseCase(defs, items)
	d := seedHardwareDefinition(t, defs)

	require.NoError(t, items.Create(&entity.HardwareItem{
		ID:                   "hw-1",
		HardwareDefinitionID: d.ID,
		BinLocation:          "gaveta 3",
	}))

	err := defUC.Delete(d.ID)
	require.ErrorIs(t, err, domain.ErrEntityInUse)

	require.NoError(t, items.Delete("hw-1"))
	require.NoError(t, defUC.Delete(d.ID))
}
