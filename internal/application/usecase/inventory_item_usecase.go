package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schartrand77/stockworks/internal/application/dto"
	"github.com/schartrand77/stockworks/internal/application/ledger"
	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// initialBalanceReference referencia del movimiento de saldo inicial.
const initialBalanceReference = "saldo-inicial"

// InventoryItemUseCase casos de uso para cuentas de stock de filamento. La
// cantidad nunca se edita aquí: el saldo inicial entra como un movimiento de
// ajuste y el resto de cambios pasan por el libro.
type InventoryItemUseCase struct {
	items     repository.InventoryItemRepository
	materials repository.MaterialRepository
	ledger    *ledger.UseCase
}

// NewInventoryItemUseCase construye el caso de uso.
func NewInventoryItemUseCase(items repository.InventoryItemRepository, materials repository.MaterialRepository, ledgerUC *ledger.UseCase) *InventoryItemUseCase {
	return &InventoryItemUseCase{items: items, materials: materials, ledger: ledgerUC}
}

// Create crea la cuenta con cantidad cero y, si hay saldo inicial, lo
// registra como movimiento de ajuste. Así el invariante
// cantidad == suma(libro) se cumple desde el primer día.
func (uc *InventoryItemUseCase) Create(ctx context.Context, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityGrams.IsNegative() || in.ReorderLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCostOverride != nil && in.UnitCostOverride.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materials.GetByID(in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	item := &entity.InventoryItem{
		ID:               uuid.New().String(),
		MaterialID:       in.MaterialID,
		Location:         in.Location,
		QuantityGrams:    decimal.Zero,
		ReorderLevel:     in.ReorderLevel,
		SpoolSerial:      in.SpoolSerial,
		UnitCostOverride: in.UnitCostOverride,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	if !in.QuantityGrams.IsZero() {
		if _, err := uc.ledger.ApplyMovement(ctx, ledger.MovementInput{
			AccountID: item.ID,
			Type:      entity.MovementTypeAdjustment,
			Change:    in.QuantityGrams,
			Reference: initialBalanceReference,
		}); err != nil {
			// Compensación: un create fallido no deja cuenta visible.
			_ = uc.items.Delete(item.ID)
			return nil, err
		}
		item.QuantityGrams = in.QuantityGrams
	}
	return toInventoryItemResponse(item), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *InventoryItemUseCase) GetByID(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryItemResponse(item), nil
}

// List lista todas las cuentas ordenadas por ubicación.
func (uc *InventoryItemUseCase) List() ([]*dto.InventoryItemResponse, error) {
	list, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toInventoryItemResponse(item))
	}
	return out, nil
}

// ListLowStock lista las cuentas bajo su punto de reorden.
func (uc *InventoryItemUseCase) ListLowStock() ([]*dto.InventoryItemResponse, error) {
	list, err := uc.items.ListBelowReorder()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toInventoryItemResponse(item))
	}
	return out, nil
}

// Update aplica un patch parcial. Un patch que incluya quantity_grams se
// rechaza: la cantidad solo la mueve el libro.
func (uc *InventoryItemUseCase) Update(id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.QuantityGrams != nil {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.MaterialID != nil {
		material, err := uc.materials.GetByID(*in.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, domain.ErrInvalidInput
		}
		item.MaterialID = *in.MaterialID
	}
	if in.Location != nil {
		if *in.Location == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Location = *in.Location
	}
	if in.ReorderLevel != nil {
		if in.ReorderLevel.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.SpoolSerial != nil {
		item.SpoolSerial = *in.SpoolSerial
	}
	if in.UnitCostOverride != nil {
		if in.UnitCostOverride.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitCostOverride = in.UnitCostOverride
	}
	item.UpdatedAt = time.Now().UTC()
	if err := uc.items.Update(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Delete elimina la cuenta y, en cascada, todo su libro de movimientos.
func (uc *InventoryItemUseCase) Delete(id string) error {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.items.Delete(id)
}

func toInventoryItemResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:               item.ID,
		MaterialID:       item.MaterialID,
		Location:         item.Location,
		QuantityGrams:    item.QuantityGrams,
		ReorderLevel:     item.ReorderLevel,
		SpoolSerial:      item.SpoolSerial,
		UnitCostOverride: item.UnitCostOverride,
		BelowReorder:     item.BelowReorder(),
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
