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

// HardwareItemUseCase casos de uso para cuentas de stock de hardware. Misma
// disciplina que las de filamento: el saldo inicial entra por el libro y la
// cantidad no es editable.
type HardwareItemUseCase struct {
	items       repository.HardwareItemRepository
	definitions repository.HardwareDefinitionRepository
	ledger      *ledger.UseCase
}

// NewHardwareItemUseCase construye el caso de uso.
func NewHardwareItemUseCase(items repository.HardwareItemRepository, definitions repository.HardwareDefinitionRepository, ledgerUC *ledger.UseCase) *HardwareItemUseCase {
	return &HardwareItemUseCase{items: items, definitions: definitions, ledger: ledgerUC}
}

// Create crea la cuenta con cantidad cero y registra el saldo inicial como
// ajuste si lo hay.
func (uc *HardwareItemUseCase) Create(ctx context.Context, in dto.CreateHardwareItemRequest) (*dto.HardwareItemResponse, error) {
	if in.BinLocation == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityOnHand.IsNegative() || in.ReorderLevel.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCostOverride != nil && in.UnitCostOverride.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	def, err := uc.definitions.GetByID(in.HardwareDefinitionID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	item := &entity.HardwareItem{
		ID:                   uuid.New().String(),
		HardwareDefinitionID: in.HardwareDefinitionID,
		BinLocation:          in.BinLocation,
		QuantityOnHand:       decimal.Zero,
		ReorderLevel:         in.ReorderLevel,
		UnitCostOverride:     in.UnitCostOverride,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	if !in.QuantityOnHand.IsZero() {
		if _, err := uc.ledger.ApplyMovement(ctx, ledger.MovementInput{
			AccountID: item.ID,
			Type:      entity.MovementTypeAdjustment,
			Change:    in.QuantityOnHand,
			Reference: initialBalanceReference,
		}); err != nil {
			// Compensación: un create fallido no deja cuenta visible.
			_ = uc.items.Delete(item.ID)
			return nil, err
		}
		item.QuantityOnHand = in.QuantityOnHand
	}
	return toHardwareItemResponse(item), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *HardwareItemUseCase) GetByID(id string) (*dto.HardwareItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toHardwareItemResponse(item), nil
}

// List lista todas las cuentas ordenadas por ubicación.
func (uc *HardwareItemUseCase) List() ([]*dto.HardwareItemResponse, error) {
	list, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.HardwareItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toHardwareItemResponse(item))
	}
	return out, nil
}

// ListLowStock lista las cuentas bajo su punto de reorden.
func (uc *HardwareItemUseCase) ListLowStock() ([]*dto.HardwareItemResponse, error) {
	list, err := uc.items.ListBelowReorder()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.HardwareItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toHardwareItemResponse(item))
	}
	return out, nil
}

// Update aplica un patch parcial; quantity_on_hand en el patch se rechaza.
func (uc *HardwareItemUseCase) Update(id string, in dto.UpdateHardwareItemRequest) (*dto.HardwareItemResponse, error) {
	if in.QuantityOnHand != nil {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.HardwareDefinitionID != nil {
		def, err := uc.definitions.GetByID(*in.HardwareDefinitionID)
		if err != nil {
			return nil, err
		}
		if def == nil {
			return nil, domain.ErrInvalidInput
		}
		item.HardwareDefinitionID = *in.HardwareDefinitionID
	}
	if in.BinLocation != nil {
		if *in.BinLocation == "" {
			return nil, domain.ErrInvalidInput
		}
		item.BinLocation = *in.BinLocation
	}
	if in.ReorderLevel != nil {
		if in.ReorderLevel.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderLevel = *in.ReorderLevel
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
	return toHardwareItemResponse(item), nil
}

// Delete elimina la cuenta y, en cascada, su libro de movimientos.
func (uc *HardwareItemUseCase) Delete(id string) error {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.items.Delete(id)
}

func toHardwareItemResponse(item *entity.HardwareItem) *dto.HardwareItemResponse {
	return &dto.HardwareItemResponse{
		ID:                   item.ID,
		HardwareDefinitionID: item.HardwareDefinitionID,
		BinLocation:          item.BinLocation,
		QuantityOnHand:       item.QuantityOnHand,
		ReorderLevel:         item.ReorderLevel,
		UnitCostOverride:     item.UnitCostOverride,
		BelowReorder:         item.BelowReorder(),
		CreatedAt:            item.CreatedAt,
		UpdatedAt:            item.UpdatedAt,
	}
}
