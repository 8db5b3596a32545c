package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schartrand77/stockworks/internal/application/dto"
	"github.com/schartrand77/stockworks/internal/domain"
	"github.com/schartrand77/stockworks/internal/domain/entity"
	"github.com/schartrand77/stockworks/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para el catálogo de materiales. El borrado
// está protegido: un material referenciado por cuentas de stock no se elimina
// (protege el historial de movimientos).
type MaterialUseCase struct {
	materials repository.MaterialRepository
	items     repository.InventoryItemRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(materials repository.MaterialRepository, items repository.InventoryItemRepository) *MaterialUseCase {
	return &MaterialUseCase{materials: materials, items: items}
}

// Create valida y persiste un material nuevo.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.FilamentType == "" || in.Color == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.PricePerGram.GreaterThan(decimal.Zero) || !in.SpoolWeightGrams.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	m := &entity.Material{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Brand:            in.Brand,
		FilamentType:     in.FilamentType,
		Category:         in.Category,
		Color:            in.Color,
		Supplier:         in.Supplier,
		PricePerGram:     in.PricePerGram,
		SpoolWeightGrams: in.SpoolWeightGrams,
		Barcode:          in.Barcode,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.materials.Create(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// GetByID obtiene un material por ID.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	m, err := uc.materials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(m), nil
}

// List lista el catálogo ordenado por nombre.
func (uc *MaterialUseCase) List() ([]*dto.MaterialResponse, error) {
	list, err := uc.materials.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

// Update aplica un patch parcial. Editar precio o peso de bobina nunca
// reescribe movimientos históricos (el libro guarda deltas planos).
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.materials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		m.Name = *in.Name
	}
	if in.FilamentType != nil {
		if *in.FilamentType == "" {
			return nil, domain.ErrInvalidInput
		}
		m.FilamentType = *in.FilamentType
	}
	if in.Color != nil {
		if *in.Color == "" {
			return nil, domain.ErrInvalidInput
		}
		m.Color = *in.Color
	}
	if in.Brand != nil {
		m.Brand = *in.Brand
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	if in.Supplier != nil {
		m.Supplier = *in.Supplier
	}
	if in.PricePerGram != nil {
		if !in.PricePerGram.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		m.PricePerGram = *in.PricePerGram
	}
	if in.SpoolWeightGrams != nil {
		if !in.SpoolWeightGrams.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		m.SpoolWeightGrams = *in.SpoolWeightGrams
	}
	if in.Barcode != nil {
		m.Barcode = *in.Barcode
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	m.UpdatedAt = time.Now().UTC()
	if err := uc.materials.Update(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// Delete elimina un material sin referencias. Si alguna cuenta de stock lo
// usa, falla con ErrEntityInUse: borrar en cascada destruiría el historial.
func (uc *MaterialUseCase) Delete(id string) error {
	m, err := uc.materials.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.items.CountByMaterial(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrEntityInUse
	}
	return uc.materials.Delete(id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:               m.ID,
		Name:             m.Name,
		Brand:            m.Brand,
		FilamentType:     m.FilamentType,
		Category:         m.Category,
		Color:            m.Color,
		Supplier:         m.Supplier,
		PricePerGram:     m.PricePerGram,
		SpoolWeightGrams: m.SpoolWeightGrams,
		Barcode:          m.Barcode,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
