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

// defaultUnitOfMeasure unidad por defecto para definiciones de hardware.
const defaultUnitOfMeasure = "piece"

// HardwareDefinitionUseCase casos de uso CRUD para el catálogo de hardware.
// Mismo guard de borrado que los materiales.
type HardwareDefinitionUseCase struct {
	definitions repository.HardwareDefinitionRepository
	items       repository.HardwareItemRepository
}

// NewHardwareDefinitionUseCase construye el caso de uso.
func NewHardwareDefinitionUseCase(definitions repository.HardwareDefinitionRepository, items repository.HardwareItemRepository) *HardwareDefinitionUseCase {
	return &HardwareDefinitionUseCase{definitions: definitions, items: items}
}

// Create valida y persiste una definición nueva.
func (uc *HardwareDefinitionUseCase) Create(in dto.CreateHardwareDefinitionRequest) (*dto.HardwareDefinitionResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.UnitCost.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitOfMeasure == "" {
		in.UnitOfMeasure = defaultUnitOfMeasure
	}
	now := time.Now().UTC()
	d := &entity.HardwareDefinition{
		ID:                     uuid.New().String(),
		Name:                   in.Name,
		Category:               in.Category,
		Supplier:               in.Supplier,
		ManufacturerPartNumber: in.ManufacturerPartNumber,
		UnitOfMeasure:          in.UnitOfMeasure,
		UnitCost:               in.UnitCost,
		Notes:                  in.Notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.definitions.Create(d); err != nil {
		return nil, err
	}
	return toHardwareDefinitionResponse(d), nil
}

// GetByID obtiene una definición por ID.
func (uc *HardwareDefinitionUseCase) GetByID(id string) (*dto.HardwareDefinitionResponse, error) {
	d, err := uc.definitions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toHardwareDefinitionResponse(d), nil
}

// List lista el catálogo ordenado por nombre.
func (uc *HardwareDefinitionUseCase) List() ([]*dto.HardwareDefinitionResponse, error) {
	list, err := uc.definitions.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.HardwareDefinitionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toHardwareDefinitionResponse(d))
	}
	return out, nil
}

// Update aplica un patch parcial.
func (uc *HardwareDefinitionUseCase) Update(id string, in dto.UpdateHardwareDefinitionRequest) (*dto.HardwareDefinitionResponse, error) {
	d, err := uc.definitions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		d.Name = *in.Name
	}
	if in.Category != nil {
		d.Category = *in.Category
	}
	if in.Supplier != nil {
		d.Supplier = *in.Supplier
	}
	if in.ManufacturerPartNumber != nil {
		d.ManufacturerPartNumber = *in.ManufacturerPartNumber
	}
	if in.UnitOfMeasure != nil {
		if *in.UnitOfMeasure == "" {
			return nil, domain.ErrInvalidInput
		}
		d.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.UnitCost != nil {
		if !in.UnitCost.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		d.UnitCost = *in.UnitCost
	}
	if in.Notes != nil {
		d.Notes = *in.Notes
	}
	d.UpdatedAt = time.Now().UTC()
	if err := uc.definitions.Update(d); err != nil {
		return nil, err
	}
	return toHardwareDefinitionResponse(d), nil
}

// Delete elimina una definición sin referencias; con referencias falla con
// ErrEntityInUse.
func (uc *HardwareDefinitionUseCase) Delete(id string) error {
	d, err := uc.definitions.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.items.CountByDefinition(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrEntityInUse
	}
	return uc.definitions.Delete(id)
}

func toHardwareDefinitionResponse(d *entity.HardwareDefinition) *dto.HardwareDefinitionResponse {
	return &dto.HardwareDefinitionResponse{
		ID:                     d.ID,
		Name:                   d.Name,
		Category:               d.Category,
		Supplier:               d.Supplier,
		ManufacturerPartNumber: d.ManufacturerPartNumber,
		UnitOfMeasure:          d.UnitOfMeasure,
		UnitCost:               d.UnitCost,
		Notes:                  d.Notes,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}
