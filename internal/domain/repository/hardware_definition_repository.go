package repository

import "github.com/schartrand77/stockworks/internal/domain/entity"

// HardwareDefinitionRepository puerto de persistencia para el catálogo de
// hardware.
type HardwareDefinitionRepository interface {
	Create(d *entity.HardwareDefinition) error
	GetByID(id string) (*entity.HardwareDefinition, error)
	List() ([]*entity.HardwareDefinition, error)
	Update(d *entity.HardwareDefinition) error
	Delete(id string) error
}
