package repository

import "github.com/schartrand77/stockworks/internal/domain/entity"

// HardwareItemRepository puerto de persistencia para cuentas de stock de
// hardware. Mismas reglas que InventoryItemRepository: la cantidad cacheada
// es del libro, no del Update.
type HardwareItemRepository interface {
	Create(item *entity.HardwareItem) error
	GetByID(id string) (*entity.HardwareItem, error)
	List() ([]*entity.HardwareItem, error)
	ListBelowReorder() ([]*entity.HardwareItem, error)
	Update(item *entity.HardwareItem) error
	Delete(id string) error
	CountByDefinition(definitionID string) (int, error)
}
