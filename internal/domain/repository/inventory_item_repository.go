package repository

import "github.com/schartrand77/stockworks/internal/domain/entity"

// InventoryItemRepository puerto de persistencia para cuentas de stock de
// filamento. Update nunca toca QuantityGrams: la cantidad cacheada solo se
// escribe desde el libro de movimientos.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
	ListBelowReorder() ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// Delete elimina la cuenta; sus movimientos caen en cascada (FK).
	Delete(id string) error
	CountByMaterial(materialID string) (int, error)
}
