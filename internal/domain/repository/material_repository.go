package repository

import "github.com/schartrand77/stockworks/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para el catálogo de
// materiales (DIP). Los Get devuelven nil, nil cuando no hay fila.
type MaterialRepository interface {
	Create(m *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	List() ([]*entity.Material, error)
	Update(m *entity.Material) error
	Delete(id string) error
}
