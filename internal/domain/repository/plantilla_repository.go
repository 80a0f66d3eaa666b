package repository

import "github.com/gardops/gardops-api/internal/domain/entity"

// PlantillaRepository define el puerto de persistencia para Plantilla.
type PlantillaRepository interface {
	Create(p *entity.Plantilla) error
	GetByID(id string) (*entity.Plantilla, error)
	List(limit, offset int) ([]*entity.Plantilla, error)
	Update(p *entity.Plantilla) error
	Delete(id string) error
}
