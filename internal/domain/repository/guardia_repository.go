package repository

import (
	"context"

	"github.com/gardops/gardops-api/internal/domain/entity"
)

// GuardiaRepository define el puerto de persistencia para Guardia.
type GuardiaRepository interface {
	Create(guardia *entity.Guardia) error
	GetByID(id string) (*entity.Guardia, error)
	GetByRUT(rut string) (*entity.Guardia, error)
	List(limit, offset int) ([]*entity.Guardia, error)
	// Search busca guardias activos por nombre o RUT (para la búsqueda de
	// candidatos al asignar un PPC).
	Search(ctx context.Context, query string, limit int) ([]*entity.Guardia, error)
	Update(guardia *entity.Guardia) error
}
