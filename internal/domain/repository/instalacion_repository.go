package repository

import (
	"context"

	"github.com/gardops/gardops-api/internal/domain/entity"
)

// InstalacionRepository define el puerto de persistencia para Instalacion.
// No hay Delete: las instalaciones se desactivan (Update con estado Inactivo),
// nunca se eliminan filas.
type InstalacionRepository interface {
	Create(instalacion *entity.Instalacion) error
	GetByID(id string) (*entity.Instalacion, error)
	ListByCliente(clienteID string) ([]*entity.Instalacion, error)
	List(limit, offset int) ([]*entity.Instalacion, error)
	Update(instalacion *entity.Instalacion) error
	ListComunas(ctx context.Context) ([]string, error)
}
