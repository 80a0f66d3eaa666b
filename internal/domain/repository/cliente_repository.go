package repository

import "github.com/gardops/gardops-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
// Delete es borrado duro; la desactivación pasa por Update con estado Inactivo
// y está protegida por el guard de transición en el caso de uso.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByRUT(rut string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
