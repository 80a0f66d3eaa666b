package repository

import "github.com/gardops/gardops-api/internal/domain/entity"

// PagoExtraRepository define el puerto de persistencia para PagoExtra.
type PagoExtraRepository interface {
	Create(p *entity.PagoExtra) error
	GetByID(id string) (*entity.PagoExtra, error)
	// ListByGuardia lista los ítems del guardia; periodo vacío lista todos.
	ListByGuardia(guardiaID, periodo string) ([]*entity.PagoExtra, error)
	Update(p *entity.PagoExtra) error
	Delete(id string) error
}
