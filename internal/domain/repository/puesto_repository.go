package repository

import (
	"context"
	"time"

	"github.com/gardops/gardops-api/internal/domain/entity"
)

// FiltroPPC filtros para el listado de puestos por cubrir.
type FiltroPPC struct {
	InstalacionID string
	Jornada       string
	Rol           string
}

// PuestoRepository define el puerto de persistencia para PuestoOperativo.
// Asignar y Desasignar encapsulan la transición de estado: el estado y el
// guardia asignado nunca se escriben campo a campo desde afuera.
type PuestoRepository interface {
	GetByID(id string) (*entity.PuestoOperativo, error)
	// ListPendientes devuelve los PPC abiertos con los campos de instalación
	// y rol embebidos desde el join.
	ListPendientes(ctx context.Context, filtro FiltroPPC) ([]*entity.PuestoOperativo, error)
	// Asignar cubre el puesto: estado Cubierto, guardia y fecha de inicio.
	Asignar(puestoID, guardiaID string, fechaInicio time.Time) error
	// Desasignar vuelve el puesto a Pendiente y limpia guardia y fecha.
	Desasignar(puestoID string) error
}

// HistorialRepository registra cada asignación/desasignación sobre un puesto.
type HistorialRepository interface {
	Create(h *entity.HistorialAsignacion) error
	ListByPuesto(puestoID string) ([]*entity.HistorialAsignacion, error)
}
