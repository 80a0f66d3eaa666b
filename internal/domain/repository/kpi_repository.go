package repository

import (
	"context"

	"github.com/gardops/gardops-api/internal/domain/entity"
)

// ResumenInstalacion es la fila de agregación por instalación.
type ResumenInstalacion struct {
	InstalacionID     string
	InstalacionNombre string
	Contadores        entity.ContadoresInstalacion
}

// KPIRepository son consultas de solo lectura que derivan los contadores
// operacionales por agregación sobre puestos. Nunca hay contadores
// almacenados; esto evita el drift entre contador y realidad.
type KPIRepository interface {
	// ContadoresInstalacion deriva los contadores de una instalación.
	ContadoresInstalacion(ctx context.Context, instalacionID string) (*entity.ContadoresInstalacion, error)
	// ResumenInstalaciones deriva los contadores de todas las instalaciones activas.
	ResumenInstalaciones(ctx context.Context) ([]ResumenInstalacion, error)
}
