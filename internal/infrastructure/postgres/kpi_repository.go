package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

var _ repository.KPIRepository = (*KPIRepo)(nil)

// KPIRepo consultas de solo lectura que derivan los contadores operacionales
// por agregación sobre puestos. Nada de esto se persiste: el contador es
// siempre la suma de lo que hay en la tabla en ese momento.
type KPIRepo struct {
	pool *pgxpool.Pool
}

// NewKPIRepository construye el adaptador de KPI.
func NewKPIRepository(pool *pgxpool.Pool) *KPIRepo {
	return &KPIRepo{pool: pool}
}

// ContadoresInstalacion deriva los contadores de una instalación.
// Guardias asignados cuenta guardias distintos por si un guardia cubre más de
// un puesto en la misma instalación.
func (r *KPIRepo) ContadoresInstalacion(ctx context.Context, instalacionID string) (*entity.ContadoresInstalacion, error) {
	const query = `
	SELECT
	    COUNT(DISTINCT p.guardia_id) FILTER (WHERE p.estado = $2) AS guardias_asignados,
	    COUNT(*) FILTER (WHERE p.estado = $2)                     AS puestos_cubiertos,
	    COUNT(*) FILTER (WHERE p.estado = $3)                     AS puestos_pendientes
	FROM puestos_operativos p
	WHERE p.instalacion_id = $1`

	var c entity.ContadoresInstalacion
	err := r.pool.QueryRow(ctx, query, instalacionID, entity.PuestoCubierto, entity.PuestoPendiente).Scan(
		&c.GuardiasAsignados, &c.PuestosCubiertos, &c.PuestosPendientes,
	)
	if err != nil {
		return nil, fmt.Errorf("contadores instalacion: %w", err)
	}
	return &c, nil
}

// ResumenInstalaciones deriva los contadores de todas las instalaciones
// activas, incluidas las que aún no tienen puestos.
func (r *KPIRepo) ResumenInstalaciones(ctx context.Context) ([]repository.ResumenInstalacion, error) {
	const query = `
	SELECT
	    i.id,
	    i.nombre,
	    COUNT(DISTINCT p.guardia_id) FILTER (WHERE p.estado = $2) AS guardias_asignados,
	    COUNT(p.id) FILTER (WHERE p.estado = $2)                  AS puestos_cubiertos,
	    COUNT(p.id) FILTER (WHERE p.estado = $3)                  AS puestos_pendientes
	FROM instalaciones i
	LEFT JOIN puestos_operativos p ON p.instalacion_id = i.id
	WHERE i.estado = $1
	GROUP BY i.id, i.nombre
	ORDER BY i.nombre`

	rows, err := r.pool.Query(ctx, query, entity.InstalacionActiva, entity.PuestoCubierto, entity.PuestoPendiente)
	if err != nil {
		return nil, fmt.Errorf("resumen instalaciones: %w", err)
	}
	defer rows.Close()
	var list []repository.ResumenInstalacion
	for rows.Next() {
		var f repository.ResumenInstalacion
		if err := rows.Scan(
			&f.InstalacionID, &f.InstalacionNombre,
			&f.Contadores.GuardiasAsignados, &f.Contadores.PuestosCubiertos, &f.Contadores.PuestosPendientes,
		); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
