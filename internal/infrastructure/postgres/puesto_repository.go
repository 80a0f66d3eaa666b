package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

var _ repository.PuestoRepository = (*PuestoRepo)(nil)

// PuestoRepo implementación de PuestoRepository (usable con pool o tx).
// Las transiciones de estado van en Asignar/Desasignar con condición sobre el
// estado actual: dos asignaciones concurrentes sobre el mismo puesto no pueden
// ganar ambas.
type PuestoRepo struct {
	q Querier
}

// NewPuestoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPuestoRepository(q Querier) *PuestoRepo {
	return &PuestoRepo{q: q}
}

// GetByID obtiene un puesto con los campos de instalación y guardia embebidos.
func (r *PuestoRepo) GetByID(id string) (*entity.PuestoOperativo, error) {
	query := `
		SELECT p.id, p.instalacion_id, p.rol, p.horario, p.jornada, p.estado,
			p.guardia_id, p.fecha_inicio, p.created_at, p.updated_at,
			i.nombre,
			COALESCE(g.nombre || ' ' || g.apellido_paterno, ''),
			COALESCE(g.rut, '')
		FROM puestos_operativos p
		JOIN instalaciones i ON i.id = p.instalacion_id
		LEFT JOIN guardias g ON g.id = p.guardia_id
		WHERE p.id = $1`
	var p entity.PuestoOperativo
	if err := scanPuesto(r.q.QueryRow(context.Background(), query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get puesto: %w", err)
	}
	return &p, nil
}

// ListPendientes devuelve los PPC abiertos de instalaciones activas, los más
// antiguos primero, con filtros opcionales.
func (r *PuestoRepo) ListPendientes(ctx context.Context, filtro repository.FiltroPPC) ([]*entity.PuestoOperativo, error) {
	query := `
		SELECT p.id, p.instalacion_id, p.rol, p.horario, p.jornada, p.estado,
			p.guardia_id, p.fecha_inicio, p.created_at, p.updated_at,
			i.nombre, '', ''
		FROM puestos_operativos p
		JOIN instalaciones i ON i.id = p.instalacion_id
		WHERE p.estado = $1 AND i.estado = $2
		  AND ($3 = '' OR p.instalacion_id = $3)
		  AND ($4 = '' OR p.jornada = $4)
		  AND ($5 = '' OR p.rol ILIKE '%' || $5 || '%')
		ORDER BY p.created_at`
	rows, err := r.q.Query(ctx, query,
		entity.PuestoPendiente, entity.InstalacionActiva,
		filtro.InstalacionID, filtro.Jornada, filtro.Rol,
	)
	if err != nil {
		return nil, fmt.Errorf("list ppc: %w", err)
	}
	defer rows.Close()
	var list []*entity.PuestoOperativo
	for rows.Next() {
		var p entity.PuestoOperativo
		if err := scanPuesto(rows, &p); err != nil {
			return nil, fmt.Errorf("scan puesto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Asignar cubre el puesto: Pendiente → Cubierto con guardia y fecha de inicio.
// La condición de estado hace la transición atómica: si otro proceso cubrió el
// puesto primero, no hay fila afectada y se devuelve ErrPuestoCubierto.
func (r *PuestoRepo) Asignar(puestoID, guardiaID string, fechaInicio time.Time) error {
	query := `
		UPDATE puestos_operativos
		SET estado = $3, guardia_id = $4, fecha_inicio = $5, updated_at = now()
		WHERE id = $1 AND estado = $2`
	tag, err := r.q.Exec(context.Background(), query,
		puestoID, entity.PuestoPendiente, entity.PuestoCubierto, guardiaID, fechaInicio,
	)
	if err != nil {
		return fmt.Errorf("asignar puesto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPuestoCubierto
	}
	return nil
}

// Desasignar vuelve el puesto a Pendiente y limpia guardia y fecha.
func (r *PuestoRepo) Desasignar(puestoID string) error {
	query := `
		UPDATE puestos_operativos
		SET estado = $3, guardia_id = NULL, fecha_inicio = NULL, updated_at = now()
		WHERE id = $1 AND estado = $2`
	tag, err := r.q.Exec(context.Background(), query,
		puestoID, entity.PuestoCubierto, entity.PuestoPendiente,
	)
	if err != nil {
		return fmt.Errorf("desasignar puesto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

func scanPuesto(row pgx.Row, p *entity.PuestoOperativo) error {
	return row.Scan(
		&p.ID, &p.InstalacionID, &p.Rol, &p.Horario, &p.Jornada, &p.Estado,
		&p.GuardiaID, &p.FechaInicio, &p.CreatedAt, &p.UpdatedAt,
		&p.InstalacionNombre, &p.GuardiaNombre, &p.GuardiaRUT,
	)
}

var _ repository.HistorialRepository = (*HistorialRepo)(nil)

// HistorialRepo registro inmutable de asignaciones (usable con pool o tx).
type HistorialRepo struct {
	q Querier
}

// NewHistorialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistorialRepository(q Querier) *HistorialRepo {
	return &HistorialRepo{q: q}
}

// Create persiste una fila de historial. No hay Update ni Delete: el
// historial solo crece.
func (r *HistorialRepo) Create(h *entity.HistorialAsignacion) error {
	query := `
		INSERT INTO historial_asignaciones (id, puesto_id, guardia_id, fecha_inicio, motivo, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.PuestoID, h.GuardiaID, h.FechaInicio, h.Motivo, h.Observaciones, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// ListByPuesto lista el historial de un puesto, lo más reciente primero.
func (r *HistorialRepo) ListByPuesto(puestoID string) ([]*entity.HistorialAsignacion, error) {
	query := `
		SELECT id, puesto_id, guardia_id, fecha_inicio, motivo, observaciones, created_at
		FROM historial_asignaciones WHERE puesto_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, puestoID)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistorialAsignacion
	for rows.Next() {
		var h entity.HistorialAsignacion
		if err := rows.Scan(&h.ID, &h.PuestoID, &h.GuardiaID, &h.FechaInicio, &h.Motivo, &h.Observaciones, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
