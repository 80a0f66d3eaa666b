package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

var _ repository.GuardiaRepository = (*GuardiaRepo)(nil)

// GuardiaRepo implementación de GuardiaRepository (usable con pool o tx).
type GuardiaRepo struct {
	q Querier
}

// NewGuardiaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGuardiaRepository(q Querier) *GuardiaRepo {
	return &GuardiaRepo{q: q}
}

const guardiaColumns = `id, rut, nombre, apellido_paterno, apellido_materno,
	email, telefono, comuna, estado, created_at, updated_at`

// Create persiste un nuevo guardia.
func (r *GuardiaRepo) Create(g *entity.Guardia) error {
	query := `
		INSERT INTO guardias (` + guardiaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.RUT, g.Nombre, g.ApellidoPaterno, g.ApellidoMaterno,
		g.Email, g.Telefono, g.Comuna, g.Estado, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert guardia: %w", err)
	}
	return nil
}

// GetByID obtiene un guardia por ID.
func (r *GuardiaRepo) GetByID(id string) (*entity.Guardia, error) {
	query := `SELECT ` + guardiaColumns + ` FROM guardias WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByRUT obtiene un guardia por RUT.
func (r *GuardiaRepo) GetByRUT(rut string) (*entity.Guardia, error) {
	query := `SELECT ` + guardiaColumns + ` FROM guardias WHERE rut = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, rut))
}

// List lista guardias con paginación, ordenados por apellido.
func (r *GuardiaRepo) List(limit, offset int) ([]*entity.Guardia, error) {
	query := `SELECT ` + guardiaColumns + ` FROM guardias ORDER BY apellido_paterno, nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list guardias: %w", err)
	}
	return collectGuardias(rows)
}

// Search busca guardias activos por nombre, apellidos o RUT (prefijo o
// subcadena, sin distinguir mayúsculas). Alimenta la búsqueda de candidatos
// al cubrir un PPC.
func (r *GuardiaRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Guardia, error) {
	sql := `
		SELECT ` + guardiaColumns + `
		FROM guardias
		WHERE estado = $1
		  AND (rut ILIKE '%' || $2 || '%'
		    OR (nombre || ' ' || apellido_paterno || ' ' || apellido_materno) ILIKE '%' || $2 || '%')
		ORDER BY apellido_paterno, nombre
		LIMIT $3`
	rows, err := r.q.Query(ctx, sql, entity.GuardiaActivo, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search guardias: %w", err)
	}
	return collectGuardias(rows)
}

// Update actualiza un guardia.
func (r *GuardiaRepo) Update(g *entity.Guardia) error {
	query := `
		UPDATE guardias SET nombre = $2, apellido_paterno = $3, apellido_materno = $4,
			email = $5, telefono = $6, comuna = $7, estado = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.Nombre, g.ApellidoPaterno, g.ApellidoMaterno,
		g.Email, g.Telefono, g.Comuna, g.Estado, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update guardia: %w", err)
	}
	return nil
}

func (r *GuardiaRepo) scanOne(row pgx.Row) (*entity.Guardia, error) {
	var g entity.Guardia
	if err := scanGuardia(row, &g); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guardia: %w", err)
	}
	return &g, nil
}

func collectGuardias(rows pgx.Rows) ([]*entity.Guardia, error) {
	defer rows.Close()
	var list []*entity.Guardia
	for rows.Next() {
		var g entity.Guardia
		if err := scanGuardia(rows, &g); err != nil {
			return nil, fmt.Errorf("scan guardia: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

func scanGuardia(row pgx.Row, g *entity.Guardia) error {
	return row.Scan(
		&g.ID, &g.RUT, &g.Nombre, &g.ApellidoPaterno, &g.ApellidoMaterno,
		&g.Email, &g.Telefono, &g.Comuna, &g.Estado, &g.CreatedAt, &g.UpdatedAt,
	)
}
