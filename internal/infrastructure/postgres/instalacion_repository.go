package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

var _ repository.InstalacionRepository = (*InstalacionRepo)(nil)

// InstalacionRepo implementación de InstalacionRepository (usable con pool o tx).
type InstalacionRepo struct {
	q Querier
}

// NewInstalacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInstalacionRepository(q Querier) *InstalacionRepo {
	return &InstalacionRepo{q: q}
}

const instalacionColumns = `id, cliente_id, nombre, direccion, latitud, longitud,
	ciudad, comuna, region, valor_turno_extra, estado, created_at, updated_at`

// Create persiste una nueva instalación.
func (r *InstalacionRepo) Create(i *entity.Instalacion) error {
	query := `
		INSERT INTO instalaciones (` + instalacionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.ClienteID, i.Nombre, i.Direccion, i.Latitud, i.Longitud,
		i.Ciudad, i.Comuna, i.Region, i.ValorTurnoExtra, i.Estado,
		i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert instalacion: %w", err)
	}
	return nil
}

// GetByID obtiene una instalación por ID.
func (r *InstalacionRepo) GetByID(id string) (*entity.Instalacion, error) {
	query := `SELECT ` + instalacionColumns + ` FROM instalaciones WHERE id = $1`
	var i entity.Instalacion
	if err := scanInstalacion(r.q.QueryRow(context.Background(), query, id), &i); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get instalacion: %w", err)
	}
	return &i, nil
}

// ListByCliente lista todas las instalaciones de un cliente (sin paginar: el
// guard de desactivación necesita la lista completa).
func (r *InstalacionRepo) ListByCliente(clienteID string) ([]*entity.Instalacion, error) {
	query := `SELECT ` + instalacionColumns + ` FROM instalaciones WHERE cliente_id = $1 ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list instalaciones por cliente: %w", err)
	}
	return collectInstalaciones(rows)
}

// List lista instalaciones con paginación, ordenadas por nombre.
func (r *InstalacionRepo) List(limit, offset int) ([]*entity.Instalacion, error) {
	query := `SELECT ` + instalacionColumns + ` FROM instalaciones ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list instalaciones: %w", err)
	}
	return collectInstalaciones(rows)
}

// Update actualiza una instalación.
func (r *InstalacionRepo) Update(i *entity.Instalacion) error {
	query := `
		UPDATE instalaciones SET nombre = $2, direccion = $3, latitud = $4,
			longitud = $5, ciudad = $6, comuna = $7, region = $8,
			valor_turno_extra = $9, estado = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.Nombre, i.Direccion, i.Latitud, i.Longitud,
		i.Ciudad, i.Comuna, i.Region, i.ValorTurnoExtra, i.Estado, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update instalacion: %w", err)
	}
	return nil
}

// ListComunas devuelve las comunas distintas, no vacías, de las instalaciones.
func (r *InstalacionRepo) ListComunas(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT comuna FROM instalaciones WHERE comuna <> '' ORDER BY comuna`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list comunas: %w", err)
	}
	defer rows.Close()
	var comunas []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan comuna: %w", err)
		}
		comunas = append(comunas, c)
	}
	return comunas, rows.Err()
}

func collectInstalaciones(rows pgx.Rows) ([]*entity.Instalacion, error) {
	defer rows.Close()
	var list []*entity.Instalacion
	for rows.Next() {
		var i entity.Instalacion
		if err := scanInstalacion(rows, &i); err != nil {
			return nil, fmt.Errorf("scan instalacion: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

func scanInstalacion(row pgx.Row, i *entity.Instalacion) error {
	return row.Scan(
		&i.ID, &i.ClienteID, &i.Nombre, &i.Direccion, &i.Latitud, &i.Longitud,
		&i.Ciudad, &i.Comuna, &i.Region, &i.ValorTurnoExtra, &i.Estado,
		&i.CreatedAt, &i.UpdatedAt,
	)
}
