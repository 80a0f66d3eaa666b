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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, nombre, rut, razon_social, representante_legal, rut_representante,
	email, telefono, direccion, latitud, longitud, estado, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.RUT, c.RazonSocial, c.RepresentanteLegal, c.RUTRepresentante,
		c.Email, c.Telefono, c.Direccion, c.Latitud, c.Longitud, c.Estado,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByRUT obtiene un cliente por RUT.
func (r *ClienteRepo) GetByRUT(rut string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE rut = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, rut))
}

// List lista clientes con paginación, ordenados por nombre.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := scanCliente(rows, &c); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, rut = $3, razon_social = $4,
			representante_legal = $5, rut_representante = $6, email = $7,
			telefono = $8, direccion = $9, latitud = $10, longitud = $11,
			estado = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.RUT, c.RazonSocial, c.RepresentanteLegal, c.RUTRepresentante,
		c.Email, c.Telefono, c.Direccion, c.Latitud, c.Longitud, c.Estado, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID (borrado duro).
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) scanOne(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	if err := scanCliente(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func scanCliente(row pgx.Row, c *entity.Cliente) error {
	return row.Scan(
		&c.ID, &c.Nombre, &c.RUT, &c.RazonSocial, &c.RepresentanteLegal, &c.RUTRepresentante,
		&c.Email, &c.Telefono, &c.Direccion, &c.Latitud, &c.Longitud, &c.Estado,
		&c.CreatedAt, &c.UpdatedAt,
	)
}
