package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/plantilla"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

var _ repository.PlantillaRepository = (*PlantillaRepo)(nil)

// PlantillaRepo implementación de PlantillaRepository (usable con pool o tx).
// Solo persiste nombre y cuerpo: las variables se re-derivan del cuerpo al
// leer, nunca se almacenan por separado.
type PlantillaRepo struct {
	q Querier
}

// NewPlantillaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlantillaRepository(q Querier) *PlantillaRepo {
	return &PlantillaRepo{q: q}
}

// Create persiste una nueva plantilla.
func (r *PlantillaRepo) Create(p *entity.Plantilla) error {
	query := `
		INSERT INTO plantillas (id, nombre, cuerpo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Cuerpo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plantilla: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID, con las variables derivadas del cuerpo.
func (r *PlantillaRepo) GetByID(id string) (*entity.Plantilla, error) {
	query := `SELECT id, nombre, cuerpo, created_at, updated_at FROM plantillas WHERE id = $1`
	var p entity.Plantilla
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Cuerpo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plantilla: %w", err)
	}
	p.Variables = plantilla.ExtraerVariables(p.Cuerpo)
	return &p, nil
}

// List lista plantillas con paginación, ordenadas por nombre.
func (r *PlantillaRepo) List(limit, offset int) ([]*entity.Plantilla, error) {
	query := `SELECT id, nombre, cuerpo, created_at, updated_at FROM plantillas ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list plantillas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plantilla
	for rows.Next() {
		var p entity.Plantilla
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Cuerpo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plantilla: %w", err)
		}
		p.Variables = plantilla.ExtraerVariables(p.Cuerpo)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una plantilla.
func (r *PlantillaRepo) Update(p *entity.Plantilla) error {
	query := `UPDATE plantillas SET nombre = $2, cuerpo = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Nombre, p.Cuerpo, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update plantilla: %w", err)
	}
	return nil
}

// Delete elimina una plantilla por ID.
func (r *PlantillaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM plantillas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plantilla: %w", err)
	}
	return nil
}
