package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

var _ repository.PagoExtraRepository = (*PagoExtraRepo)(nil)

// PagoExtraRepo implementación de PagoExtraRepository (usable con pool o tx).
// Monto es NUMERIC en la base y decimal.Decimal en Go vía el codec del pool.
type PagoExtraRepo struct {
	q Querier
}

// NewPagoExtraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPagoExtraRepository(q Querier) *PagoExtraRepo {
	return &PagoExtraRepo{q: q}
}

// Create persiste un nuevo ítem extra.
func (r *PagoExtraRepo) Create(p *entity.PagoExtra) error {
	query := `
		INSERT INTO pagos_extra (id, guardia_id, tipo, glosa, monto, periodo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.GuardiaID, p.Tipo, p.Glosa, p.Monto, p.Periodo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pago extra: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem extra por ID.
func (r *PagoExtraRepo) GetByID(id string) (*entity.PagoExtra, error) {
	query := `
		SELECT id, guardia_id, tipo, glosa, monto, periodo, created_at, updated_at
		FROM pagos_extra WHERE id = $1`
	var p entity.PagoExtra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.GuardiaID, &p.Tipo, &p.Glosa, &p.Monto, &p.Periodo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago extra: %w", err)
	}
	return &p, nil
}

// ListByGuardia lista los ítems del guardia; periodo vacío lista todos.
func (r *PagoExtraRepo) ListByGuardia(guardiaID, periodo string) ([]*entity.PagoExtra, error) {
	query := `
		SELECT id, guardia_id, tipo, glosa, monto, periodo, created_at, updated_at
		FROM pagos_extra
		WHERE guardia_id = $1 AND ($2 = '' OR periodo = $2)
		ORDER BY periodo DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, guardiaID, periodo)
	if err != nil {
		return nil, fmt.Errorf("list pagos extra: %w", err)
	}
	defer rows.Close()
	var list []*entity.PagoExtra
	for rows.Next() {
		var p entity.PagoExtra
		if err := rows.Scan(&p.ID, &p.GuardiaID, &p.Tipo, &p.Glosa, &p.Monto, &p.Periodo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pago extra: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza glosa, monto y período de un ítem extra.
func (r *PagoExtraRepo) Update(p *entity.PagoExtra) error {
	query := `
		UPDATE pagos_extra SET glosa = $2, monto = $3, periodo = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Glosa, p.Monto, p.Periodo, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pago extra: %w", err)
	}
	return nil
}

// Delete elimina un ítem extra por ID.
func (r *PagoExtraRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pagos_extra WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pago extra: %w", err)
	}
	return nil
}
