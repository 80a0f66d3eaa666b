package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

// DocumentoRepo implementación de DocumentoRepository (usable con pool o tx).
type DocumentoRepo struct {
	q Querier
}

// NewDocumentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentoRepository(q Querier) *DocumentoRepo {
	return &DocumentoRepo{q: q}
}

// Create persiste los metadatos de un documento. El binario vive en el
// storage, aquí solo va la referencia.
func (r *DocumentoRepo) Create(d *entity.Documento) error {
	query := `
		INSERT INTO documentos (id, modulo, entidad_id, nombre, tipo_documento_id, archivo_ref, tamano_bytes, fecha_vencimiento, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Modulo, d.EntidadID, d.Nombre, d.TipoDocumentoID,
		d.ArchivoRef, d.TamanoBytes, d.FechaVencimiento, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// GetByID obtiene un documento con el nombre de su tipo embebido.
func (r *DocumentoRepo) GetByID(id string) (*entity.Documento, error) {
	query := `
		SELECT d.id, d.modulo, d.entidad_id, d.nombre, d.tipo_documento_id,
			d.archivo_ref, d.tamano_bytes, d.fecha_vencimiento, d.created_at, t.nombre
		FROM documentos d
		JOIN tipos_documento t ON t.id = d.tipo_documento_id
		WHERE d.id = $1`
	var d entity.Documento
	if err := scanDocumento(r.q.QueryRow(context.Background(), query, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return &d, nil
}

// ListByEntidad lista los documentos de una entidad, los más recientes primero.
func (r *DocumentoRepo) ListByEntidad(modulo, entidadID string) ([]*entity.Documento, error) {
	query := `
		SELECT d.id, d.modulo, d.entidad_id, d.nombre, d.tipo_documento_id,
			d.archivo_ref, d.tamano_bytes, d.fecha_vencimiento, d.created_at, t.nombre
		FROM documentos d
		JOIN tipos_documento t ON t.id = d.tipo_documento_id
		WHERE d.modulo = $1 AND d.entidad_id = $2
		ORDER BY d.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, modulo, entidadID)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Documento
	for rows.Next() {
		var d entity.Documento
		if err := scanDocumento(rows, &d); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina los metadatos de un documento.
func (r *DocumentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM documentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete documento: %w", err)
	}
	return nil
}

func scanDocumento(row pgx.Row, d *entity.Documento) error {
	return row.Scan(
		&d.ID, &d.Modulo, &d.EntidadID, &d.Nombre, &d.TipoDocumentoID,
		&d.ArchivoRef, &d.TamanoBytes, &d.FechaVencimiento, &d.CreatedAt, &d.TipoNombre,
	)
}

var _ repository.TipoDocumentoRepository = (*TipoDocumentoRepo)(nil)

// TipoDocumentoRepo catálogo de tipos de documento (usable con pool o tx).
type TipoDocumentoRepo struct {
	q Querier
}

// NewTipoDocumentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTipoDocumentoRepository(q Querier) *TipoDocumentoRepo {
	return &TipoDocumentoRepo{q: q}
}

// GetByID obtiene un tipo de documento por ID.
func (r *TipoDocumentoRepo) GetByID(id string) (*entity.TipoDocumento, error) {
	query := `
		SELECT id, nombre, modulo, requiere_vencimiento, created_at
		FROM tipos_documento WHERE id = $1`
	var t entity.TipoDocumento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Nombre, &t.Modulo, &t.RequiereVencimiento, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo documento: %w", err)
	}
	return &t, nil
}

// ListByModulo lista el catálogo de tipos de un módulo.
func (r *TipoDocumentoRepo) ListByModulo(modulo string) ([]*entity.TipoDocumento, error) {
	query := `
		SELECT id, nombre, modulo, requiere_vencimiento, created_at
		FROM tipos_documento WHERE modulo = $1 ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, modulo)
	if err != nil {
		return nil, fmt.Errorf("list tipos documento: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoDocumento
	for rows.Next() {
		var t entity.TipoDocumento
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Modulo, &t.RequiereVencimiento, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tipo documento: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
