package repository

import "github.com/gardops/gardops-api/internal/domain/entity"

// DocumentoRepository define el puerto de persistencia para Documento.
type DocumentoRepository interface {
	Create(doc *entity.Documento) error
	GetByID(id string) (*entity.Documento, error)
	ListByEntidad(modulo, entidadID string) ([]*entity.Documento, error)
	Delete(id string) error
}

// TipoDocumentoRepository define el puerto para el catálogo de tipos de documento.
type TipoDocumentoRepository interface {
	GetByID(id string) (*entity.TipoDocumento, error)
	ListByModulo(modulo string) ([]*entity.TipoDocumento, error)
}
