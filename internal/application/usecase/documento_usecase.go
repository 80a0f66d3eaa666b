package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/documento"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

// SubirDocumentoInput entrada para adjuntar un documento a una entidad.
type SubirDocumentoInput struct {
	Modulo           string
	EntidadID        string
	Nombre           string
	TipoDocumentoID  string
	FechaVencimiento *time.Time
	Contenido        io.Reader
}

// DocumentoUseCase casos de uso para documentos adjuntos y su catálogo de
// tipos. La vigencia se deriva en cada lectura, nunca se persiste.
type DocumentoUseCase struct {
	repo     repository.DocumentoRepository
	tipoRepo repository.TipoDocumentoRepository
	store    ArchivoStore
}

// NewDocumentoUseCase construye el caso de uso.
func NewDocumentoUseCase(
	repo repository.DocumentoRepository,
	tipoRepo repository.TipoDocumentoRepository,
	store ArchivoStore,
) *DocumentoUseCase {
	return &DocumentoUseCase{repo: repo, tipoRepo: tipoRepo, store: store}
}

func moduloValido(m string) bool {
	return m == entity.ModuloClientes || m == entity.ModuloInstalaciones || m == entity.ModuloGuardias
}

// Subir adjunta un documento. Si el tipo declara RequiereVencimiento, la
// subida sin fecha de vencimiento se rechaza antes de tocar el storage.
func (uc *DocumentoUseCase) Subir(ctx context.Context, in SubirDocumentoInput) (*dto.DocumentoResponse, error) {
	if !moduloValido(in.Modulo) {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"modulo": "módulo desconocido"}}
	}
	if in.Nombre == "" {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"nombre": "el nombre del archivo es requerido"}}
	}
	tipo, err := uc.tipoRepo.GetByID(in.TipoDocumentoID)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"tipo_documento_id": "el tipo de documento no existe"}}
	}
	if tipo.Modulo != in.Modulo {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"tipo_documento_id": "el tipo no pertenece a este módulo"}}
	}
	if tipo.RequiereVencimiento && in.FechaVencimiento == nil {
		return nil, domain.ErrVencimientoFaltante
	}

	ref, tamano, err := uc.store.Guardar(ctx, in.Nombre, in.Contenido)
	if err != nil {
		return nil, err
	}
	doc := &entity.Documento{
		ID:               uuid.New().String(),
		Modulo:           in.Modulo,
		EntidadID:        in.EntidadID,
		Nombre:           in.Nombre,
		TipoDocumentoID:  tipo.ID,
		ArchivoRef:       ref,
		TamanoBytes:      tamano,
		FechaVencimiento: in.FechaVencimiento,
		CreatedAt:        time.Now(),
		TipoNombre:       tipo.Nombre,
	}
	if err := uc.repo.Create(doc); err != nil {
		// el archivo no debe quedar huérfano si la fila no se pudo insertar
		_ = uc.store.Eliminar(ctx, ref)
		return nil, err
	}
	return toDocumentoResponse(doc, time.Now()), nil
}

// ListByEntidad lista los documentos de una entidad con su banda de vigencia.
func (uc *DocumentoUseCase) ListByEntidad(modulo, entidadID string) ([]dto.DocumentoResponse, error) {
	if !moduloValido(modulo) {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"modulo": "módulo desconocido"}}
	}
	docs, err := uc.repo.ListByEntidad(modulo, entidadID)
	if err != nil {
		return nil, err
	}
	hoy := time.Now()
	items := make([]dto.DocumentoResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, *toDocumentoResponse(d, hoy))
	}
	return items, nil
}

// Descargar abre el contenido de un documento. El caller debe cerrar el reader.
func (uc *DocumentoUseCase) Descargar(ctx context.Context, id string) (*dto.DocumentoResponse, io.ReadCloser, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, domain.ErrNotFound
	}
	rc, err := uc.store.Abrir(ctx, doc.ArchivoRef)
	if err != nil {
		return nil, nil, err
	}
	return toDocumentoResponse(doc, time.Now()), rc, nil
}

// Delete elimina el documento y su archivo.
func (uc *DocumentoUseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	_ = uc.store.Eliminar(ctx, doc.ArchivoRef)
	return nil
}

// ListTipos lista el catálogo de tipos de documento de un módulo.
func (uc *DocumentoUseCase) ListTipos(modulo string) ([]dto.TipoDocumentoResponse, error) {
	if !moduloValido(modulo) {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"modulo": "módulo desconocido"}}
	}
	tipos, err := uc.tipoRepo.ListByModulo(modulo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TipoDocumentoResponse, 0, len(tipos))
	for _, t := range tipos {
		items = append(items, dto.TipoDocumentoResponse{
			ID:                  t.ID,
			Nombre:              t.Nombre,
			Modulo:              t.Modulo,
			RequiereVencimiento: t.RequiereVencimiento,
		})
	}
	return items, nil
}

func toDocumentoResponse(d *entity.Documento, hoy time.Time) *dto.DocumentoResponse {
	resp := &dto.DocumentoResponse{
		ID:               d.ID,
		Modulo:           d.Modulo,
		EntidadID:        d.EntidadID,
		Nombre:           d.Nombre,
		TipoDocumentoID:  d.TipoDocumentoID,
		TipoNombre:       d.TipoNombre,
		TamanoBytes:      d.TamanoBytes,
		FechaVencimiento: d.FechaVencimiento,
		CreatedAt:        d.CreatedAt,
	}
	if d.FechaVencimiento != nil {
		banda := documento.EstadoVigencia(*d.FechaVencimiento, hoy)
		resp.Vigencia = &dto.VigenciaResponse{
			Etiqueta:      banda.Etiqueta,
			Severidad:     string(banda.Severidad),
			DiasRestantes: banda.DiasRestantes,
		}
	}
	return resp
}
