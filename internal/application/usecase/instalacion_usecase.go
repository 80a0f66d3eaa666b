package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
	"github.com/gardops/gardops-api/internal/domain/validacion"
	"github.com/gardops/gardops-api/pkg/texto"
)

// InstalacionUseCase casos de uso para instalaciones. Los contadores
// operacionales se derivan del repositorio de KPI al momento de la lectura,
// nunca se escriben.
type InstalacionUseCase struct {
	repo        repository.InstalacionRepository
	clienteRepo repository.ClienteRepository
	kpiRepo     repository.KPIRepository
}

// NewInstalacionUseCase construye el caso de uso.
func NewInstalacionUseCase(
	repo repository.InstalacionRepository,
	clienteRepo repository.ClienteRepository,
	kpiRepo repository.KPIRepository,
) *InstalacionUseCase {
	return &InstalacionUseCase{repo: repo, clienteRepo: clienteRepo, kpiRepo: kpiRepo}
}

// Create valida y crea una instalación. El cliente dueño debe existir.
func (uc *InstalacionUseCase) Create(in dto.CreateInstalacionRequest) (*dto.InstalacionResponse, error) {
	now := time.Now()
	inst := &entity.Instalacion{
		ID:        uuid.New().String(),
		ClienteID: in.ClienteID,
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Latitud:   in.Latitud,
		Longitud:  in.Longitud,
		Ciudad:    in.Ciudad,
		Comuna:    in.Comuna,
		Region:    in.Region,
		Estado:    entity.InstalacionActiva,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.ValorTurnoExtra != nil {
		inst.ValorTurnoExtra = *in.ValorTurnoExtra
	}
	if errores := validacion.ValidarInstalacion(inst); len(errores) > 0 {
		return nil, &domain.ErrCamposInvalidos{Campos: errores}
	}
	cliente, err := uc.clienteRepo.GetByID(inst.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"cliente_id": "el cliente no existe"}}
	}
	if err := uc.repo.Create(inst); err != nil {
		return nil, err
	}
	return toInstalacionResponse(inst, nil), nil
}

// GetByID obtiene una instalación con sus contadores derivados.
func (uc *InstalacionUseCase) GetByID(ctx context.Context, id string) (*dto.InstalacionResponse, error) {
	inst, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, nil
	}
	contadores, err := uc.kpiRepo.ContadoresInstalacion(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInstalacionResponse(inst, contadores), nil
}

// List lista instalaciones (sin contadores: el listado masivo usa el
// dashboard para agregados).
func (uc *InstalacionUseCase) List(limit, offset int) ([]dto.InstalacionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InstalacionResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInstalacionResponse(i, nil))
	}
	return items, nil
}

// ListByCliente lista las instalaciones de un cliente.
func (uc *InstalacionUseCase) ListByCliente(clienteID string) ([]dto.InstalacionResponse, error) {
	list, err := uc.repo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InstalacionResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInstalacionResponse(i, nil))
	}
	return items, nil
}

// Update aplica una actualización parcial. La "eliminación" de una
// instalación es esto mismo con estado Inactivo: nunca se borra la fila.
func (uc *InstalacionUseCase) Update(id string, in dto.UpdateInstalacionRequest) (*dto.InstalacionResponse, error) {
	inst, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, domain.ErrNotFound
	}
	patch := entity.InstalacionPatch{
		Nombre:          in.Nombre,
		Direccion:       in.Direccion,
		Latitud:         in.Latitud,
		Longitud:        in.Longitud,
		Ciudad:          in.Ciudad,
		Comuna:          in.Comuna,
		Region:          in.Region,
		ValorTurnoExtra: in.ValorTurnoExtra,
		Estado:          in.Estado,
	}
	if errores := validacion.ValidarInstalacionPatch(patch); len(errores) > 0 {
		return nil, &domain.ErrCamposInvalidos{Campos: errores}
	}
	patch.Aplicar(inst)
	inst.UpdatedAt = time.Now()
	if err := uc.repo.Update(inst); err != nil {
		return nil, err
	}
	return toInstalacionResponse(inst, nil), nil
}

// Desactivar marca la instalación como Inactiva (borrado suave).
func (uc *InstalacionUseCase) Desactivar(id string) error {
	inactivo := entity.InstalacionInactiva
	_, err := uc.Update(id, dto.UpdateInstalacionRequest{Estado: &inactivo})
	return err
}

// ListComunas devuelve las comunas distintas de las instalaciones, ordenadas.
// Con filtro no vacío, compara plegado (insensible a tildes y mayúsculas).
func (uc *InstalacionUseCase) ListComunas(ctx context.Context, filtro string) ([]string, error) {
	comunas, err := uc.repo.ListComunas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(comunas))
	for _, c := range comunas {
		if texto.Contiene(c, filtro) {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out, nil
}

func toInstalacionResponse(i *entity.Instalacion, c *entity.ContadoresInstalacion) *dto.InstalacionResponse {
	if i == nil {
		return nil
	}
	resp := &dto.InstalacionResponse{
		ID:              i.ID,
		ClienteID:       i.ClienteID,
		Nombre:          i.Nombre,
		Direccion:       i.Direccion,
		Latitud:         i.Latitud,
		Longitud:        i.Longitud,
		Ciudad:          i.Ciudad,
		Comuna:          i.Comuna,
		Region:          i.Region,
		ValorTurnoExtra: i.ValorTurnoExtra,
		Estado:          i.Estado,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
	if c != nil {
		resp.Contadores = &dto.ContadoresResponse{
			GuardiasAsignados: c.GuardiasAsignados,
			PuestosCubiertos:  c.PuestosCubiertos,
			PuestosPendientes: c.PuestosPendientes,
		}
	}
	return resp
}
