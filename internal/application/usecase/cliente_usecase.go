package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
	"github.com/gardops/gardops-api/internal/domain/validacion"
)

// ErrDesactivacionBloqueada se devuelve cuando un cliente no puede pasar a
// Inactivo porque aún tiene instalaciones activas. Lleva AMBAS particiones
// para que el caller pueda mostrar qué bloquea y qué ya está inactivo.
type ErrDesactivacionBloqueada struct {
	ClienteID string
	Activas   []*entity.Instalacion
	Inactivas []*entity.Instalacion
}

func (e *ErrDesactivacionBloqueada) Error() string {
	return fmt.Sprintf("el cliente tiene %d instalación(es) activa(s)", len(e.Activas))
}

// ResultadoDesactivacion resultado del guard de transición Activo → Inactivo.
type ResultadoDesactivacion struct {
	Permitido bool
	Activas   []*entity.Instalacion
	Inactivas []*entity.Instalacion
}

// ClienteUseCase casos de uso CRUD para clientes, incluido el guard de
// desactivación contra sus instalaciones.
type ClienteUseCase struct {
	repo            repository.ClienteRepository
	instalacionRepo repository.InstalacionRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, instalacionRepo repository.InstalacionRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, instalacionRepo: instalacionRepo}
}

// Create valida y crea un cliente. Retorna ErrCamposInvalidos si la
// validación de campos falla y ErrDuplicate si el RUT ya existe.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	now := time.Now()
	cliente := &entity.Cliente{
		ID:                 uuid.New().String(),
		Nombre:             in.Nombre,
		RUT:                in.RUT,
		RazonSocial:        in.RazonSocial,
		RepresentanteLegal: in.RepresentanteLegal,
		RUTRepresentante:   in.RUTRepresentante,
		Email:              in.Email,
		Telefono:           in.Telefono,
		Direccion:          in.Direccion,
		Latitud:            in.Latitud,
		Longitud:           in.Longitud,
		Estado:             entity.ClienteActivo,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if errores := validacion.ValidarCliente(cliente); len(errores) > 0 {
		return nil, &domain.ErrCamposInvalidos{Campos: errores}
	}
	existente, err := uc.repo.GetByRUT(cliente.RUT)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes con paginación.
func (uc *ClienteUseCase) List(limit, offset int) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return items, nil
}

// CanDeactivate es el guard de transición: particiona las instalaciones del
// cliente por estado; permitido ⇔ no quedan activas. Si la consulta de
// instalaciones falla, el error se propaga y la desactivación NO procede
// (falla cerrado, nunca abierto).
func (uc *ClienteUseCase) CanDeactivate(clienteID string) (*ResultadoDesactivacion, error) {
	instalaciones, err := uc.instalacionRepo.ListByCliente(clienteID)
	if err != nil {
		return nil, fmt.Errorf("consultar instalaciones del cliente: %w", err)
	}
	res := &ResultadoDesactivacion{}
	for _, inst := range instalaciones {
		if inst.Estado == entity.InstalacionActiva {
			res.Activas = append(res.Activas, inst)
		} else {
			res.Inactivas = append(res.Inactivas, inst)
		}
	}
	res.Permitido = len(res.Activas) == 0
	return res, nil
}

// Update aplica una actualización parcial. Si el patch intenta pasar el
// cliente a Inactivo, primero corre el guard de desactivación y retorna
// ErrDesactivacionBloqueada con ambas particiones cuando hay instalaciones
// activas.
func (uc *ClienteUseCase) Update(in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	patch := entity.ClientePatch{
		Nombre:             in.Nombre,
		RUT:                in.RUT,
		RazonSocial:        in.RazonSocial,
		RepresentanteLegal: in.RepresentanteLegal,
		RUTRepresentante:   in.RUTRepresentante,
		Email:              in.Email,
		Telefono:           in.Telefono,
		Direccion:          in.Direccion,
		Latitud:            in.Latitud,
		Longitud:           in.Longitud,
		Estado:             in.Estado,
	}
	if errores := validacion.ValidarClientePatch(patch); len(errores) > 0 {
		return nil, &domain.ErrCamposInvalidos{Campos: errores}
	}

	quiereDesactivar := patch.Estado != nil &&
		*patch.Estado == entity.ClienteInactivo &&
		cliente.Estado != entity.ClienteInactivo
	if quiereDesactivar {
		res, err := uc.CanDeactivate(cliente.ID)
		if err != nil {
			return nil, err
		}
		if !res.Permitido {
			return nil, &ErrDesactivacionBloqueada{
				ClienteID: cliente.ID,
				Activas:   res.Activas,
				Inactivas: res.Inactivas,
			}
		}
	}

	patch.Aplicar(cliente)
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete elimina un cliente por ID (borrado duro).
func (uc *ClienteUseCase) Delete(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:                 c.ID,
		Nombre:             c.Nombre,
		RUT:                c.RUT,
		RazonSocial:        c.RazonSocial,
		RepresentanteLegal: c.RepresentanteLegal,
		RUTRepresentante:   c.RUTRepresentante,
		Email:              c.Email,
		Telefono:           c.Telefono,
		Direccion:          c.Direccion,
		Latitud:            c.Latitud,
		Longitud:           c.Longitud,
		Estado:             c.Estado,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
