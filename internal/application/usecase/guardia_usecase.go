package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
	"github.com/gardops/gardops-api/internal/domain/validacion"
)

// GuardiaUseCase casos de uso para guardias.
type GuardiaUseCase struct {
	repo repository.GuardiaRepository
}

// NewGuardiaUseCase construye el caso de uso.
func NewGuardiaUseCase(repo repository.GuardiaRepository) *GuardiaUseCase {
	return &GuardiaUseCase{repo: repo}
}

// Create valida y crea un guardia. El RUT es único en la dotación.
func (uc *GuardiaUseCase) Create(in dto.CreateGuardiaRequest) (*dto.GuardiaResponse, error) {
	now := time.Now()
	g := &entity.Guardia{
		ID:              uuid.New().String(),
		RUT:             in.RUT,
		Nombre:          in.Nombre,
		ApellidoPaterno: in.ApellidoPaterno,
		ApellidoMaterno: in.ApellidoMaterno,
		Email:           in.Email,
		Telefono:        in.Telefono,
		Comuna:          in.Comuna,
		Estado:          entity.GuardiaActivo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if errores := validacion.ValidarGuardia(g); len(errores) > 0 {
		return nil, &domain.ErrCamposInvalidos{Campos: errores}
	}
	existente, err := uc.repo.GetByRUT(g.RUT)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(g); err != nil {
		return nil, err
	}
	return toGuardiaResponse(g), nil
}

// GetByID obtiene un guardia por su ID.
func (uc *GuardiaUseCase) GetByID(id string) (*dto.GuardiaResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return toGuardiaResponse(g), nil
}

// List lista guardias.
func (uc *GuardiaUseCase) List(limit, offset int) ([]dto.GuardiaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GuardiaResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGuardiaResponse(g))
	}
	return items, nil
}

// Search busca guardias activos por nombre o RUT. Devuelve los candidatos
// elegibles para cubrir un puesto pendiente.
func (uc *GuardiaUseCase) Search(ctx context.Context, query string, limit int) ([]dto.GuardiaResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	list, err := uc.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GuardiaResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGuardiaResponse(g))
	}
	return items, nil
}

// Update aplica una actualización parcial. El RUT no es editable: cambiar de
// persona es crear otro guardia.
func (uc *GuardiaUseCase) Update(id string, in dto.UpdateGuardiaRequest) (*dto.GuardiaResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	errores := map[string]string{}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			errores["nombre"] = "el nombre es requerido"
		} else {
			g.Nombre = *in.Nombre
		}
	}
	if in.ApellidoPaterno != nil {
		g.ApellidoPaterno = *in.ApellidoPaterno
	}
	if in.ApellidoMaterno != nil {
		g.ApellidoMaterno = *in.ApellidoMaterno
	}
	if in.Email != nil {
		g.Email = *in.Email
	}
	if in.Telefono != nil {
		g.Telefono = *in.Telefono
	}
	if in.Comuna != nil {
		g.Comuna = *in.Comuna
	}
	if in.Estado != nil {
		if *in.Estado != entity.GuardiaActivo && *in.Estado != entity.GuardiaInactivo {
			errores["estado"] = "estado debe ser Activo o Inactivo"
		} else {
			g.Estado = *in.Estado
		}
	}
	if resto := validacion.ValidarGuardia(g); resto["email"] != "" {
		errores["email"] = resto["email"]
	}
	if len(errores) > 0 {
		return nil, &domain.ErrCamposInvalidos{Campos: errores}
	}
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(g); err != nil {
		return nil, err
	}
	return toGuardiaResponse(g), nil
}

func toGuardiaResponse(g *entity.Guardia) *dto.GuardiaResponse {
	return &dto.GuardiaResponse{
		ID:              g.ID,
		RUT:             g.RUT,
		Nombre:          g.Nombre,
		ApellidoPaterno: g.ApellidoPaterno,
		ApellidoMaterno: g.ApellidoMaterno,
		NombreCompleto:  g.NombreCompleto(),
		Email:           g.Email,
		Telefono:        g.Telefono,
		Comuna:          g.Comuna,
		Estado:          g.Estado,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}
