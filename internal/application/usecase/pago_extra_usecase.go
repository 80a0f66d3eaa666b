package usecase

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

// patronPeriodo valida el mes de liquidación, formato "2026-08".
var patronPeriodo = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PagoExtraUseCase casos de uso para ítems extra de remuneración.
type PagoExtraUseCase struct {
	repo        repository.PagoExtraRepository
	guardiaRepo repository.GuardiaRepository
}

// NewPagoExtraUseCase construye el caso de uso.
func NewPagoExtraUseCase(repo repository.PagoExtraRepository, guardiaRepo repository.GuardiaRepository) *PagoExtraUseCase {
	return &PagoExtraUseCase{repo: repo, guardiaRepo: guardiaRepo}
}

// Create valida y crea un ítem extra. El guardia debe existir y el monto debe
// ser positivo; el signo lo aporta el tipo (haber suma, descuento resta).
func (uc *PagoExtraUseCase) Create(in dto.CreatePagoExtraRequest) (*dto.PagoExtraResponse, error) {
	errores := map[string]string{}
	if in.Tipo != entity.PagoExtraHaber && in.Tipo != entity.PagoExtraDescuento {
		errores["tipo"] = "tipo debe ser haber o descuento"
	}
	if in.Glosa == "" {
		errores["glosa"] = "la glosa es requerida"
	}
	if !in.Monto.IsPositive() {
		errores["monto"] = "el monto debe ser mayor que cero"
	}
	if !patronPeriodo.MatchString(in.Periodo) {
		errores["periodo"] = "período inválido: formato esperado AAAA-MM"
	}
	if len(errores) > 0 {
		return nil, &domain.ErrCamposInvalidos{Campos: errores}
	}
	g, err := uc.guardiaRepo.GetByID(in.GuardiaID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"guardia_id": "el guardia no existe"}}
	}
	now := time.Now()
	p := &entity.PagoExtra{
		ID:        uuid.New().String(),
		GuardiaID: in.GuardiaID,
		Tipo:      in.Tipo,
		Glosa:     in.Glosa,
		Monto:     in.Monto,
		Periodo:   in.Periodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPagoExtraResponse(p), nil
}

// ListByGuardia lista los ítems de un guardia, opcionalmente de un período.
func (uc *PagoExtraUseCase) ListByGuardia(guardiaID, periodo string) ([]dto.PagoExtraResponse, error) {
	if periodo != "" && !patronPeriodo.MatchString(periodo) {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"periodo": "período inválido: formato esperado AAAA-MM"}}
	}
	list, err := uc.repo.ListByGuardia(guardiaID, periodo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PagoExtraResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPagoExtraResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial. El guardia y el tipo no cambian:
// un descuento mal cargado se elimina y se vuelve a crear.
func (uc *PagoExtraUseCase) Update(id string, in dto.UpdatePagoExtraRequest) (*dto.PagoExtraResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	errores := map[string]string{}
	if in.Glosa != nil {
		if *in.Glosa == "" {
			errores["glosa"] = "la glosa es requerida"
		} else {
			p.Glosa = *in.Glosa
		}
	}
	if in.Monto != nil {
		if !in.Monto.IsPositive() {
			errores["monto"] = "el monto debe ser mayor que cero"
		} else {
			p.Monto = *in.Monto
		}
	}
	if in.Periodo != nil {
		if !patronPeriodo.MatchString(*in.Periodo) {
			errores["periodo"] = "período inválido: formato esperado AAAA-MM"
		} else {
			p.Periodo = *in.Periodo
		}
	}
	if len(errores) > 0 {
		return nil, &domain.ErrCamposInvalidos{Campos: errores}
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPagoExtraResponse(p), nil
}

// Delete elimina un ítem extra.
func (uc *PagoExtraUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPagoExtraResponse(p *entity.PagoExtra) *dto.PagoExtraResponse {
	return &dto.PagoExtraResponse{
		ID:        p.ID,
		GuardiaID: p.GuardiaID,
		Tipo:      p.Tipo,
		Glosa:     p.Glosa,
		Monto:     p.Monto,
		Periodo:   p.Periodo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
