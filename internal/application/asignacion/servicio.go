package asignacion

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

// Motivos registrados en el historial de asignaciones.
const (
	MotivoAsignacionPPC       = "asignacion_ppc"
	MotivoDesasignacionManual = "desasignacion_manual"
)

// Servicio ejecuta asignaciones y desasignaciones de guardias sobre puestos.
// El commit corre en una transacción: la transición del puesto y la fila de
// historial se escriben juntas o ninguna.
type Servicio struct {
	puestoRepo  repository.PuestoRepository
	guardiaRepo repository.GuardiaRepository
	tx          repository.TxRunner
	ahora       func() time.Time
}

// NewServicio construye el servicio.
func NewServicio(
	puestoRepo repository.PuestoRepository,
	guardiaRepo repository.GuardiaRepository,
	tx repository.TxRunner,
) *Servicio {
	return &Servicio{
		puestoRepo:  puestoRepo,
		guardiaRepo: guardiaRepo,
		tx:          tx,
		ahora:       time.Now,
	}
}

// AsignarSimple ejecuta un intento completo de asignación a partir de la
// petición HTTP: arma el flujo, lo avanza por sus estados y hace el commit.
// La confirmación sale del contexto congelado y del candidato, nunca de la
// respuesta del commit; tras el éxito los agregados se recalculan sobre la
// lista refrescada de pendientes.
func (s *Servicio) AsignarSimple(ctx context.Context, in dto.AsignarSimpleRequest) (*dto.AsignacionResponse, error) {
	fechaInicio, err := time.Parse("2006-01-02", in.FechaInicio)
	if err != nil {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"fecha_inicio": "fecha inválida: formato esperado AAAA-MM-DD"}}
	}

	puesto, err := s.puestoRepo.GetByID(in.PuestoOperativoID)
	if err != nil {
		return nil, err
	}
	if puesto == nil {
		return nil, domain.ErrNotFound
	}
	if puesto.Estado != entity.PuestoPendiente {
		return nil, domain.ErrPuestoCubierto
	}
	guardia, err := s.guardiaRepo.GetByID(in.GuardiaID)
	if err != nil {
		return nil, err
	}
	if guardia == nil {
		return nil, domain.ErrNotFound
	}
	if guardia.Estado != entity.GuardiaActivo {
		return nil, domain.ErrGuardiaInactivo
	}

	flujo := NuevoFlujo()
	if err := flujo.AbrirBusqueda(PuestoContexto{
		PuestoID:          puesto.ID,
		InstalacionNombre: puesto.InstalacionNombre,
		Rol:               puesto.Rol,
		Horario:           puesto.Horario,
	}); err != nil {
		return nil, err
	}
	if err := flujo.ElegirCandidato(Candidato{
		GuardiaID: guardia.ID,
		Nombre:    guardia.NombreCompleto(),
		RUT:       guardia.RUT,
	}); err != nil {
		return nil, err
	}
	if err := flujo.PedirFechaInicio(); err != nil {
		return nil, err
	}
	if err := flujo.Confirmar(fechaInicio, s.ahora(), in.Observaciones); err != nil {
		return nil, err
	}
	return s.Ejecutar(ctx, flujo, in.MotivoInicio)
}

// Ejecutar hace el commit de un flujo en Confirmado. Con motivo vacío se
// registra MotivoAsignacionPPC. Si el commit falla, el flujo queda en Fallo
// con el mensaje textual del error y el error se devuelve sin reintentos.
func (s *Servicio) Ejecutar(ctx context.Context, flujo *Flujo, motivo string) (*dto.AsignacionResponse, error) {
	if err := flujo.IniciarEnvio(); err != nil {
		return nil, err
	}
	if motivo == "" {
		motivo = MotivoAsignacionPPC
	}
	snapshot := flujo.Contexto()
	elegido := flujo.Elegido()
	err := s.tx.Run(ctx, func(repos repository.RepositoriosTx) error {
		if err := repos.Puestos.Asignar(snapshot.PuestoID, elegido.GuardiaID, flujo.FechaInicio()); err != nil {
			return err
		}
		return repos.Historial.Create(&entity.HistorialAsignacion{
			ID:            uuid.New().String(),
			PuestoID:      snapshot.PuestoID,
			GuardiaID:     elegido.GuardiaID,
			FechaInicio:   flujo.FechaInicio(),
			Motivo:        motivo,
			Observaciones: flujo.Observaciones(),
			CreatedAt:     s.ahora(),
		})
	})
	if err != nil {
		_ = flujo.RegistrarFallo(err.Error())
		return nil, err
	}
	if err := flujo.RegistrarExito(); err != nil {
		return nil, err
	}

	resumen, err := s.resumenRefrescado(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AsignacionResponse{
		Confirmacion: dto.ConfirmacionAsignacion{
			GuardiaNombre:     elegido.Nombre,
			GuardiaRUT:        elegido.RUT,
			InstalacionNombre: snapshot.InstalacionNombre,
			Rol:               snapshot.Rol,
			Horario:           snapshot.Horario,
			FechaInicio:       flujo.FechaInicio().Format("2006-01-02"),
		},
		Resumen: *resumen,
	}, nil
}

// Desasignar vuelve un puesto Cubierto a Pendiente y registra el movimiento.
func (s *Servicio) Desasignar(ctx context.Context, puestoID, observaciones string) error {
	puesto, err := s.puestoRepo.GetByID(puestoID)
	if err != nil {
		return err
	}
	if puesto == nil {
		return domain.ErrNotFound
	}
	if puesto.Estado != entity.PuestoCubierto || puesto.GuardiaID == nil {
		return domain.ErrConflict
	}
	guardiaID := *puesto.GuardiaID
	return s.tx.Run(ctx, func(repos repository.RepositoriosTx) error {
		if err := repos.Puestos.Desasignar(puestoID); err != nil {
			return err
		}
		return repos.Historial.Create(&entity.HistorialAsignacion{
			ID:            uuid.New().String(),
			PuestoID:      puestoID,
			GuardiaID:     guardiaID,
			FechaInicio:   s.ahora(),
			Motivo:        MotivoDesasignacionManual,
			Observaciones: observaciones,
			CreatedAt:     s.ahora(),
		})
	})
}

// ListPendientes lista los PPC abiertos según filtro, con días sin cubrir.
func (s *Servicio) ListPendientes(ctx context.Context, filtro repository.FiltroPPC) ([]dto.PPCResponse, error) {
	puestos, err := s.puestoRepo.ListPendientes(ctx, filtro)
	if err != nil {
		return nil, err
	}
	hoy := s.ahora()
	items := make([]dto.PPCResponse, 0, len(puestos))
	for _, p := range puestos {
		items = append(items, *toPPCResponse(p, hoy))
	}
	return items, nil
}

// Resumen devuelve los agregados de PPC calculados sobre la lista completa.
func (s *Servicio) Resumen(ctx context.Context) (*dto.ResumenPPC, error) {
	return s.resumenRefrescado(ctx)
}

func (s *Servicio) resumenRefrescado(ctx context.Context) (*dto.ResumenPPC, error) {
	puestos, err := s.puestoRepo.ListPendientes(ctx, repository.FiltroPPC{})
	if err != nil {
		return nil, err
	}
	resumen := CalcularResumen(puestos)
	return &resumen, nil
}

// CalcularResumen agrupa la lista de puestos contando solo los Pendiente,
// por nombre de instalación y por rol.
func CalcularResumen(puestos []*entity.PuestoOperativo) dto.ResumenPPC {
	resumen := dto.ResumenPPC{
		PorInstalacion: map[string]int{},
		PorRol:         map[string]int{},
	}
	for _, p := range puestos {
		if p.Estado != entity.PuestoPendiente {
			continue
		}
		resumen.TotalPendientes++
		resumen.PorInstalacion[p.InstalacionNombre]++
		resumen.PorRol[p.Rol]++
	}
	return resumen
}

func toPPCResponse(p *entity.PuestoOperativo, hoy time.Time) *dto.PPCResponse {
	return &dto.PPCResponse{
		ID:                p.ID,
		InstalacionID:     p.InstalacionID,
		InstalacionNombre: p.InstalacionNombre,
		Rol:               p.Rol,
		Horario:           p.Horario,
		Jornada:           p.Jornada,
		Estado:            p.Estado,
		GuardiaID:         p.GuardiaID,
		GuardiaNombre:     p.GuardiaNombre,
		GuardiaRUT:        p.GuardiaRUT,
		FechaInicio:       p.FechaInicio,
		DiasSinCubrir:     p.DiasSinCubrir(hoy),
		CreatedAt:         p.CreatedAt,
	}
}
