package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/asignacion"
	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

// PPCHandler expone los puestos por cubrir: listado filtrado, asignación en
// un paso, desasignación e historial.
type PPCHandler struct {
	svc           *asignacion.Servicio
	historialRepo repository.HistorialRepository
}

// NewPPCHandler construye el handler de PPC.
func NewPPCHandler(svc *asignacion.Servicio, historialRepo repository.HistorialRepository) *PPCHandler {
	return &PPCHandler{svc: svc, historialRepo: historialRepo}
}

// List godoc
// @Summary      Listar puestos por cubrir (solo instalaciones activas)
// @Tags         ppc
// @Produce      json
// @Param        instalacion_id  query  string  false  "filtra por instalación"
// @Param        jornada         query  string  false  "Día | Noche"
// @Param        rol             query  string  false  "rol del puesto"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/ppc [get]
func (h *PPCHandler) List(c *fiber.Ctx) error {
	filtro := repository.FiltroPPC{
		InstalacionID: c.Query("instalacion_id"),
		Jornada:       c.Query("jornada"),
		Rol:           c.Query("rol"),
	}
	pendientes, err := h.svc.ListPendientes(c.Context(), filtro)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(pendientes))
}

// Resumen godoc
// @Summary      Agregados de PPC recalculados sobre la lista vigente
// @Tags         ppc
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/ppc/resumen [get]
func (h *PPCHandler) Resumen(c *fiber.Ctx) error {
	resumen, err := h.svc.Resumen(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(resumen))
}

// AsignarSimple godoc
// @Summary      Asignar un guardia a un puesto en un solo paso
// @Tags         ppc
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AsignarSimpleRequest  true  "guardia, puesto y fecha de inicio"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Failure      404  {object}  dto.APIError
// @Router       /api/ppc/asignar-simple [post]
func (h *PPCHandler) AsignarSimple(c *fiber.Ctx) error {
	var in dto.AsignarSimpleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.svc.AsignarSimple(c.Context(), in)
	if err != nil {
		// Un fallo del commit viaja textual: el operador necesita ver el
		// mensaje del servidor tal cual para reportarlo.
		if !esErrorDeDominio(err) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err(err.Error()))
		}
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Desasignar godoc
// @Summary      Volver un puesto cubierto a pendiente
// @Tags         ppc
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true   "id del puesto"
// @Param        body  body  dto.DesasignarRequest  false  "observaciones del movimiento"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Router       /api/ppc/{id}/desasignar [post]
func (h *PPCHandler) Desasignar(c *fiber.Ctx) error {
	var in dto.DesasignarRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
		}
	}
	if err := h.svc.Desasignar(c.Context(), c.Params("id"), in.Observaciones); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMessage("puesto desasignado"))
}

// Historial godoc
// @Summary      Historial de asignaciones de un puesto, más reciente primero
// @Tags         ppc
// @Produce      json
// @Param        id  path  string  true  "id del puesto"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/ppc/{id}/historial [get]
func (h *PPCHandler) Historial(c *fiber.Ctx) error {
	filas, err := h.historialRepo.ListByPuesto(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.HistorialResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.HistorialResponse{
			ID:            f.ID,
			PuestoID:      f.PuestoID,
			GuardiaID:     f.GuardiaID,
			FechaInicio:   f.FechaInicio,
			Motivo:        f.Motivo,
			Observaciones: f.Observaciones,
			CreatedAt:     f.CreatedAt,
		})
	}
	return c.JSON(dto.OK(out))
}
