package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/application/usecase"
)

// InstalacionHandler expone el CRUD de instalaciones y el catálogo de comunas.
type InstalacionHandler struct {
	uc *usecase.InstalacionUseCase
}

// NewInstalacionHandler construye el handler de instalaciones.
func NewInstalacionHandler(uc *usecase.InstalacionUseCase) *InstalacionHandler {
	return &InstalacionHandler{uc: uc}
}

// List godoc
// @Summary      Listar instalaciones (opcionalmente por cliente)
// @Tags         instalaciones
// @Produce      json
// @Param        cliente_id  query  string  false  "filtra por cliente dueño"
// @Param        limit       query  int     false  "tope de filas (default 50)"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/instalaciones [get]
func (h *InstalacionHandler) List(c *fiber.Ctx) error {
	if clienteID := c.Query("cliente_id"); clienteID != "" {
		instalaciones, err := h.uc.ListByCliente(clienteID)
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(dto.OK(instalaciones))
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	instalaciones, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(instalaciones))
}

// Comunas godoc
// @Summary      Comunas distintas registradas en instalaciones
// @Tags         instalaciones
// @Produce      json
// @Param        filtro  query  string  false  "subcadena a buscar, sin distinguir tildes ni mayúsculas"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/instalaciones/comunas [get]
func (h *InstalacionHandler) Comunas(c *fiber.Ctx) error {
	comunas, err := h.uc.ListComunas(c.Context(), c.Query("filtro"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(comunas))
}

// GetByID godoc
// @Summary      Obtener instalación por id, con contadores derivados
// @Tags         instalaciones
// @Produce      json
// @Param        id  path  string  true  "id de la instalación"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/instalaciones/{id} [get]
func (h *InstalacionHandler) GetByID(c *fiber.Ctx) error {
	instalacion, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if instalacion == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("instalación no encontrada"))
	}
	return c.JSON(dto.OK(instalacion))
}

// Create godoc
// @Summary      Crear instalación
// @Tags         instalaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInstalacionRequest  true  "datos de la instalación"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Router       /api/instalaciones [post]
func (h *InstalacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInstalacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	instalacion, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(instalacion))
}

// Update godoc
// @Summary      Actualizar instalación
// @Tags         instalaciones
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "id de la instalación"
// @Param        body  body  dto.UpdateInstalacionRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/instalaciones/{id} [put]
func (h *InstalacionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInstalacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	instalacion, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(instalacion))
}

// Desactivar godoc
// @Summary      Desactivar instalación (soft delete, nunca borra la fila)
// @Tags         instalaciones
// @Produce      json
// @Param        id  path  string  true  "id de la instalación"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/instalaciones/{id} [delete]
func (h *InstalacionHandler) Desactivar(c *fiber.Ctx) error {
	if err := h.uc.Desactivar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMessage("instalación desactivada"))
}
