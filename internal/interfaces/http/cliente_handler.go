package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/application/usecase"
	"github.com/gardops/gardops-api/internal/domain/entity"
)

// ClienteHandler expone el CRUD de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler de clientes.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Param        limit   query  int  false  "tope de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	clientes, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(clientes))
}

// GetByID godoc
// @Summary      Obtener cliente por id
// @Tags         clientes
// @Produce      json
// @Param        id  path  string  true  "id del cliente"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	cliente, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if cliente == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("cliente no encontrado"))
	}
	return c.JSON(dto.OK(cliente))
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "datos del cliente"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Failure      409  {object}  dto.APIError
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	cliente, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(cliente))
}

// Update godoc
// @Summary      Actualizar cliente (id en el cuerpo)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateClienteRequest  true  "campos a actualizar, id incluido"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.BloqueoDesactivacion
// @Failure      404  {object}  dto.APIError
// @Router       /api/clientes [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	if in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{"id": "el id es requerido en el cuerpo"}))
	}
	cliente, err := h.uc.Update(in)
	if err != nil {
		var bloqueo *usecase.ErrDesactivacionBloqueada
		if errors.As(err, &bloqueo) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.BloqueoDesactivacion{
				Success:                false,
				Error:                  bloqueo.Error(),
				InstalacionesActivas:   toInstalacionResumen(bloqueo.Activas),
				InstalacionesInactivas: toInstalacionResumen(bloqueo.Inactivas),
				ClienteID:              bloqueo.ClienteID,
			})
		}
		return responderError(c, err)
	}
	return c.JSON(dto.OK(cliente))
}

// Delete godoc
// @Summary      Eliminar cliente (borrado duro, id por query)
// @Tags         clientes
// @Produce      json
// @Param        id  query  string  true  "id del cliente"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/clientes [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{"id": "el id es requerido como query param"}))
	}
	if err := h.uc.Delete(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMessage("cliente eliminado"))
}

func toInstalacionResumen(instalaciones []*entity.Instalacion) []dto.InstalacionResumen {
	out := make([]dto.InstalacionResumen, 0, len(instalaciones))
	for _, i := range instalaciones {
		out = append(out, dto.InstalacionResumen{ID: i.ID, Nombre: i.Nombre, Estado: i.Estado})
	}
	return out
}
