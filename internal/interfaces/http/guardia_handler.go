package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/application/usecase"
)

// GuardiaHandler expone el CRUD y la búsqueda de guardias.
type GuardiaHandler struct {
	uc *usecase.GuardiaUseCase
}

// NewGuardiaHandler construye el handler de guardias.
func NewGuardiaHandler(uc *usecase.GuardiaUseCase) *GuardiaHandler {
	return &GuardiaHandler{uc: uc}
}

// List godoc
// @Summary      Listar guardias
// @Tags         guardias
// @Produce      json
// @Param        limit   query  int  false  "tope de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/guardias [get]
func (h *GuardiaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	guardias, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(guardias))
}

// Buscar godoc
// @Summary      Buscar guardias activos por RUT o nombre
// @Tags         guardias
// @Produce      json
// @Param        q      query  string  true   "subcadena de RUT o nombre"
// @Param        limit  query  int     false  "tope de filas (default 20, máx 50)"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/guardias/buscar [get]
func (h *GuardiaHandler) Buscar(c *fiber.Ctx) error {
	guardias, err := h.uc.Search(c.Context(), c.Query("q"), c.QueryInt("limit"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(guardias))
}

// GetByID godoc
// @Summary      Obtener guardia por id
// @Tags         guardias
// @Produce      json
// @Param        id  path  string  true  "id del guardia"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/guardias/{id} [get]
func (h *GuardiaHandler) GetByID(c *fiber.Ctx) error {
	guardia, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if guardia == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("guardia no encontrado"))
	}
	return c.JSON(dto.OK(guardia))
}

// Create godoc
// @Summary      Crear guardia
// @Tags         guardias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGuardiaRequest  true  "datos del guardia"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Failure      409  {object}  dto.APIError
// @Router       /api/guardias [post]
func (h *GuardiaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGuardiaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	guardia, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(guardia))
}

// Update godoc
// @Summary      Actualizar guardia (el RUT no es editable)
// @Tags         guardias
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "id del guardia"
// @Param        body  body  dto.UpdateGuardiaRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/guardias/{id} [put]
func (h *GuardiaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGuardiaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	guardia, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(guardia))
}
