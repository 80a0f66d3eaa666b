package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/application/usecase"
)

// PlantillaHandler expone el CRUD de plantillas, el catálogo de variables y el
// renderizado (texto y PDF).
type PlantillaHandler struct {
	uc *usecase.PlantillaUseCase
}

// NewPlantillaHandler construye el handler de plantillas.
func NewPlantillaHandler(uc *usecase.PlantillaUseCase) *PlantillaHandler {
	return &PlantillaHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantillas
// @Tags         plantillas
// @Produce      json
// @Param        limit   query  int  false  "tope de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/plantillas [get]
func (h *PlantillaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	plantillas, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(plantillas))
}

// Catalogo godoc
// @Summary      Catálogo fijo de variables disponibles
// @Tags         plantillas
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/plantillas/variables [get]
func (h *PlantillaHandler) Catalogo(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.uc.Catalogo()))
}

// GetByID godoc
// @Summary      Obtener plantilla por id, con variables derivadas del cuerpo
// @Tags         plantillas
// @Produce      json
// @Param        id  path  string  true  "id de la plantilla"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/plantillas/{id} [get]
func (h *PlantillaHandler) GetByID(c *fiber.Ctx) error {
	plantilla, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if plantilla == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("plantilla no encontrada"))
	}
	return c.JSON(dto.OK(plantilla))
}

// Create godoc
// @Summary      Crear plantilla
// @Tags         plantillas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlantillaRequest  true  "nombre y cuerpo"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Router       /api/plantillas [post]
func (h *PlantillaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlantillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	plantilla, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(plantilla))
}

// Update godoc
// @Summary      Actualizar plantilla (re-deriva variables si cambia el cuerpo)
// @Tags         plantillas
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "id de la plantilla"
// @Param        body  body  dto.UpdatePlantillaRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/plantillas/{id} [put]
func (h *PlantillaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlantillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	plantilla, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(plantilla))
}

// Delete godoc
// @Summary      Eliminar plantilla
// @Tags         plantillas
// @Produce      json
// @Param        id  path  string  true  "id de la plantilla"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/plantillas/{id} [delete]
func (h *PlantillaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMessage("plantilla eliminada"))
}

// Render godoc
// @Summary      Renderizar plantilla contra guardia, cliente e instalación
// @Tags         plantillas
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "id de la plantilla"
// @Param        body  body  dto.RenderPlantillaRequest  true  "entidades y extras para el diccionario"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/plantillas/{id}/render [post]
func (h *PlantillaHandler) Render(c *fiber.Ctx) error {
	var in dto.RenderPlantillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.Render(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// RenderPDF godoc
// @Summary      Renderizar plantilla y devolver el PDF
// @Tags         plantillas
// @Accept       json
// @Produce      application/pdf
// @Param        id    path  string                      true  "id de la plantilla"
// @Param        body  body  dto.RenderPlantillaRequest  true  "entidades y extras para el diccionario"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.APIError
// @Router       /api/plantillas/{id}/render-pdf [post]
func (h *PlantillaHandler) RenderPDF(c *fiber.Ctx) error {
	var in dto.RenderPlantillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	nombre, pdfBytes, err := h.uc.RenderPDF(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`.pdf"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
