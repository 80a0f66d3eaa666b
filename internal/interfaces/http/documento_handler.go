package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/application/usecase"
)

// DocumentoHandler expone la subida, descarga y catálogo de documentos.
type DocumentoHandler struct {
	uc *usecase.DocumentoUseCase
}

// NewDocumentoHandler construye el handler de documentos.
func NewDocumentoHandler(uc *usecase.DocumentoUseCase) *DocumentoHandler {
	return &DocumentoHandler{uc: uc}
}

// Subir godoc
// @Summary      Subir un documento (multipart)
// @Tags         documentos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file               formData  file    true   "archivo"
// @Param        modulo             formData  string  true   "clientes | instalaciones | guardias"
// @Param        entidad_id         formData  string  true   "id de la entidad dueña"
// @Param        tipo_documento_id  formData  string  true   "tipo del catálogo"
// @Param        nombre             formData  string  false  "nombre visible (default: nombre del archivo)"
// @Param        fecha_vencimiento  formData  string  false  "YYYY-MM-DD, obligatoria si el tipo la exige"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Router       /api/documentos [post]
func (h *DocumentoHandler) Subir(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{"file": "el archivo es requerido"}))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("no se pudo leer el archivo subido"))
	}
	defer file.Close()

	in := usecase.SubirDocumentoInput{
		Modulo:          c.FormValue("modulo"),
		EntidadID:       c.FormValue("entidad_id"),
		Nombre:          c.FormValue("nombre"),
		TipoDocumentoID: c.FormValue("tipo_documento_id"),
		Contenido:       file,
	}
	if in.Nombre == "" {
		in.Nombre = fileHeader.Filename
	}
	if v := c.FormValue("fecha_vencimiento"); v != "" {
		fecha, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{"fecha_vencimiento": "formato esperado YYYY-MM-DD"}))
		}
		in.FechaVencimiento = &fecha
	}

	doc, err := h.uc.Subir(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(doc))
}

// List godoc
// @Summary      Listar documentos de una entidad, con vigencia derivada
// @Tags         documentos
// @Produce      json
// @Param        modulo      query  string  true  "clientes | instalaciones | guardias"
// @Param        entidad_id  query  string  true  "id de la entidad dueña"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/documentos [get]
func (h *DocumentoHandler) List(c *fiber.Ctx) error {
	modulo, entidadID := c.Query("modulo"), c.Query("entidad_id")
	if modulo == "" || entidadID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{
			"modulo":     "requerido",
			"entidad_id": "requerido",
		}))
	}
	docs, err := h.uc.ListByEntidad(modulo, entidadID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(docs))
}

// Descargar godoc
// @Summary      Descargar el archivo de un documento
// @Tags         documentos
// @Produce      application/octet-stream
// @Param        id  path  string  true  "id del documento"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.APIError
// @Router       /api/documentos/{id}/descargar [get]
func (h *DocumentoHandler) Descargar(c *fiber.Ctx) error {
	doc, contenido, err := h.uc.Descargar(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	// fasthttp cierra el stream al terminar de escribir la respuesta.
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Nombre+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.SendStream(contenido, int(doc.TamanoBytes))
}

// Delete godoc
// @Summary      Eliminar un documento y su archivo
// @Tags         documentos
// @Produce      json
// @Param        id  path  string  true  "id del documento"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/documentos/{id} [delete]
func (h *DocumentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMessage("documento eliminado"))
}

// Tipos godoc
// @Summary      Catálogo de tipos de documento por módulo
// @Tags         documentos
// @Produce      json
// @Param        modulo  query  string  true  "clientes | instalaciones | guardias"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/tipos-documento [get]
func (h *DocumentoHandler) Tipos(c *fiber.Ctx) error {
	tipos, err := h.uc.ListTipos(c.Query("modulo"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(tipos))
}
