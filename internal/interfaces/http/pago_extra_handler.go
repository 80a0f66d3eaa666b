package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/application/usecase"
)

// PagoExtraHandler expone haberes y descuentos por guardia y período.
type PagoExtraHandler struct {
	uc *usecase.PagoExtraUseCase
}

// NewPagoExtraHandler construye el handler de pagos extra.
func NewPagoExtraHandler(uc *usecase.PagoExtraUseCase) *PagoExtraHandler {
	return &PagoExtraHandler{uc: uc}
}

// List godoc
// @Summary      Listar pagos extra de un guardia
// @Tags         pagos-extra
// @Produce      json
// @Param        guardia_id  query  string  true   "id del guardia"
// @Param        periodo     query  string  false  "período YYYY-MM"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/pagos-extra [get]
func (h *PagoExtraHandler) List(c *fiber.Ctx) error {
	guardiaID := c.Query("guardia_id")
	if guardiaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{"guardia_id": "requerido"}))
	}
	pagos, err := h.uc.ListByGuardia(guardiaID, c.Query("periodo"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(pagos))
}

// Create godoc
// @Summary      Crear haber o descuento
// @Tags         pagos-extra
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePagoExtraRequest  true  "tipo, glosa, monto y período"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Router       /api/pagos-extra [post]
func (h *PagoExtraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePagoExtraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	pago, err := h.uc.Create(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(pago))
}

// Update godoc
// @Summary      Actualizar glosa, monto o período (tipo y guardia no cambian)
// @Tags         pagos-extra
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "id del pago"
// @Param        body  body  dto.UpdatePagoExtraRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/pagos-extra/{id} [put]
func (h *PagoExtraHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePagoExtraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	pago, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(pago))
}

// Delete godoc
// @Summary      Eliminar pago extra
// @Tags         pagos-extra
// @Produce      json
// @Param        id  path  string  true  "id del pago"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIError
// @Router       /api/pagos-extra/{id} [delete]
func (h *PagoExtraHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMessage("pago extra eliminado"))
}
