package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/application/usecase"
)

// DashboardHandler expone los KPI operacionales.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// KPIs godoc
// @Summary      KPI globales y por instalación, derivados por agregación
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	kpis, err := h.uc.KPIs(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(kpis))
}
