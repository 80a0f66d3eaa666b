package usecase

import (
	"context"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

// DashboardUseCase arma los KPI operacionales del dashboard. Todos los
// números se derivan por agregación al momento de la consulta.
type DashboardUseCase struct {
	kpiRepo repository.KPIRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(kpiRepo repository.KPIRepository) *DashboardUseCase {
	return &DashboardUseCase{kpiRepo: kpiRepo}
}

// KPIs devuelve el resumen global y el desglose por instalación activa.
func (uc *DashboardUseCase) KPIs(ctx context.Context) (*dto.DashboardKPIResponse, error) {
	filas, err := uc.kpiRepo.ResumenInstalaciones(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.DashboardKPIResponse{
		PorInstalacion: make([]dto.InstalacionKPIResponse, 0, len(filas)),
	}
	for _, f := range filas {
		resp.TotalGuardiasAsignados += f.Contadores.GuardiasAsignados
		resp.TotalPuestosCubiertos += f.Contadores.PuestosCubiertos
		resp.TotalPPC += f.Contadores.PuestosPendientes
		resp.PorInstalacion = append(resp.PorInstalacion, dto.InstalacionKPIResponse{
			InstalacionID:     f.InstalacionID,
			InstalacionNombre: f.InstalacionNombre,
			GuardiasAsignados: f.Contadores.GuardiasAsignados,
			PuestosCubiertos:  f.Contadores.PuestosCubiertos,
			PuestosPendientes: f.Contadores.PuestosPendientes,
		})
	}
	return resp, nil
}
