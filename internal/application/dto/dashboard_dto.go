package dto

// InstalacionKPIResponse fila de KPI por instalación, derivada por agregación.
type InstalacionKPIResponse struct {
	InstalacionID     string `json:"instalacion_id"`
	InstalacionNombre string `json:"instalacion_nombre"`
	GuardiasAsignados int    `json:"guardias_asignados"`
	PuestosCubiertos  int    `json:"puestos_cubiertos"`
	PuestosPendientes int    `json:"ppc"`
}

// DashboardKPIResponse resumen global del dashboard operacional.
type DashboardKPIResponse struct {
	TotalGuardiasAsignados int                      `json:"total_guardias_asignados"`
	TotalPuestosCubiertos  int                      `json:"total_puestos_cubiertos"`
	TotalPPC               int                      `json:"total_ppc"`
	PorInstalacion         []InstalacionKPIResponse `json:"por_instalacion"`
}
