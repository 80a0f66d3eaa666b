package dto

import "time"

// PPCResponse fila de un puesto por cubrir con campos de instalación, rol y
// guardia embebidos.
type PPCResponse struct {
	ID                string     `json:"id"`
	InstalacionID     string     `json:"instalacion_id"`
	InstalacionNombre string     `json:"instalacion_nombre"`
	Rol               string     `json:"rol"`
	Horario           string     `json:"horario"`
	Jornada           string     `json:"jornada"`
	Estado            string     `json:"estado"`
	GuardiaID         *string    `json:"guardia_id,omitempty"`
	GuardiaNombre     string     `json:"guardia_nombre,omitempty"`
	GuardiaRUT        string     `json:"guardia_rut,omitempty"`
	FechaInicio       *time.Time `json:"fecha_inicio,omitempty"`
	DiasSinCubrir     int        `json:"dias_sin_cubrir"`
	CreatedAt         time.Time  `json:"created_at"`
}

// AsignarSimpleRequest cuerpo de POST /api/ppc/asignar-simple.
type AsignarSimpleRequest struct {
	GuardiaID         string `json:"guardia_id"`
	PuestoOperativoID string `json:"puesto_operativo_id"`
	FechaInicio       string `json:"fecha_inicio"` // YYYY-MM-DD
	MotivoInicio      string `json:"motivo_inicio"`
	Observaciones     string `json:"observaciones"`
}

// ConfirmacionAsignacion payload de confirmación tras una asignación exitosa.
// El RUT y nombre del guardia salen de la lista de candidatos, no de la
// respuesta del commit.
type ConfirmacionAsignacion struct {
	GuardiaNombre     string `json:"guardia_nombre"`
	GuardiaRUT        string `json:"guardia_rut"`
	InstalacionNombre string `json:"instalacion_nombre"`
	Rol               string `json:"rol"`
	Horario           string `json:"horario"`
	FechaInicio       string `json:"fecha_inicio"`
}

// ResumenPPC agregados del listado de PPC, recalculados filtrando la lista
// refrescada (solo ítems en Pendiente), no leídos pre-agregados.
type ResumenPPC struct {
	TotalPendientes int            `json:"total_pendientes"`
	PorInstalacion  map[string]int `json:"por_instalacion"`
	PorRol          map[string]int `json:"por_rol"`
}

// AsignacionResponse respuesta completa de asignar-simple: confirmación más
// los KPI recalculados sobre la lista refrescada.
type AsignacionResponse struct {
	Confirmacion ConfirmacionAsignacion `json:"confirmacion"`
	Resumen      ResumenPPC             `json:"resumen"`
}

// DesasignarRequest cuerpo de POST /api/ppc/{id}/desasignar.
type DesasignarRequest struct {
	Observaciones string `json:"observaciones"`
}

// HistorialResponse fila del historial de asignaciones de un puesto.
type HistorialResponse struct {
	ID            string    `json:"id"`
	PuestoID      string    `json:"puesto_id"`
	GuardiaID     string    `json:"guardia_id"`
	FechaInicio   time.Time `json:"fecha_inicio"`
	Motivo        string    `json:"motivo"`
	Observaciones string    `json:"observaciones"`
	CreatedAt     time.Time `json:"created_at"`
}
