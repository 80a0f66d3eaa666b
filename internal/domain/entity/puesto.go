package entity

import "time"

// Estados posibles de un puesto operativo.
const (
	PuestoPendiente = "Pendiente" // PPC: puesto por cubrir
	PuestoCubierto  = "Cubierto"
)

// Jornadas posibles de un puesto.
const (
	JornadaDiurna   = "Día"
	JornadaNocturna = "Noche"
)

// PuestoOperativo representa un puesto de guardia en una instalación.
// Un puesto en Pendiente no tiene guardia asignado; la transición a Cubierto
// exige un guardia y una fecha de inicio efectiva.
type PuestoOperativo struct {
	ID            string
	InstalacionID string
	Rol           string // descriptor del rol, ej. "Guardia Acceso Principal"
	Horario       string // ej. "4x4x12 08:00-20:00"
	Jornada       string // JornadaDiurna | JornadaNocturna
	Estado        string // PuestoPendiente | PuestoCubierto
	GuardiaID     *string
	FechaInicio   *time.Time // inicio efectivo de la asignación vigente
	CreatedAt     time.Time  // se usa para calcular días sin cubrir
	UpdatedAt     time.Time

	// Campos de lectura embebidos desde joins (no se persisten en puestos).
	InstalacionNombre string
	GuardiaNombre     string
	GuardiaRUT        string
}

// DiasSinCubrir devuelve cuántos días lleva abierto el puesto respecto de hoy.
// Solo tiene sentido para puestos en Pendiente.
func (p *PuestoOperativo) DiasSinCubrir(hoy time.Time) int {
	d := int(hoy.Sub(p.CreatedAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// HistorialAsignacion es el registro inmutable de cada asignación o
// desasignación de guardia sobre un puesto.
type HistorialAsignacion struct {
	ID            string
	PuestoID      string
	GuardiaID     string
	FechaInicio   time.Time
	Motivo        string // código de motivo, ej. "asignacion_ppc"
	Observaciones string
	CreatedAt     time.Time
}
