package entity

import "time"

// Estados posibles de un guardia.
const (
	GuardiaActivo   = "Activo"
	GuardiaInactivo = "Inactivo"
)

// Guardia representa un guardia de seguridad de la dotación.
type Guardia struct {
	ID              string
	RUT             string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	Email           string
	Telefono        string
	Comuna          string
	Estado          string // GuardiaActivo | GuardiaInactivo
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NombreCompleto devuelve nombre y apellidos concatenados.
func (g *Guardia) NombreCompleto() string {
	full := g.Nombre
	if g.ApellidoPaterno != "" {
		full += " " + g.ApellidoPaterno
	}
	if g.ApellidoMaterno != "" {
		full += " " + g.ApellidoMaterno
	}
	return full
}
