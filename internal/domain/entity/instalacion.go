package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de una instalación.
const (
	InstalacionActiva   = "Activo"
	InstalacionInactiva = "Inactivo"
)

// Instalacion representa un recinto físico de un cliente dotado con guardias.
// Los contadores operacionales (guardias asignados, puestos cubiertos, PPC
// pendientes) son derivados: se calculan al leer desde los puestos, nunca se
// escriben directamente.
type Instalacion struct {
	ID              string
	ClienteID       string
	Nombre          string
	Direccion       string
	Latitud         *float64
	Longitud        *float64
	Ciudad          string
	Comuna          string
	Region          string
	ValorTurnoExtra decimal.Decimal
	Estado          string // InstalacionActiva | InstalacionInactiva
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ContadoresInstalacion son los contadores operacionales derivados de una
// instalación, calculados por agregación al momento de la lectura.
type ContadoresInstalacion struct {
	GuardiasAsignados int
	PuestosCubiertos  int
	PuestosPendientes int // PPC abiertos
}
