package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInstalacionRequest entrada para crear una instalación.
type CreateInstalacionRequest struct {
	ClienteID       string           `json:"cliente_id"`
	Nombre          string           `json:"nombre"`
	Direccion       string           `json:"direccion"`
	Latitud         *float64         `json:"latitud"`
	Longitud        *float64         `json:"longitud"`
	Ciudad          string           `json:"ciudad"`
	Comuna          string           `json:"comuna"`
	Region          string           `json:"region"`
	ValorTurnoExtra *decimal.Decimal `json:"valor_turno_extra"`
}

// UpdateInstalacionRequest actualización parcial de una instalación.
type UpdateInstalacionRequest struct {
	Nombre          *string          `json:"nombre"`
	Direccion       *string          `json:"direccion"`
	Latitud         *float64         `json:"latitud"`
	Longitud        *float64         `json:"longitud"`
	Ciudad          *string          `json:"ciudad"`
	Comuna          *string          `json:"comuna"`
	Region          *string          `json:"region"`
	ValorTurnoExtra *decimal.Decimal `json:"valor_turno_extra"`
	Estado          *string          `json:"estado"`
}

// ContadoresResponse contadores operacionales derivados (solo lectura).
type ContadoresResponse struct {
	GuardiasAsignados int `json:"guardias_asignados"`
	PuestosCubiertos  int `json:"puestos_cubiertos"`
	PuestosPendientes int `json:"ppc"`
}

// InstalacionResponse salida de una instalación con sus contadores derivados.
type InstalacionResponse struct {
	ID              string              `json:"id"`
	ClienteID       string              `json:"cliente_id"`
	Nombre          string              `json:"nombre"`
	Direccion       string              `json:"direccion"`
	Latitud         *float64            `json:"latitud,omitempty"`
	Longitud        *float64            `json:"longitud,omitempty"`
	Ciudad          string              `json:"ciudad"`
	Comuna          string              `json:"comuna"`
	Region          string              `json:"region"`
	ValorTurnoExtra decimal.Decimal     `json:"valor_turno_extra"`
	Estado          string              `json:"estado"`
	Contadores      *ContadoresResponse `json:"contadores,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
