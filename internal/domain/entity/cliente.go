package entity

import "time"

// Estados posibles de un cliente.
const (
	ClienteActivo   = "Activo"
	ClienteInactivo = "Inactivo"
)

// Cliente representa una empresa mandante que contrata servicios de guardias.
type Cliente struct {
	ID                 string
	Nombre             string
	RUT                string // RUT de la empresa, formato 76123456-7
	RazonSocial        string
	RepresentanteLegal string
	RUTRepresentante   string
	Email              string
	Telefono           string
	Direccion          string
	Latitud            *float64
	Longitud           *float64
	Estado             string // ClienteActivo | ClienteInactivo
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
