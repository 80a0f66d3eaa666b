package dto

import "time"

// CreateClienteRequest entrada para crear un cliente.
type CreateClienteRequest struct {
	Nombre             string   `json:"nombre"`
	RUT                string   `json:"rut"`
	RazonSocial        string   `json:"razon_social"`
	RepresentanteLegal string   `json:"representante_legal"`
	RUTRepresentante   string   `json:"rut_representante"`
	Email              string   `json:"email"`
	Telefono           string   `json:"telefono"`
	Direccion          string   `json:"direccion"`
	Latitud            *float64 `json:"latitud"`
	Longitud           *float64 `json:"longitud"`
}

// UpdateClienteRequest actualización parcial: el id viaja en el cuerpo y solo
// los campos presentes se escriben.
type UpdateClienteRequest struct {
	ID                 string   `json:"id"`
	Nombre             *string  `json:"nombre"`
	RUT                *string  `json:"rut"`
	RazonSocial        *string  `json:"razon_social"`
	RepresentanteLegal *string  `json:"representante_legal"`
	RUTRepresentante   *string  `json:"rut_representante"`
	Email              *string  `json:"email"`
	Telefono           *string  `json:"telefono"`
	Direccion          *string  `json:"direccion"`
	Latitud            *float64 `json:"latitud"`
	Longitud           *float64 `json:"longitud"`
	Estado             *string  `json:"estado"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID                 string    `json:"id"`
	Nombre             string    `json:"nombre"`
	RUT                string    `json:"rut"`
	RazonSocial        string    `json:"razon_social"`
	RepresentanteLegal string    `json:"representante_legal"`
	RUTRepresentante   string    `json:"rut_representante"`
	Email              string    `json:"email"`
	Telefono           string    `json:"telefono"`
	Direccion          string    `json:"direccion"`
	Latitud            *float64  `json:"latitud,omitempty"`
	Longitud           *float64  `json:"longitud,omitempty"`
	Estado             string    `json:"estado"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// InstalacionResumen resumen de instalación para el detalle de bloqueo.
type InstalacionResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Estado string `json:"estado"`
}

// BloqueoDesactivacion es el cuerpo 400 cuando no se puede desactivar un
// cliente: el caller recibe AMBAS particiones para poder explicar qué
// instalaciones bloquean y cuáles ya están inactivas.
type BloqueoDesactivacion struct {
	Success                bool                 `json:"success"`
	Error                  string               `json:"error"`
	InstalacionesActivas   []InstalacionResumen `json:"instalacionesActivas"`
	InstalacionesInactivas []InstalacionResumen `json:"instalacionesInactivas"`
	ClienteID              string               `json:"clienteId"`
}
