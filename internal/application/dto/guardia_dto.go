package dto

import "time"

// CreateGuardiaRequest entrada para crear un guardia.
type CreateGuardiaRequest struct {
	RUT             string `json:"rut"`
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	Email           string `json:"email"`
	Telefono        string `json:"telefono"`
	Comuna          string `json:"comuna"`
}

// UpdateGuardiaRequest actualización parcial de un guardia.
type UpdateGuardiaRequest struct {
	Nombre          *string `json:"nombre"`
	ApellidoPaterno *string `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	Email           *string `json:"email"`
	Telefono        *string `json:"telefono"`
	Comuna          *string `json:"comuna"`
	Estado          *string `json:"estado"`
}

// GuardiaResponse salida de un guardia.
type GuardiaResponse struct {
	ID              string    `json:"id"`
	RUT             string    `json:"rut"`
	Nombre          string    `json:"nombre"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	ApellidoMaterno string    `json:"apellido_materno"`
	NombreCompleto  string    `json:"nombre_completo"`
	Email           string    `json:"email"`
	Telefono        string    `json:"telefono"`
	Comuna          string    `json:"comuna"`
	Estado          string    `json:"estado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
