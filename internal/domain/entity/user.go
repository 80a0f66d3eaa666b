package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin       = "admin"
	RoleOperaciones = "operaciones"
	RoleRRHH        = "rrhh"
)

// User es un usuario interno de la plataforma (back office).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RoleOperaciones | RoleRRHH
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
