package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrPuestoCubierto      = errors.New("el puesto ya está cubierto")
	ErrGuardiaInactivo     = errors.New("el guardia no está activo")
	ErrFechaPasada         = errors.New("la fecha de inicio no puede ser anterior a hoy")
	ErrVencimientoFaltante = errors.New("el tipo de documento exige fecha de vencimiento")
)

// ErrCamposInvalidos es un error de validación con detalle campo → mensaje,
// para que la capa HTTP pueda pintar errores junto a cada campo.
type ErrCamposInvalidos struct {
	Campos map[string]string
}

func (e *ErrCamposInvalidos) Error() string { return "errores de validación" }
