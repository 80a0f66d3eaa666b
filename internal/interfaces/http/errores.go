package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
)

// responderError mapea los errores de dominio al status HTTP y al envoltorio
// {success:false, error}. Los handlers tratan primero sus errores propios
// (p.ej. desactivación bloqueada) y delegan el resto acá.
func responderError(c *fiber.Ctx, err error) error {
	var campos *domain.ErrCamposInvalidos
	if errors.As(err, &campos) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(campos.Campos))
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err(err.Error()))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Err(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err(err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Err(err.Error()))
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrPuestoCubierto),
		errors.Is(err, domain.ErrGuardiaInactivo),
		errors.Is(err, domain.ErrFechaPasada),
		errors.Is(err, domain.ErrVencimientoFaltante):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err(err.Error()))
	default:
		// El detalle queda en el log del servidor; al cliente solo le llega
		// un mensaje genérico.
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("error interno"))
	}
}

// esErrorDeDominio reporta si el error tiene un mapeo propio distinto del 500
// genérico.
func esErrorDeDominio(err error) bool {
	var campos *domain.ErrCamposInvalidos
	if errors.As(err, &campos) {
		return true
	}
	for _, sentinela := range []error{
		domain.ErrNotFound, domain.ErrUserNotFound, domain.ErrDuplicate,
		domain.ErrEmailAlreadyExists, domain.ErrUnauthorized, domain.ErrForbidden,
		domain.ErrInvalidInput, domain.ErrConflict, domain.ErrPuestoCubierto,
		domain.ErrGuardiaInactivo, domain.ErrFechaPasada, domain.ErrVencimientoFaltante,
	} {
		if errors.Is(err, sentinela) {
			return true
		}
	}
	return false
}
