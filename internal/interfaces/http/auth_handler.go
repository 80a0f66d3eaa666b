package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/auth"
	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
)

// AuthHandler maneja registro y login de usuarios internos.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario interno
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name, role"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIError
// @Failure      409  {object}  dto.APIError
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{
			"email":    "requerido",
			"password": "requerido",
		}))
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{
			"password": "debe tener al menos 8 caracteres",
		}))
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(user))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200  {object}  dto.APIResponse
// @Failure      401  {object}  dto.APIError
// @Failure      403  {object}  dto.APIError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrValidacion(map[string]string{
			"email":    "requerido",
			"password": "requerido",
		}))
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// No filtrar si el email existe o no: ambos casos responden 401.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("credenciales inválidas"))
		}
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}
