// Package validacion contiene la validación de campos de Cliente, Instalacion
// y Guardia. Son funciones puras: reciben el candidato (completo o parcial) y
// devuelven un mapa campo → mensaje para que el caller pueda pintar errores
// junto a cada campo del formulario. Un mapa vacío significa válido.
package validacion

import (
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/pkg/rut"
)

var patronEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidarCliente valida un cliente candidato a creación (todos los campos).
func ValidarCliente(c *entity.Cliente) map[string]string {
	errores := map[string]string{}
	validarNombreCliente(errores, c.Nombre)
	validarRUT(errores, "rut", c.RUT)
	if c.RUTRepresentante != "" {
		validarRUT(errores, "rut_representante", c.RUTRepresentante)
	}
	validarEmail(errores, c.Email)
	return errores
}

// ValidarClientePatch valida una actualización parcial: solo los campos
// presentes en el patch.
func ValidarClientePatch(p entity.ClientePatch) map[string]string {
	errores := map[string]string{}
	if p.Nombre != nil {
		validarNombreCliente(errores, *p.Nombre)
	}
	if p.RUT != nil {
		validarRUT(errores, "rut", *p.RUT)
	}
	if p.RUTRepresentante != nil && *p.RUTRepresentante != "" {
		validarRUT(errores, "rut_representante", *p.RUTRepresentante)
	}
	if p.Email != nil {
		validarEmail(errores, *p.Email)
	}
	if p.Estado != nil && *p.Estado != entity.ClienteActivo && *p.Estado != entity.ClienteInactivo {
		errores["estado"] = "estado debe ser Activo o Inactivo"
	}
	return errores
}

// ValidarInstalacion valida una instalación candidata a creación.
func ValidarInstalacion(i *entity.Instalacion) map[string]string {
	errores := map[string]string{}
	if i.Nombre == "" {
		errores["nombre"] = "el nombre es requerido"
	}
	if i.ClienteID == "" {
		errores["cliente_id"] = "el cliente es requerido"
	}
	validarMontoNoNegativo(errores, "valor_turno_extra", i.ValorTurnoExtra)
	return errores
}

// ValidarInstalacionPatch valida una actualización parcial de instalación.
func ValidarInstalacionPatch(p entity.InstalacionPatch) map[string]string {
	errores := map[string]string{}
	if p.Nombre != nil && *p.Nombre == "" {
		errores["nombre"] = "el nombre es requerido"
	}
	if p.ValorTurnoExtra != nil {
		validarMontoNoNegativo(errores, "valor_turno_extra", *p.ValorTurnoExtra)
	}
	if p.Estado != nil && *p.Estado != entity.InstalacionActiva && *p.Estado != entity.InstalacionInactiva {
		errores["estado"] = "estado debe ser Activo o Inactivo"
	}
	return errores
}

// ValidarGuardia valida un guardia candidato a creación.
func ValidarGuardia(g *entity.Guardia) map[string]string {
	errores := map[string]string{}
	if g.Nombre == "" {
		errores["nombre"] = "el nombre es requerido"
	}
	validarRUT(errores, "rut", g.RUT)
	validarEmail(errores, g.Email)
	return errores
}

// ── reglas por campo ──────────────────────────────────────────────────────────

func validarNombreCliente(errores map[string]string, nombre string) {
	n := utf8.RuneCountInString(nombre)
	if n < 2 || n > 100 {
		errores["nombre"] = "el nombre debe tener entre 2 y 100 caracteres"
	}
}

func validarRUT(errores map[string]string, campo, valor string) {
	if !rut.TieneFormatoValido(valor) {
		errores[campo] = "RUT inválido: formato esperado 12345678-9 (dígito verificador puede ser K)"
	}
}

// validarEmail solo valida cuando el email viene no vacío: es opcional.
func validarEmail(errores map[string]string, email string) {
	if email != "" && !patronEmail.MatchString(email) {
		errores["email"] = "email inválido"
	}
}

func validarMontoNoNegativo(errores map[string]string, campo string, monto decimal.Decimal) {
	if monto.IsNegative() {
		errores[campo] = "el valor no puede ser negativo"
	}
}
