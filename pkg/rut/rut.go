// Package rut contiene utilidades para el RUT chileno (Rol Único Tributario):
// verificación de formato, cálculo y validación del dígito verificador
// (módulo 11) y formateo con puntos y guión.
package rut

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// patronRUT es el formato mínimo aceptado por los formularios: dígitos,
// guión y un dígito verificador que puede ser número o K.
var patronRUT = regexp.MustCompile(`^\d+-[\dkK]$`)

// TieneFormatoValido indica si el string cumple el patrón dígitos-"-"-(dígito|k|K).
// No valida el dígito verificador; para eso usar ValidarDigitoVerificador.
func TieneFormatoValido(rut string) bool {
	return patronRUT.MatchString(rut)
}

// DigitoVerificador calcula el dígito verificador módulo 11 para el cuerpo del RUT.
// El cuerpo puede venir con puntos o guión; se ignoran los no-dígitos.
// Retorna '0'-'9' o 'K'.
func DigitoVerificador(cuerpo string) (byte, error) {
	digitos := extraerDigitos(cuerpo)
	if len(digitos) == 0 {
		return 0, fmt.Errorf("rut: cuerpo sin dígitos")
	}
	var suma, factor int
	factor = 2
	for i := len(digitos) - 1; i >= 0; i-- {
		suma += int(digitos[i]-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	resto := 11 - (suma % 11)
	switch resto {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + resto), nil
	}
}

// ValidarDigitoVerificador valida que el RUT completo (cuerpo-dv) tenga un
// dígito verificador correcto según módulo 11. Acepta puntos en el cuerpo.
func ValidarDigitoVerificador(rut string) error {
	limpio := strings.ReplaceAll(strings.TrimSpace(rut), ".", "")
	partes := strings.Split(limpio, "-")
	if len(partes) != 2 || partes[1] == "" {
		return fmt.Errorf("rut: formato esperado cuerpo-dv, recibido %q", rut)
	}
	esperado, err := DigitoVerificador(partes[0])
	if err != nil {
		return err
	}
	recibido := byte(unicode.ToUpper(rune(partes[1][0])))
	if len(partes[1]) != 1 || recibido != esperado {
		return fmt.Errorf("rut: dígito verificador inválido: esperado %c, recibido %s", esperado, partes[1])
	}
	return nil
}

// Formatear devuelve el RUT con puntos de miles y guión: 76123456-7 -> 76.123.456-7.
// Si el formato de entrada no es reconocible, devuelve el valor original.
func Formatear(rut string) string {
	limpio := strings.ReplaceAll(strings.TrimSpace(rut), ".", "")
	partes := strings.Split(limpio, "-")
	if len(partes) != 2 {
		return rut
	}
	cuerpo, dv := partes[0], strings.ToUpper(partes[1])
	var b strings.Builder
	for i, c := range cuerpo {
		resto := len(cuerpo) - i
		if i > 0 && resto%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	return b.String() + "-" + dv
}

func extraerDigitos(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
