// Package texto ofrece normalización de texto para búsquedas y filtros:
// comparaciones insensibles a mayúsculas y tildes ("penalolen" encuentra
// "Peñalolén").
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var plegador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Plegar normaliza un string para comparación: minúsculas y sin marcas
// diacríticas (tildes, diéresis). La ñ pliega a n, así "Nunoa" encuentra
// "Ñuñoa".
func Plegar(s string) string {
	out, _, err := transform.String(plegador, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Contiene indica si base contiene a busqueda, comparando plegado.
func Contiene(base, busqueda string) bool {
	if busqueda == "" {
		return true
	}
	return strings.Contains(Plegar(base), Plegar(busqueda))
}
