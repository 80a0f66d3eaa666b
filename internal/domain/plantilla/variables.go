// Package plantilla contiene la extracción y sustitución de variables
// {{token}} en cuerpos de plantilla. La lista de variables de una plantilla
// es siempre una función pura del cuerpo: se re-deriva en cada edición y
// nunca se edita ni persiste por separado.
package plantilla

import "strings"

const (
	delimAbre   = "{{"
	delimCierra = "}}"
)

// ExtraerVariables recorre el cuerpo y devuelve los tokens {{...}} sin
// duplicados, en orden de primera aparición. Los caracteres del token no
// están restringidos salvo que no pueden contener los delimitadores.
func ExtraerVariables(cuerpo string) []string {
	var tokens []string
	vistos := map[string]bool{}
	resto := cuerpo
	for {
		i := strings.Index(resto, delimAbre)
		if i < 0 {
			break
		}
		resto = resto[i+len(delimAbre):]
		j := strings.Index(resto, delimCierra)
		if j < 0 {
			break
		}
		token := resto[:j]
		resto = resto[j+len(delimCierra):]
		// Un "{{" dentro del token significa que el primer delimitador estaba
		// sin cerrar; el token real comienza en el último "{{".
		if k := strings.LastIndex(token, delimAbre); k >= 0 {
			token = token[k+len(delimAbre):]
		}
		if token == "" || vistos[token] {
			continue
		}
		vistos[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

// Sustituir reemplaza cada {{token}} por su valor en el diccionario.
// Los tokens sin valor quedan tal cual en la salida: un {{token}} literal en
// el documento generado es visible y auditable, blanquearlo escondería datos
// faltantes en un contrato.
func Sustituir(cuerpo string, valores map[string]string) string {
	if len(valores) == 0 {
		return cuerpo
	}
	reemplazos := make([]string, 0, len(valores)*2)
	for _, token := range ExtraerVariables(cuerpo) {
		if v, ok := valores[token]; ok {
			reemplazos = append(reemplazos, delimAbre+token+delimCierra, v)
		}
	}
	return strings.NewReplacer(reemplazos...).Replace(cuerpo)
}
