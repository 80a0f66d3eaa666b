// Package documento contiene la lógica de vigencia de documentos: la banda
// de estado (vigente / por vencer / vencido) es una función pura de la fecha
// de vencimiento y de "hoy". Se recalcula en cada lectura y nunca se
// persiste, porque "hoy" cambia todos los días.
package documento

import (
	"fmt"
	"math"
	"time"
)

// Severidad de la banda de vigencia.
type Severidad string

const (
	SeveridadCritica     Severidad = "critica"     // vencido o vence hoy
	SeveridadAlta        Severidad = "alta"        // vence mañana
	SeveridadPorVencer   Severidad = "por_vencer"  // vence dentro de 2 a 7 días
	SeveridadAdvertencia Severidad = "advertencia" // vence dentro de 8 a 30 días
	SeveridadVigente     Severidad = "vigente"     // más de 30 días
)

// Banda es el resultado de clasificar una fecha de vencimiento.
type Banda struct {
	Etiqueta      string
	Severidad     Severidad
	DiasRestantes int
}

// DiasRestantes calcula los días entre hoy y el vencimiento con resolución
// de día completo y redondeo hacia arriba: un vencimiento mañana a cualquier
// hora cuenta como 1 día restante. Negativo si ya venció.
func DiasRestantes(vencimiento, hoy time.Time) int {
	return int(math.Ceil(vencimiento.Sub(hoy).Hours() / 24))
}

// EstadoVigencia clasifica la fecha de vencimiento en su banda. Las bandas
// particionan la recta de días sin huecos:
//
//	d < 0      → Vencido hace N días   (critica)
//	d = 0      → Vence hoy             (critica)
//	d = 1      → Vence mañana          (alta)
//	2 ≤ d ≤ 7  → Vence en N días       (por_vencer)
//	8 ≤ d ≤ 30 → Vence en N días       (advertencia)
//	d > 30     → Vigente               (vigente)
func EstadoVigencia(vencimiento, hoy time.Time) Banda {
	d := DiasRestantes(vencimiento, hoy)
	switch {
	case d < 0:
		return Banda{Etiqueta: fmt.Sprintf("Vencido hace %d días", -d), Severidad: SeveridadCritica, DiasRestantes: d}
	case d == 0:
		return Banda{Etiqueta: "Vence hoy", Severidad: SeveridadCritica, DiasRestantes: d}
	case d == 1:
		return Banda{Etiqueta: "Vence mañana", Severidad: SeveridadAlta, DiasRestantes: d}
	case d <= 7:
		return Banda{Etiqueta: fmt.Sprintf("Vence en %d días", d), Severidad: SeveridadPorVencer, DiasRestantes: d}
	case d <= 30:
		return Banda{Etiqueta: fmt.Sprintf("Vence en %d días", d), Severidad: SeveridadAdvertencia, DiasRestantes: d}
	default:
		return Banda{Etiqueta: "Vigente", Severidad: SeveridadVigente, DiasRestantes: d}
	}
}
