package documento_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardops/gardops-api/internal/domain/documento"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var hoy = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

// venceEn devuelve una fecha de vencimiento a d días de hoy (d puede ser negativo).
func venceEn(d int) time.Time {
	return hoy.AddDate(0, 0, d)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bandas en los bordes exactos: -1, 0, 1, 2, 7, 8, 30, 31
// ──────────────────────────────────────────────────────────────────────────────

func TestEstadoVigencia_VencidoAyer(t *testing.T) {
	b := documento.EstadoVigencia(venceEn(-1), hoy)
	assert.Equal(t, documento.SeveridadCritica, b.Severidad)
	assert.Equal(t, "Vencido hace 1 días", b.Etiqueta)
	assert.Equal(t, -1, b.DiasRestantes)
}

func TestEstadoVigencia_VenceHoy(t *testing.T) {
	b := documento.EstadoVigencia(venceEn(0), hoy)
	assert.Equal(t, documento.SeveridadCritica, b.Severidad)
	assert.Equal(t, "Vence hoy", b.Etiqueta)
}

func TestEstadoVigencia_VenceManana(t *testing.T) {
	b := documento.EstadoVigencia(venceEn(1), hoy)
	assert.Equal(t, documento.SeveridadAlta, b.Severidad)
	assert.Equal(t, "Vence mañana", b.Etiqueta)
}

func TestEstadoVigencia_BordesPorVencer(t *testing.T) {
	// 2 y 7 son los extremos de la banda por_vencer.
	for _, d := range []int{2, 7} {
		b := documento.EstadoVigencia(venceEn(d), hoy)
		assert.Equal(t, documento.SeveridadPorVencer, b.Severidad, "d=%d", d)
		assert.Equal(t, fmt.Sprintf("Vence en %d días", d), b.Etiqueta)
	}
}

func TestEstadoVigencia_BordesAdvertencia(t *testing.T) {
	// 8 y 30 son los extremos de la banda advertencia.
	for _, d := range []int{8, 30} {
		b := documento.EstadoVigencia(venceEn(d), hoy)
		assert.Equal(t, documento.SeveridadAdvertencia, b.Severidad, "d=%d", d)
	}
}

func TestEstadoVigencia_VigenteDesde31(t *testing.T) {
	b := documento.EstadoVigencia(venceEn(31), hoy)
	assert.Equal(t, documento.SeveridadVigente, b.Severidad)
	assert.Equal(t, "Vigente", b.Etiqueta)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totalidad: las bandas particionan la recta de días sin huecos ni traslapes
// ──────────────────────────────────────────────────────────────────────────────

func TestEstadoVigencia_TotalSinHuecos(t *testing.T) {
	// Para cada día en un rango amplio, exactamente una severidad aplica.
	for d := -400; d <= 400; d++ {
		b := documento.EstadoVigencia(venceEn(d), hoy)
		require.NotEmpty(t, b.Severidad, "d=%d debe caer en alguna banda", d)
		require.NotEmpty(t, b.Etiqueta, "d=%d debe tener etiqueta", d)
		require.Equal(t, d, b.DiasRestantes, "d=%d días restantes inconsistentes", d)
	}
}

func TestEstadoVigencia_Idempotente(t *testing.T) {
	v := venceEn(15)
	b1 := documento.EstadoVigencia(v, hoy)
	b2 := documento.EstadoVigencia(v, hoy)
	assert.Equal(t, b1, b2, "mismo input debe producir siempre la misma banda")
}

// ──────────────────────────────────────────────────────────────────────────────
// Redondeo hacia arriba con horas intermedias
// ──────────────────────────────────────────────────────────────────────────────

func TestDiasRestantes_RedondeoHaciaArriba(t *testing.T) {
	// Vence mañana a las 10:00 evaluado hoy a las 18:00: 16 horas -> 1 día.
	ahora := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	venc := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, documento.DiasRestantes(venc, ahora))
}

func TestDiasRestantes_VencidoHaceDias(t *testing.T) {
	assert.Equal(t, -10, documento.DiasRestantes(venceEn(-10), hoy))
}
