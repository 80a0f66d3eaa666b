package asignacion_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardops/gardops-api/internal/application/asignacion"
	"github.com/gardops/gardops-api/internal/domain"
)

var contextoPrueba = asignacion.PuestoContexto{
	PuestoID:          "puesto-1",
	InstalacionNombre: "Mall Plaza Norte",
	Rol:               "Guardia Acceso Principal",
	Horario:           "4x4x12 08:00-20:00",
}

var candidatoPrueba = asignacion.Candidato{
	GuardiaID: "guardia-1",
	Nombre:    "Juan Pérez Soto",
	RUT:       "12345678-5",
}

// avanzarHastaConfirmado lleva un flujo nuevo hasta Confirmado con los datos
// de prueba.
func avanzarHastaConfirmado(t *testing.T) *asignacion.Flujo {
	t.Helper()
	f := asignacion.NuevoFlujo()
	require.NoError(t, f.AbrirBusqueda(contextoPrueba))
	require.NoError(t, f.ElegirCandidato(candidatoPrueba))
	require.NoError(t, f.PedirFechaInicio())
	hoy := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	require.NoError(t, f.Confirmar(hoy.AddDate(0, 0, 1), hoy, "turno de reemplazo"))
	return f
}

// ── transiciones legales ──────────────────────────────────────────────────────

func TestFlujo_CaminoFelizHastaExito(t *testing.T) {
	f := avanzarHastaConfirmado(t)

	require.NoError(t, f.IniciarEnvio())
	assert.Equal(t, asignacion.EstadoEnviando, f.Estado())

	require.NoError(t, f.RegistrarExito())
	assert.Equal(t, asignacion.EstadoExito, f.Estado())
}

// TestFlujo_ContextoSobreviveAlCierreDeBusqueda verifica la regla central del
// flujo: el contexto capturado al abrir la búsqueda sigue disponible después
// de cerrarla, cuando el commit y la confirmación lo necesitan.
func TestFlujo_ContextoSobreviveAlCierreDeBusqueda(t *testing.T) {
	f := asignacion.NuevoFlujo()
	require.NoError(t, f.AbrirBusqueda(contextoPrueba))
	require.NoError(t, f.ElegirCandidato(candidatoPrueba))

	// cerrar la búsqueda y pasar al modal de fecha
	require.NoError(t, f.PedirFechaInicio())

	assert.Equal(t, contextoPrueba, f.Contexto(),
		"el contexto del puesto debe sobrevivir al cierre de la búsqueda")
	assert.Equal(t, candidatoPrueba, f.Elegido(),
		"el candidato elegido debe sobrevivir al cierre de la búsqueda")
}

func TestFlujo_ReabrirTrasFalloLimpiaElIntento(t *testing.T) {
	f := avanzarHastaConfirmado(t)
	require.NoError(t, f.IniciarEnvio())
	require.NoError(t, f.RegistrarFallo("el puesto ya está cubierto"))

	otroContexto := asignacion.PuestoContexto{PuestoID: "puesto-2", InstalacionNombre: "Bodega Quilicura", Rol: "Rondín", Horario: "Noche"}
	require.NoError(t, f.AbrirBusqueda(otroContexto))

	assert.Equal(t, asignacion.EstadoBuscandoGuardia, f.Estado())
	assert.Equal(t, otroContexto, f.Contexto())
	assert.Empty(t, f.MensajeFallo(), "reabrir debe descartar el fallo anterior")
	assert.Empty(t, f.Elegido().GuardiaID, "reabrir debe descartar el candidato anterior")
}

// ── validación de fecha ───────────────────────────────────────────────────────

func TestFlujo_ConfirmarRechazaFechaPasada(t *testing.T) {
	f := asignacion.NuevoFlujo()
	require.NoError(t, f.AbrirBusqueda(contextoPrueba))
	require.NoError(t, f.ElegirCandidato(candidatoPrueba))
	require.NoError(t, f.PedirFechaInicio())

	hoy := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	err := f.Confirmar(hoy.AddDate(0, 0, -1), hoy, "")

	assert.ErrorIs(t, err, domain.ErrFechaPasada)
	assert.Equal(t, asignacion.EstadoEsperandoFecha, f.Estado(),
		"la fecha rechazada no debe avanzar el flujo")
}

// TestFlujo_ConfirmarAceptaHoy verifica que la comparación es por fecha civil:
// hoy más tarde en el día sigue siendo hoy.
func TestFlujo_ConfirmarAceptaHoy(t *testing.T) {
	f := asignacion.NuevoFlujo()
	require.NoError(t, f.AbrirBusqueda(contextoPrueba))
	require.NoError(t, f.ElegirCandidato(candidatoPrueba))
	require.NoError(t, f.PedirFechaInicio())

	hoy := time.Date(2026, 8, 30, 23, 45, 0, 0, time.UTC)
	fechaInicio := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	require.NoError(t, f.Confirmar(fechaInicio, hoy, ""))
	assert.Equal(t, asignacion.EstadoConfirmado, f.Estado())
}

// ── fallo ─────────────────────────────────────────────────────────────────────

func TestFlujo_FalloConservaMensajeTextual(t *testing.T) {
	f := avanzarHastaConfirmado(t)
	require.NoError(t, f.IniciarEnvio())

	mensaje := "ERROR 23505: llave duplicada viola restricción de unicidad"
	require.NoError(t, f.RegistrarFallo(mensaje))

	assert.Equal(t, asignacion.EstadoFallo, f.Estado())
	assert.Equal(t, mensaje, f.MensajeFallo(),
		"el mensaje del servidor debe conservarse textual, sin reformatear")
}

// ── transiciones ilegales ─────────────────────────────────────────────────────

func TestFlujo_TransicionesIlegales(t *testing.T) {
	casos := []struct {
		nombre string
		accion func(f *asignacion.Flujo) error
	}{
		{"elegir sin abrir búsqueda", func(f *asignacion.Flujo) error {
			return f.ElegirCandidato(candidatoPrueba)
		}},
		{"pedir fecha sin candidato", func(f *asignacion.Flujo) error {
			require.NoError(t, f.AbrirBusqueda(contextoPrueba))
			return f.PedirFechaInicio()
		}},
		{"confirmar sin pedir fecha", func(f *asignacion.Flujo) error {
			require.NoError(t, f.AbrirBusqueda(contextoPrueba))
			require.NoError(t, f.ElegirCandidato(candidatoPrueba))
			return f.Confirmar(time.Now().AddDate(0, 0, 1), time.Now(), "")
		}},
		{"enviar sin confirmar", func(f *asignacion.Flujo) error {
			return f.IniciarEnvio()
		}},
		{"registrar éxito sin envío en vuelo", func(f *asignacion.Flujo) error {
			return f.RegistrarExito()
		}},
		{"reabrir con envío en vuelo", func(f *asignacion.Flujo) error {
			f2 := avanzarHastaConfirmado(t)
			require.NoError(t, f2.IniciarEnvio())
			return f2.AbrirBusqueda(contextoPrueba)
		}},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := c.accion(asignacion.NuevoFlujo())
			var tErr *asignacion.ErrTransicionInvalida
			assert.True(t, errors.As(err, &tErr), "debe fallar con ErrTransicionInvalida, obtuvo: %v", err)
		})
	}
}
