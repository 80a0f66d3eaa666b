// Package asignacion implementa el flujo de asignación de un guardia a un
// puesto por cubrir (PPC). El flujo es una máquina de estados explícita: cada
// intento de asignación avanza por estados nombrados y las combinaciones
// inválidas no son representables. El contexto del puesto se captura al abrir
// la búsqueda y queda congelado: los pasos posteriores lo leen del flujo,
// nunca de la superficie que lo originó, porque esa superficie puede cerrarse
// antes del commit.
package asignacion

import (
	"fmt"
	"time"

	"github.com/gardops/gardops-api/internal/domain"
)

// Estado del flujo de asignación.
type Estado string

const (
	EstadoInactivo        Estado = "inactivo"
	EstadoBuscandoGuardia Estado = "buscando_guardia"
	EstadoGuardiaElegido  Estado = "guardia_elegido"
	EstadoEsperandoFecha  Estado = "esperando_fecha_inicio"
	EstadoConfirmado      Estado = "confirmado"
	EstadoEnviando        Estado = "enviando"
	EstadoExito           Estado = "exito"
	EstadoFallo           Estado = "fallo"
)

// PuestoContexto es la instantánea inmutable del puesto que originó el flujo.
type PuestoContexto struct {
	PuestoID          string
	InstalacionNombre string
	Rol               string
	Horario           string
}

// Candidato es un guardia elegible tomado de la lista de búsqueda. El nombre
// y RUT de la confirmación salen de aquí, no de la respuesta del commit.
type Candidato struct {
	GuardiaID string
	Nombre    string
	RUT       string
}

// ErrTransicionInvalida señala un evento aplicado en un estado que no lo admite.
type ErrTransicionInvalida struct {
	Desde  Estado
	Evento string
}

func (e *ErrTransicionInvalida) Error() string {
	return fmt.Sprintf("transición inválida: %s en estado %s", e.Evento, e.Desde)
}

// Flujo es un intento de asignación. No hace IO: el commit lo ejecuta el
// Servicio, que reporta el resultado con RegistrarExito / RegistrarFallo.
type Flujo struct {
	estado        Estado
	contexto      PuestoContexto
	elegido       Candidato
	fechaInicio   time.Time
	observaciones string
	mensajeFallo  string
}

// NuevoFlujo crea un flujo en estado Inactivo.
func NuevoFlujo() *Flujo {
	return &Flujo{estado: EstadoInactivo}
}

// Estado actual del flujo.
func (f *Flujo) Estado() Estado { return f.estado }

// Contexto devuelve la instantánea del puesto capturada al abrir la búsqueda.
func (f *Flujo) Contexto() PuestoContexto { return f.contexto }

// Elegido devuelve el candidato seleccionado.
func (f *Flujo) Elegido() Candidato { return f.elegido }

// FechaInicio devuelve la fecha confirmada.
func (f *Flujo) FechaInicio() time.Time { return f.fechaInicio }

// Observaciones devuelve las notas opcionales del paso de confirmación.
func (f *Flujo) Observaciones() string { return f.observaciones }

// MensajeFallo devuelve el mensaje del servidor, textual, tras un fallo.
func (f *Flujo) MensajeFallo() string { return f.mensajeFallo }

// AbrirBusqueda inicia un intento sobre un puesto: captura el contexto y pasa
// a BuscandoGuardia. Se admite desde Inactivo y desde los estados terminales,
// para reintentar manualmente tras un fallo.
func (f *Flujo) AbrirBusqueda(ctx PuestoContexto) error {
	switch f.estado {
	case EstadoInactivo, EstadoExito, EstadoFallo:
	default:
		return &ErrTransicionInvalida{Desde: f.estado, Evento: "abrir_busqueda"}
	}
	*f = Flujo{estado: EstadoBuscandoGuardia, contexto: ctx}
	return nil
}

// ElegirCandidato fija el guardia elegido y pasa a GuardiaElegido.
func (f *Flujo) ElegirCandidato(c Candidato) error {
	if f.estado != EstadoBuscandoGuardia {
		return &ErrTransicionInvalida{Desde: f.estado, Evento: "elegir_candidato"}
	}
	f.elegido = c
	f.estado = EstadoGuardiaElegido
	return nil
}

// PedirFechaInicio cierra la búsqueda y pasa a EsperandoFecha. El contexto y
// el candidato sobreviven al cierre: desde aquí solo se leen del flujo.
func (f *Flujo) PedirFechaInicio() error {
	if f.estado != EstadoGuardiaElegido {
		return &ErrTransicionInvalida{Desde: f.estado, Evento: "pedir_fecha_inicio"}
	}
	f.estado = EstadoEsperandoFecha
	return nil
}

// Confirmar fija la fecha de inicio y las notas y pasa a Confirmado. La fecha
// se compara como fecha civil: hoy es válido, ayer no.
func (f *Flujo) Confirmar(fechaInicio, hoy time.Time, observaciones string) error {
	if f.estado != EstadoEsperandoFecha {
		return &ErrTransicionInvalida{Desde: f.estado, Evento: "confirmar"}
	}
	if diaCivil(fechaInicio).Before(diaCivil(hoy)) {
		return domain.ErrFechaPasada
	}
	f.fechaInicio = fechaInicio
	f.observaciones = observaciones
	f.estado = EstadoConfirmado
	return nil
}

// IniciarEnvio marca el commit en vuelo.
func (f *Flujo) IniciarEnvio() error {
	if f.estado != EstadoConfirmado {
		return &ErrTransicionInvalida{Desde: f.estado, Evento: "iniciar_envio"}
	}
	f.estado = EstadoEnviando
	return nil
}

// RegistrarExito cierra el intento con éxito.
func (f *Flujo) RegistrarExito() error {
	if f.estado != EstadoEnviando {
		return &ErrTransicionInvalida{Desde: f.estado, Evento: "registrar_exito"}
	}
	f.estado = EstadoExito
	return nil
}

// RegistrarFallo cierra el intento con fallo conservando el mensaje del
// servidor textual. No hay reintento automático: el usuario reabre la
// búsqueda si quiere reintentar.
func (f *Flujo) RegistrarFallo(mensaje string) error {
	if f.estado != EstadoEnviando {
		return &ErrTransicionInvalida{Desde: f.estado, Evento: "registrar_fallo"}
	}
	f.mensajeFallo = mensaje
	f.estado = EstadoFallo
	return nil
}

func diaCivil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
