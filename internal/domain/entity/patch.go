package entity

import "github.com/shopspring/decimal"

// Los patch modelan actualizaciones parciales de forma explícita: un campo
// nil no fue enviado y no se escribe; un puntero no nil se escribe aunque
// apunte a cadena vacía. Esto elimina la ambigüedad de "¿vino la clave?"
// en la frontera de persistencia.

// ClientePatch actualización parcial de un Cliente.
type ClientePatch struct {
	Nombre             *string
	RUT                *string
	RazonSocial        *string
	RepresentanteLegal *string
	RUTRepresentante   *string
	Email              *string
	Telefono           *string
	Direccion          *string
	Latitud            *float64
	Longitud           *float64
	Estado             *string
}

// Aplicar escribe sobre el cliente solo los campos presentes en el patch.
func (p ClientePatch) Aplicar(c *Cliente) {
	if p.Nombre != nil {
		c.Nombre = *p.Nombre
	}
	if p.RUT != nil {
		c.RUT = *p.RUT
	}
	if p.RazonSocial != nil {
		c.RazonSocial = *p.RazonSocial
	}
	if p.RepresentanteLegal != nil {
		c.RepresentanteLegal = *p.RepresentanteLegal
	}
	if p.RUTRepresentante != nil {
		c.RUTRepresentante = *p.RUTRepresentante
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Telefono != nil {
		c.Telefono = *p.Telefono
	}
	if p.Direccion != nil {
		c.Direccion = *p.Direccion
	}
	if p.Latitud != nil {
		c.Latitud = p.Latitud
	}
	if p.Longitud != nil {
		c.Longitud = p.Longitud
	}
	if p.Estado != nil {
		c.Estado = *p.Estado
	}
}

// InstalacionPatch actualización parcial de una Instalacion. No incluye los
// contadores derivados: esos nunca son escribibles.
type InstalacionPatch struct {
	Nombre          *string
	Direccion       *string
	Ciudad          *string
	Comuna          *string
	Region          *string
	Latitud         *float64
	Longitud        *float64
	ValorTurnoExtra *decimal.Decimal
	Estado          *string
}

// Aplicar escribe sobre la instalación solo los campos presentes en el patch.
func (p InstalacionPatch) Aplicar(i *Instalacion) {
	if p.Nombre != nil {
		i.Nombre = *p.Nombre
	}
	if p.Direccion != nil {
		i.Direccion = *p.Direccion
	}
	if p.Ciudad != nil {
		i.Ciudad = *p.Ciudad
	}
	if p.Comuna != nil {
		i.Comuna = *p.Comuna
	}
	if p.Region != nil {
		i.Region = *p.Region
	}
	if p.Latitud != nil {
		i.Latitud = p.Latitud
	}
	if p.Longitud != nil {
		i.Longitud = p.Longitud
	}
	if p.ValorTurnoExtra != nil {
		i.ValorTurnoExtra = *p.ValorTurnoExtra
	}
	if p.Estado != nil {
		i.Estado = *p.Estado
	}
}
