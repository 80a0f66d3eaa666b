package entity

import "time"

// Plantilla es un documento modelo con cuerpo HTML y tokens {{variable}}.
// La lista de variables NO se almacena de forma independiente: se re-deriva
// del cuerpo en cada escritura para que cuerpo y lista nunca diverjan.
type Plantilla struct {
	ID        string
	Nombre    string
	Cuerpo    string   // HTML con tokens {{variable}}
	Variables []string // derivadas del cuerpo, orden de primera aparición
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VariablePlantilla describe una variable del catálogo fijo disponible para
// los cuerpos de plantilla.
type VariablePlantilla struct {
	Clave       string
	Descripcion string
	Categoria   string // "guardia" | "cliente" | "instalacion" | "sistema"
	Ejemplo     string
}

// CatalogoVariables es el catálogo fijo de variables soportadas. Tokens ad hoc
// escritos en el cuerpo también se extraen, pero no aparecen aquí.
var CatalogoVariables = []VariablePlantilla{
	{Clave: "guardia_nombre", Descripcion: "Nombre completo del guardia", Categoria: "guardia", Ejemplo: "Juan Pérez Soto"},
	{Clave: "guardia_rut", Descripcion: "RUT del guardia", Categoria: "guardia", Ejemplo: "12.345.678-5"},
	{Clave: "guardia_email", Descripcion: "Email del guardia", Categoria: "guardia", Ejemplo: "jperez@correo.cl"},
	{Clave: "cliente_nombre", Descripcion: "Nombre del cliente", Categoria: "cliente", Ejemplo: "Empresa ABC"},
	{Clave: "cliente_rut", Descripcion: "RUT del cliente", Categoria: "cliente", Ejemplo: "76.123.456-7"},
	{Clave: "cliente_razon_social", Descripcion: "Razón social del cliente", Categoria: "cliente", Ejemplo: "Empresa ABC SpA"},
	{Clave: "instalacion_nombre", Descripcion: "Nombre de la instalación", Categoria: "instalacion", Ejemplo: "Mall Plaza Norte"},
	{Clave: "instalacion_direccion", Descripcion: "Dirección de la instalación", Categoria: "instalacion", Ejemplo: "Av. Américo Vespucio 1737"},
	{Clave: "instalacion_comuna", Descripcion: "Comuna de la instalación", Categoria: "instalacion", Ejemplo: "Huechuraba"},
	{Clave: "fecha_actual", Descripcion: "Fecha de generación del documento", Categoria: "sistema", Ejemplo: "30/08/2026"},
}
