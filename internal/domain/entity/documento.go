package entity

import "time"

// Módulos propietarios de documentos.
const (
	ModuloClientes      = "clientes"
	ModuloInstalaciones = "instalaciones"
	ModuloGuardias      = "guardias"
)

// TipoDocumento cataloga las clases de documento que se pueden adjuntar a una
// entidad. Si RequiereVencimiento es true, la subida debe incluir fecha de
// vencimiento.
type TipoDocumento struct {
	ID                  string
	Nombre              string
	Modulo              string
	RequiereVencimiento bool
	CreatedAt           time.Time
}

// Documento representa un archivo adjunto a un cliente, instalación o guardia.
// Su estado de vigencia (vigente / por vencer / vencido) NO se persiste:
// es una función pura de (FechaVencimiento, hoy) calculada en cada lectura.
type Documento struct {
	ID               string
	Modulo           string // ModuloClientes | ModuloInstalaciones | ModuloGuardias
	EntidadID        string
	Nombre           string
	TipoDocumentoID  string
	ArchivoRef       string // referencia en el almacenamiento de objetos
	TamanoBytes      int64
	FechaVencimiento *time.Time
	CreatedAt        time.Time

	// Campo de lectura embebido desde join.
	TipoNombre string
}
