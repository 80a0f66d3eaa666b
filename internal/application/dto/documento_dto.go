package dto

import "time"

// VigenciaResponse banda de vigencia calculada al momento de la lectura.
type VigenciaResponse struct {
	Etiqueta      string `json:"etiqueta"`
	Severidad     string `json:"severidad"`
	DiasRestantes int    `json:"dias_restantes"`
}

// DocumentoResponse salida de un documento con su vigencia derivada.
type DocumentoResponse struct {
	ID               string            `json:"id"`
	Modulo           string            `json:"modulo"`
	EntidadID        string            `json:"entidad_id"`
	Nombre           string            `json:"nombre"`
	TipoDocumentoID  string            `json:"tipo_documento_id"`
	TipoNombre       string            `json:"tipo_nombre"`
	TamanoBytes      int64             `json:"tamano_bytes"`
	FechaVencimiento *time.Time        `json:"fecha_vencimiento,omitempty"`
	Vigencia         *VigenciaResponse `json:"vigencia,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// TipoDocumentoResponse salida de un tipo de documento del catálogo.
type TipoDocumentoResponse struct {
	ID                  string `json:"id"`
	Nombre              string `json:"nombre"`
	Modulo              string `json:"modulo"`
	RequiereVencimiento bool   `json:"requiere_vencimiento"`
}
