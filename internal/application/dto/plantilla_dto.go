package dto

import "time"

// CreatePlantillaRequest entrada para crear una plantilla.
type CreatePlantillaRequest struct {
	Nombre string `json:"nombre"`
	Cuerpo string `json:"cuerpo"`
}

// UpdatePlantillaRequest actualización parcial de una plantilla. Al cambiar el
// cuerpo, la lista de variables se re-deriva; nunca se envía por separado.
type UpdatePlantillaRequest struct {
	Nombre *string `json:"nombre"`
	Cuerpo *string `json:"cuerpo"`
}

// PlantillaResponse salida de una plantilla con sus variables derivadas.
type PlantillaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Cuerpo    string    `json:"cuerpo"`
	Variables []string  `json:"variables"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VariableCatalogoResponse variable del catálogo fijo.
type VariableCatalogoResponse struct {
	Clave       string `json:"clave"`
	Descripcion string `json:"descripcion"`
	Categoria   string `json:"categoria"`
	Ejemplo     string `json:"ejemplo"`
}

// RenderPlantillaRequest entrada para renderizar una plantilla contra un
// diccionario plano armado desde guardia, cliente, instalación y sistema.
type RenderPlantillaRequest struct {
	GuardiaID     string            `json:"guardia_id"`
	ClienteID     string            `json:"cliente_id"`
	InstalacionID string            `json:"instalacion_id"`
	Extras        map[string]string `json:"extras"`
}

// RenderPlantillaResponse cuerpo renderizado.
type RenderPlantillaResponse struct {
	Nombre      string   `json:"nombre"`
	Cuerpo      string   `json:"cuerpo"`
	SinResolver []string `json:"sin_resolver,omitempty"`
}
