package dto

// APIResponse envoltorio estándar de respuestas exitosas: {success, data}.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// APIError envoltorio de error: {success:false, error, details?}.
// Details lleva errores de validación campo → mensaje.
type APIError struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// OK arma una respuesta exitosa con payload.
func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKMessage arma una respuesta exitosa solo con mensaje (borrados, acciones).
func OKMessage(msg string) APIResponse {
	return APIResponse{Success: true, Message: msg}
}

// Err arma una respuesta de error simple.
func Err(msg string) APIError {
	return APIError{Success: false, Error: msg}
}

// ErrValidacion arma una respuesta de error con detalle por campo.
func ErrValidacion(details map[string]string) APIError {
	return APIError{Success: false, Error: "errores de validación", Details: details}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y topes si Limit/Offset vienen fuera de rango.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Limit > 200 {
		p.Limit = 200
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
