package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePagoExtraRequest entrada para crear un ítem extra de remuneración.
type CreatePagoExtraRequest struct {
	GuardiaID string          `json:"guardia_id"`
	Tipo      string          `json:"tipo"` // haber | descuento
	Glosa     string          `json:"glosa"`
	Monto     decimal.Decimal `json:"monto"`
	Periodo   string          `json:"periodo"` // "2026-08"
}

// UpdatePagoExtraRequest actualización parcial de un ítem extra.
type UpdatePagoExtraRequest struct {
	Glosa   *string          `json:"glosa"`
	Monto   *decimal.Decimal `json:"monto"`
	Periodo *string          `json:"periodo"`
}

// PagoExtraResponse salida de un ítem extra de remuneración.
type PagoExtraResponse struct {
	ID        string          `json:"id"`
	GuardiaID string          `json:"guardia_id"`
	Tipo      string          `json:"tipo"`
	Glosa     string          `json:"glosa"`
	Monto     decimal.Decimal `json:"monto"`
	Periodo   string          `json:"periodo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
