package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ítem extra de remuneración.
const (
	PagoExtraHaber     = "haber"
	PagoExtraDescuento = "descuento"
)

// PagoExtra es un ítem extra de remuneración de un guardia para un período:
// un haber (bono, turno extra) o un descuento, con su glosa libre.
type PagoExtra struct {
	ID        string
	GuardiaID string
	Tipo      string // PagoExtraHaber | PagoExtraDescuento
	Glosa     string // texto libre que aparece en la liquidación
	Monto     decimal.Decimal
	Periodo   string // mes de la liquidación, formato "2026-08"
	CreatedAt time.Time
	UpdatedAt time.Time
}
