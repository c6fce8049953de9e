package dto

import "github.com/shopspring/decimal"

// CrearTransaccionRequest is the body for POST /caja. Entrada and salida are
// both optional but at least one must be positive; the stored saldo is
// computed server-side from the previous balance.
type CrearTransaccionRequest struct {
	Fecha      string           `json:"fecha"      validate:"required"` // RFC 3339 or YYYY-MM-DD
	Concepto   string           `json:"concepto"   validate:"required,min=3"`
	Moneda     string           `json:"moneda"     validate:"required,oneof=USD Bs"`
	Entrada    decimal.Decimal  `json:"entrada"    validate:"min=0"`
	Salida     decimal.Decimal  `json:"salida"     validate:"min=0"`
	TasaCambio *decimal.Decimal `json:"tasaCambio" validate:"omitempty,gt=0"`
}
