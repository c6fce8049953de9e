package dto

import "github.com/shopspring/decimal"

// CrearTasaRequest is the body for POST /tasa-cambio.
type CrearTasaRequest struct {
	Tasa decimal.Decimal `json:"tasa" validate:"required,gt=0"`
}
