package dto

import "github.com/shopspring/decimal"

// CrearGastoRequest is the body for POST /gastos.
type CrearGastoRequest struct {
	Concepto    string          `json:"concepto"    validate:"required,min=3"`
	Descripcion *string         `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Categoria   string          `json:"categoria"   validate:"required"`
	Fecha       string          `json:"fecha"       validate:"required"`
	Moneda      string          `json:"moneda"      validate:"required,oneof=USD Bs"`
}
