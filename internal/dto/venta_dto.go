package dto

import "github.com/shopspring/decimal"

// ItemVentaRequest is one line of a sale. Price overrides the product's
// list price when present; zero means "use the catalog price".
type ItemVentaRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"     validate:"min=0"`
}

// CrearVentaRequest is the body for POST /sales.
type CrearVentaRequest struct {
	CustomerID    string             `json:"customerId"    validate:"required,uuid"`
	Items         []ItemVentaRequest `json:"items"         validate:"required,min=1,dive"`
	InvoiceNumber string             `json:"invoiceNumber"`
	// contado: completes immediately with amountPaid = total.
	// credito: starts pending with the given amountPaid (default 0).
	PaymentType   string           `json:"paymentType"   validate:"omitempty,oneof=contado credito"`
	PaymentMethod string           `json:"paymentMethod"`
	Bank          *string          `json:"bank"`
	AmountPaid    *decimal.Decimal `json:"amountPaid"    validate:"omitempty"`
	Status        string           `json:"status"        validate:"omitempty,oneof=pending completed cancelled"`
}

// ActualizarVentaRequest is the body for PUT /sales/:id. Exactly one of the
// two update paths applies: recording a payment or a manual status change.
type ActualizarVentaRequest struct {
	AmountPaid *decimal.Decimal `json:"amountPaid"`
	Status     string           `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

// EnviarFacturaRequest is the body for POST /sales/:id/enviar-factura.
// Email defaults to the customer's stored address when empty.
type EnviarFacturaRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}
