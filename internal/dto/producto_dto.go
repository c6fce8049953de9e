package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest creates a product together with its initial lot:
// stock becomes both the aggregate stock and the first lot's quantity, and
// price doubles as the first lot's purchase price (original behavior).
type CrearProductoRequest struct {
	Name        string          `json:"name"        validate:"required,min=2"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"       validate:"required,gt=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
	MinStock    int             `json:"minStock"    validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Name        string          `json:"name"        validate:"required,min=2"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"       validate:"required,gt=0"`
	MinStock    int             `json:"minStock"    validate:"min=0"`
}

// IngresoStockRequest is the body for POST /products/:id/ingreso.
// Creates a new lot and increments the aggregate stock.
type IngresoStockRequest struct {
	Cantidad int             `json:"cantidad" validate:"required,gt=0"`
	Precio   decimal.Decimal `json:"price"    validate:"required,gt=0"`
}

// ProductoFilter is bound from the query string of GET /products.
type ProductoFilter struct {
	Include string `form:"include"` // "lotes" loads each product's lots
	Nombre  string `form:"nombre"`
}
