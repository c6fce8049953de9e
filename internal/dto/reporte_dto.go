package dto

import "github.com/shopspring/decimal"

// ─── Read-only reporting projections ────────────────────────────────────────

// VentaDiaria is one row of GET /reportes/ventas-diarias.
type VentaDiaria struct {
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Ventas   int             `json:"ventas"`
	Total    decimal.Decimal `json:"total"`
	Ganancia decimal.Decimal `json:"ganancia"`
}

// RangoFechasFilter bounds a report to a date range (inclusive).
type RangoFechasFilter struct {
	Desde string `form:"desde"` // YYYY-MM-DD; empty = 30 days ago
	Hasta string `form:"hasta"` // YYYY-MM-DD; empty = today
}

// StockBajo is one row of GET /reportes/stock-bajo.
type StockBajo struct {
	ProductoID string `json:"productoId"`
	Name       string `json:"name"`
	Stock      int    `json:"stock"`
	MinStock   int    `json:"minStock"`
}

// TopProducto is one row of GET /reportes/top-productos.
type TopProducto struct {
	ProductoID string          `json:"productoId"`
	Name       string          `json:"name"`
	Unidades   int             `json:"unidades"`
	Total      decimal.Decimal `json:"total"`
}

// SaldoCaja is one row of GET /reportes/resumen-caja: the latest running
// balance per currency.
type SaldoCaja struct {
	Moneda string          `json:"moneda"`
	Saldo  decimal.Decimal `json:"saldo"`
}
