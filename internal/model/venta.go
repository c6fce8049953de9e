package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale status values.
const (
	VentaPendiente  = "pending"
	VentaCompletada = "completed"
	VentaCancelada  = "cancelled"
)

// Payment types.
const (
	PagoContado = "contado" // cash now — sale completes immediately
	PagoCredito = "credito" // deferred — tracked via AmountPaid
)

// Venta is a sale with its line items, created atomically with the lot
// consumptions and stock decrements it causes.
// Invariant: amount_paid <= total; status flips to "completed" once
// amount_paid >= total.
type Venta struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClienteID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"customerId"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Ganancia      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"ganancia"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	InvoiceNumber string          `gorm:"not null" json:"invoiceNumber"`
	PaymentType   string          `gorm:"type:varchar(20);not null" json:"paymentType"`
	PaymentMethod string          `gorm:"type:varchar(30);not null" json:"paymentMethod"`
	Bank          *string         `json:"bank"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"amountPaid"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Cliente *Cliente    `gorm:"foreignKey:ClienteID" json:"customer,omitempty"`
	Items   []VentaItem `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Venta) TableName() string { return "ventas" }

// VentaItem is one sale line. Ganancia is the sum of per-lot profit
// contributions computed by the FIFO allocation at sale time.
type VentaItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VentaID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"saleId"`
	ProductoID uuid.UUID       `gorm:"type:uuid;not null;index" json:"productId"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Ganancia   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"ganancia"`

	CreatedAt time.Time `json:"createdAt"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"product,omitempty"`
}

func (VentaItem) TableName() string { return "venta_items" }
