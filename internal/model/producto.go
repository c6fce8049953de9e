package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Stock is the aggregate of all its lots'
// remaining quantities; the invariant stock == SUM(lotes.stock_actual)
// holds after every ingestion and sale.
type Producto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"index;not null" json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	MinStock    int             `gorm:"not null;default:5" json:"minStock"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Lotes []Lote `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE" json:"lotes,omitempty"`
}

func (Producto) TableName() string { return "productos" }

// Lote is a batch of stock received at a specific purchase price and date.
// Sales consume lots strictly oldest-first (fecha_ingreso ascending).
// Invariant: 0 <= stock_actual <= cantidad.
type Lote struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index" json:"productoId"`
	// Cantidad is the originally received quantity; StockActual the remainder.
	Cantidad     int             `gorm:"not null" json:"cantidad"`
	StockActual  int             `gorm:"not null" json:"stockActual"`
	Precio       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio"`
	FechaIngreso time.Time       `gorm:"not null;index" json:"fechaIngreso"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Lote) TableName() string { return "lotes_producto" }
