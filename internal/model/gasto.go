package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gasto is a flat expense record; no cross-entity invariants.
type Gasto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Concepto    string          `gorm:"not null" json:"concepto"`
	Descripcion *string         `json:"descripcion"`
	Monto       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"monto"`
	Categoria   string          `gorm:"not null" json:"categoria"`
	Fecha       time.Time       `gorm:"not null;index" json:"fecha"`
	Moneda      string          `gorm:"type:varchar(10);not null" json:"moneda"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Gasto) TableName() string { return "gastos" }
