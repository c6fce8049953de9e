package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TasaCambio stores one exchange-rate sample (Bs per USD). Reads are
// latest-wins: the row with the newest fecha is the current rate.
type TasaCambio struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Tasa  decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"tasa"`
	Fecha time.Time       `gorm:"not null;index" json:"fecha"`

	CreatedAt time.Time `json:"createdAt"`
}

func (TasaCambio) TableName() string { return "tasas_cambio" }
