package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransaccionCaja is one entry of the cash-register ledger, sequenced by
// (fecha, created_at). Saldo is the running balance at this entry's position:
// previous saldo + entrada - salida. After a deletion, the saldo of every
// entry at or after the deleted position is recomputed in ledger order.
type TransaccionCaja struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Fecha      time.Time       `gorm:"not null;index" json:"fecha"`
	Concepto   string          `gorm:"not null" json:"concepto"`
	Moneda     string          `gorm:"type:varchar(10);not null" json:"moneda"` // USD | Bs
	Entrada    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"entrada"`
	Salida     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"salida"`
	Saldo      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"saldo"`
	TasaCambio *decimal.Decimal `gorm:"type:decimal(14,4)" json:"tasaCambio"`

	CreatedAt time.Time `json:"createdAt"`
}

func (TransaccionCaja) TableName() string { return "transacciones_caja" }
