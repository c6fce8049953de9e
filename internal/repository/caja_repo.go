package repository

import (
	"context"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CajaRepository is the cash-register ledger. Entries are sequenced by
// (fecha, created_at) so that same-day entries keep a stable order; every
// query that walks the ledger uses that ordering. Entries are append-only
// except for deletion, which triggers a balance recompute over the entries
// at or after the deleted position — the tx-scoped methods exist so that
// recompute commits atomically.
type CajaRepository interface {
	Create(ctx context.Context, t *model.TransaccionCaja) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TransaccionCaja, error)
	List(ctx context.Context) ([]model.TransaccionCaja, error)
	// UltimaPorFecha returns the last entry in ledger order, or gorm.ErrRecordNotFound.
	UltimaPorFecha(ctx context.Context) (*model.TransaccionCaja, error)

	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	// UltimaAnteriorTx returns the newest surviving entry strictly before the
	// given ledger position, used to seed the balance recompute after a deletion.
	UltimaAnteriorTx(tx *gorm.DB, fecha, createdAt time.Time) (*model.TransaccionCaja, error)
	// ListDesdeTx returns every entry at or after the given ledger position,
	// in ledger order.
	ListDesdeTx(tx *gorm.DB, fecha, createdAt time.Time) ([]model.TransaccionCaja, error)
	UpdateSaldoTx(tx *gorm.DB, id uuid.UUID, saldo decimal.Decimal) error

	SaldosPorMoneda(ctx context.Context) ([]dto.SaldoCaja, error)

	DB() *gorm.DB
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) DB() *gorm.DB { return r.db }

func (r *cajaRepo) Create(ctx context.Context, t *model.TransaccionCaja) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *cajaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.TransaccionCaja, error) {
	var t model.TransaccionCaja
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *cajaRepo) List(ctx context.Context) ([]model.TransaccionCaja, error) {
	var ts []model.TransaccionCaja
	err := r.db.WithContext(ctx).Order("fecha DESC, created_at DESC").Find(&ts).Error
	return ts, err
}

func (r *cajaRepo) UltimaPorFecha(ctx context.Context) (*model.TransaccionCaja, error) {
	var t model.TransaccionCaja
	err := r.db.WithContext(ctx).Order("fecha DESC, created_at DESC").First(&t).Error
	return &t, err
}

func (r *cajaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.TransaccionCaja{}, "id = ?", id).Error
}

func (r *cajaRepo) UltimaAnteriorTx(tx *gorm.DB, fecha, createdAt time.Time) (*model.TransaccionCaja, error) {
	var t model.TransaccionCaja
	err := tx.Where("fecha < ? OR (fecha = ? AND created_at < ?)", fecha, fecha, createdAt).
		Order("fecha DESC, created_at DESC").First(&t).Error
	return &t, err
}

func (r *cajaRepo) ListDesdeTx(tx *gorm.DB, fecha, createdAt time.Time) ([]model.TransaccionCaja, error) {
	var ts []model.TransaccionCaja
	err := tx.Where("fecha > ? OR (fecha = ? AND created_at >= ?)", fecha, fecha, createdAt).
		Order("fecha ASC, created_at ASC").Find(&ts).Error
	return ts, err
}

func (r *cajaRepo) UpdateSaldoTx(tx *gorm.DB, id uuid.UUID, saldo decimal.Decimal) error {
	return tx.Model(&model.TransaccionCaja{}).Where("id = ?", id).
		Update("saldo", saldo).Error
}

func (r *cajaRepo) SaldosPorMoneda(ctx context.Context) ([]dto.SaldoCaja, error) {
	var rows []dto.SaldoCaja
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (moneda) moneda, saldo
		FROM transacciones_caja
		ORDER BY moneda, fecha DESC, created_at DESC`).Scan(&rows).Error
	return rows, err
}
