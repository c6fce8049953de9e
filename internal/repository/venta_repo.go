package repository

import (
	"context"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context) ([]model.Venta, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Venta, error)
	Update(ctx context.Context, v *model.Venta) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// Reporting projections
	VentasDiarias(ctx context.Context, desde, hasta time.Time) ([]dto.VentaDiaria, error)
	TopProductos(ctx context.Context, limit int) ([]dto.TopProducto, error)

	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Items.Producto").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Items.Producto").
		Order("created_at DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").
		Where("cliente_id = ?", clienteID).
		Order("created_at DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) Update(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *ventaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Delete(&model.VentaItem{}, "venta_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Venta{}, "id = ?", id).Error
}

func (r *ventaRepo) VentasDiarias(ctx context.Context, desde, hasta time.Time) ([]dto.VentaDiaria, error) {
	var rows []dto.VentaDiaria
	err := r.db.WithContext(ctx).Raw(`
		SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD') AS fecha,
		       COUNT(*)                                AS ventas,
		       COALESCE(SUM(total), 0)                 AS total,
		       COALESCE(SUM(ganancia), 0)              AS ganancia
		FROM ventas
		WHERE created_at::date BETWEEN ? AND ?
		  AND status <> 'cancelled'
		GROUP BY created_at::date
		ORDER BY created_at::date ASC`,
		desde, hasta).Scan(&rows).Error
	return rows, err
}

func (r *ventaRepo) TopProductos(ctx context.Context, limit int) ([]dto.TopProducto, error) {
	var rows []dto.TopProducto
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id                                AS producto_id,
		       p.name                              AS name,
		       COALESCE(SUM(vi.quantity), 0)       AS unidades,
		       COALESCE(SUM(vi.price * vi.quantity), 0) AS total
		FROM venta_items vi
		JOIN productos p ON p.id = vi.producto_id
		GROUP BY p.id, p.name
		ORDER BY unidades DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}
