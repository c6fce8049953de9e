package repository

import (
	"context"

	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductoRepository defines the data access contract for products and their
// lots. Lot reads/writes used inside the sale transaction take the tx
// instance explicitly so the whole allocation commits or rolls back as one.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	FindByIDConLotes(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uuid.UUID) error
	UsadoEnVentas(ctx context.Context, id uuid.UUID) (bool, error)
	StockBajo(ctx context.Context) ([]model.Producto, error)

	// FindByIDTx locks the product row for the duration of the tx.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error)

	// Lot access — tx-scoped variants are used by the sale workflow.
	CreateLote(ctx context.Context, l *model.Lote) error
	CreateLoteTx(tx *gorm.DB, l *model.Lote) error
	// LotesDisponiblesTx returns the product's lots with remaining stock,
	// oldest fecha_ingreso first, row-locked for the duration of the tx so
	// concurrent sales cannot allocate the same units.
	LotesDisponiblesTx(tx *gorm.DB, productoID uuid.UUID) ([]model.Lote, error)
	UpdateLoteStockTx(tx *gorm.DB, loteID uuid.UUID, stockActual int) error
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) FindByIDConLotes(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Lotes", func(db *gorm.DB) *gorm.DB { return db.Order("fecha_ingreso ASC") }).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Model(&model.Producto{})

	if filter.Nombre != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Include == "lotes" {
		q = q.Preload("Lotes", func(db *gorm.DB) *gorm.DB { return db.Order("fecha_ingreso ASC") })
	}

	err := q.Order("name ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes the product and, via FK cascade, its lots. Callers must
// first check UsadoEnVentas.
func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Lote{}, "producto_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Producto{}, "id = ?", id).Error
	})
}

func (r *productoRepo) UsadoEnVentas(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.VentaItem{}).Where("producto_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productoRepo) StockBajo(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("stock <= min_stock").
		Order("stock ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) CreateLote(ctx context.Context, l *model.Lote) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *productoRepo) CreateLoteTx(tx *gorm.DB, l *model.Lote) error {
	return tx.Create(l).Error
}

func (r *productoRepo) LotesDisponiblesTx(tx *gorm.DB, productoID uuid.UUID) ([]model.Lote, error) {
	var lotes []model.Lote
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("producto_id = ? AND stock_actual > 0", productoID).
		Order("fecha_ingreso ASC").
		Find(&lotes).Error
	return lotes, err
}

func (r *productoRepo) UpdateLoteStockTx(tx *gorm.DB, loteID uuid.UUID, stockActual int) error {
	return tx.Model(&model.Lote{}).Where("id = ?", loteID).
		Update("stock_actual", stockActual).Error
}

func (r *productoRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
