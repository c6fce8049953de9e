package service

import (
	"context"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService defines the business logic contract for products and
// stock ingestion.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// IngresarStock creates a new lot and increments the aggregate stock
	// as one atomic write.
	IngresarStock(ctx context.Context, id uuid.UUID, req dto.IngresoStockRequest) (*model.Producto, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

// Crear registers the product and seeds its first lot from the initial
// stock. The lot's purchase price is the catalog price, so units of the
// seed lot sell at zero margin until a real ingestion arrives.
func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	producto := &model.Producto{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			if err := s.repo.Create(ctx, producto); err != nil {
				return err
			}
		} else if err := tx.Create(producto).Error; err != nil {
			return err
		}
		if req.Stock <= 0 {
			return nil
		}
		lote := &model.Lote{
			ProductoID:   producto.ID,
			Cantidad:     req.Stock,
			StockActual:  req.Stock,
			Precio:       req.Price,
			FechaIngreso: time.Now(),
		}
		return s.repo.CreateLoteTx(tx, lote)
	})
	if txErr != nil {
		return nil, apierror.Interno("error creando producto: %v", txErr)
	}

	if completo, err := s.repo.FindByIDConLotes(ctx, producto.ID); err == nil {
		return completo, nil
	}
	return producto, nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	producto, err := s.repo.FindByIDConLotes(ctx, id)
	if err != nil {
		return nil, apierror.NoEncontrado("Producto no encontrado")
	}
	return producto, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, error) {
	return s.repo.List(ctx, filter)
}

// Actualizar edits catalog fields only. Stock moves exclusively through
// ingestion and sales so the lot invariant cannot be broken by hand.
func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	producto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NoEncontrado("Producto no encontrado")
	}

	producto.Name = req.Name
	producto.Description = req.Description
	producto.Price = req.Price
	producto.MinStock = req.MinStock

	if err := s.repo.Update(ctx, producto); err != nil {
		return nil, apierror.Interno("error actualizando producto: %v", err)
	}
	return producto, nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NoEncontrado("Producto no encontrado")
	}
	usado, err := s.repo.UsadoEnVentas(ctx, id)
	if err != nil {
		return apierror.Interno("error verificando ventas: %v", err)
	}
	if usado {
		return apierror.Conflicto("No se puede eliminar el producto porque está siendo utilizado en ventas")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Interno("error eliminando producto: %v", err)
	}
	return nil
}

func (s *productoService) IngresarStock(ctx context.Context, id uuid.UUID, req dto.IngresoStockRequest) (*model.Producto, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apierror.NoEncontrado("Producto no encontrado")
	}
	if req.Cantidad <= 0 {
		return nil, apierror.Validacion("La cantidad debe ser mayor a 0")
	}
	if !req.Precio.IsPositive() {
		return nil, apierror.Validacion("El precio de compra debe ser mayor a 0")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		lote := &model.Lote{
			ProductoID:   id,
			Cantidad:     req.Cantidad,
			StockActual:  req.Cantidad,
			Precio:       req.Precio,
			FechaIngreso: time.Now(),
		}
		if err := s.repo.CreateLoteTx(tx, lote); err != nil {
			return err
		}
		return s.repo.UpdateStockTx(tx, id, req.Cantidad)
	})
	if txErr != nil {
		return nil, apierror.Interno("error registrando ingreso: %v", txErr)
	}

	producto, err := s.repo.FindByIDConLotes(ctx, id)
	if err != nil {
		return nil, apierror.Interno("error consultando producto: %v", err)
	}
	return producto, nil
}
