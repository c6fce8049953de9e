package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	CrearVenta(ctx context.Context, req dto.CrearVentaRequest) (*model.Venta, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	ListarVentas(ctx context.Context) ([]model.Venta, error)
	ActualizarVenta(ctx context.Context, id uuid.UUID, req dto.ActualizarVentaRequest) (*model.Venta, error)
	EliminarVenta(ctx context.Context, id uuid.UUID) error
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
}

func NewVentaService(
	repo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
) VentaService {
	return &ventaService{
		repo:         repo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── CrearVenta ────────────────────────────────────────────────────────────────
// One ACID transaction:
//   1. Validate the customer and every line (quantity > 0)
//   2. Per line: FIFO lot allocation, lot decrements, product stock decrement
//   3. total = Σ(precio × cantidad); ganancia = Σ(ganancia de línea)
//   4. contado completes immediately with amountPaid = total;
//      credito starts pending with the given amountPaid
//   5. Persist venta + items
// Any failure rolls the whole thing back — no partial stock mutation.

func (s *ventaService) CrearVenta(ctx context.Context, req dto.CrearVentaRequest) (*model.Venta, error) {
	clienteID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, apierror.Validacion("customerId inválido")
	}
	if len(req.Items) == 0 {
		return nil, apierror.Validacion("La venta debe tener al menos un item")
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, apierror.NoEncontrado("Cliente no encontrado")
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = model.PagoContado
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "efectivo"
	}
	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = fmt.Sprintf("FACT-%d", time.Now().UnixMilli())
	}

	var venta model.Venta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		total := decimal.Zero
		gananciaTotal := decimal.Zero
		items := make([]model.VentaItem, 0, len(req.Items))

		for _, item := range req.Items {
			productoID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return apierror.Validacion("productId inválido")
			}
			if item.Quantity <= 0 {
				return apierror.Validacion("La cantidad debe ser mayor a 0")
			}

			producto, err := s.productoRepo.FindByIDTx(tx, productoID)
			if err != nil {
				return apierror.NoEncontrado("Producto %s no encontrado", item.ProductID)
			}

			precioVenta := item.Price
			if precioVenta.IsZero() {
				precioVenta = producto.Price
			}

			lotes, err := s.productoRepo.LotesDisponiblesTx(tx, productoID)
			if err != nil {
				return apierror.Interno("error consultando lotes: %v", err)
			}

			consumos, gananciaItem, faltante := AsignarLotesFIFO(lotes, item.Quantity, precioVenta)
			if faltante > 0 {
				return apierror.StockInsuficiente(producto.Name, faltante)
			}
			// Selling below the FIFO cost basis is rejected at the workflow
			// boundary; the allocation itself allows negative margins.
			if gananciaItem.IsNegative() {
				return apierror.Validacion("El precio de venta de %s está por debajo del costo", producto.Name)
			}

			for _, c := range consumos {
				if err := s.productoRepo.UpdateLoteStockTx(tx, c.Lote.ID, c.NuevoStock); err != nil {
					return apierror.Interno("error actualizando lote: %v", err)
				}
			}
			if err := s.productoRepo.UpdateStockTx(tx, productoID, -item.Quantity); err != nil {
				return apierror.Interno("error descontando stock: %v", err)
			}

			items = append(items, model.VentaItem{
				ProductoID: productoID,
				Quantity:   item.Quantity,
				Price:      precioVenta,
				Ganancia:   gananciaItem,
			})
			total = total.Add(precioVenta.Mul(decimal.NewFromInt(int64(item.Quantity))))
			gananciaTotal = gananciaTotal.Add(gananciaItem)
		}

		status, amountPaid, err := estadoInicial(paymentType, req.Status, req.AmountPaid, total)
		if err != nil {
			return err
		}

		venta = model.Venta{
			ClienteID:     clienteID,
			Total:         total,
			Ganancia:      gananciaTotal,
			Status:        status,
			InvoiceNumber: invoiceNumber,
			PaymentType:   paymentType,
			PaymentMethod: paymentMethod,
			Bank:          req.Bank,
			AmountPaid:    amountPaid,
			Items:         items,
		}
		return s.repo.CreateTx(tx, &venta)
	})
	if txErr != nil {
		return nil, txErr
	}

	if completa, err := s.repo.FindByID(ctx, venta.ID); err == nil {
		return completa, nil
	}
	return &venta, nil
}

// estadoInicial resolves the initial status and amountPaid of a sale.
// contado: completed, fully paid. credito: pending (or the caller's status)
// with the given payment; a payment covering the total completes at once.
func estadoInicial(paymentType, status string, amountPaid *decimal.Decimal, total decimal.Decimal) (string, decimal.Decimal, error) {
	if paymentType == model.PagoContado {
		return model.VentaCompletada, total, nil
	}

	pagado := decimal.Zero
	if amountPaid != nil {
		pagado = *amountPaid
	}
	if pagado.IsNegative() {
		return "", decimal.Zero, apierror.Validacion("El monto abonado no puede ser negativo")
	}
	if pagado.GreaterThan(total) {
		return "", decimal.Zero, apierror.Validacion("El monto abonado no puede exceder el total")
	}
	if pagado.GreaterThanOrEqual(total) {
		return model.VentaCompletada, pagado, nil
	}
	if status != "" {
		return status, pagado, nil
	}
	return model.VentaPendiente, pagado, nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NoEncontrado("Venta no encontrada")
	}
	return venta, nil
}

func (s *ventaService) ListarVentas(ctx context.Context) ([]model.Venta, error) {
	return s.repo.List(ctx)
}

// ── ActualizarVenta ───────────────────────────────────────────────────────────
// Two update paths: recording a payment (amountPaid) or a manual status
// change. A payment reaching the total flips a credit sale to completed.

func (s *ventaService) ActualizarVenta(ctx context.Context, id uuid.UUID, req dto.ActualizarVentaRequest) (*model.Venta, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NoEncontrado("Venta no encontrada")
	}

	switch {
	case req.AmountPaid != nil:
		pagado := *req.AmountPaid
		if pagado.IsNegative() {
			return nil, apierror.Validacion("El monto abonado no puede ser negativo")
		}
		if pagado.GreaterThan(venta.Total) {
			return nil, apierror.Validacion("El monto abonado no puede exceder el total de la venta")
		}
		venta.AmountPaid = pagado
		if pagado.GreaterThanOrEqual(venta.Total) {
			venta.Status = model.VentaCompletada
		}
	case req.Status != "":
		venta.Status = req.Status
	default:
		return nil, apierror.Validacion("Datos de actualización inválidos")
	}

	if err := s.repo.Update(ctx, venta); err != nil {
		return nil, apierror.Interno("error actualizando venta: %v", err)
	}
	return venta, nil
}

// ── EliminarVenta ─────────────────────────────────────────────────────────────
// Restores each product's aggregate stock by the sold quantity, then removes
// the sale and its items, all in one transaction. Lot remainders are NOT
// re-credited, so the FIFO cost basis of future sales no longer reflects the
// returned units.
// TODO: re-credit the consumed lots on deletion so reversals keep the
// per-lot invariant stock == Σ(stock_actual).

func (s *ventaService) EliminarVenta(ctx context.Context, id uuid.UUID) error {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NoEncontrado("Venta no encontrada")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range venta.Items {
			if err := s.productoRepo.UpdateStockTx(tx, item.ProductoID, item.Quantity); err != nil {
				return apierror.Interno("error restaurando stock: %v", err)
			}
		}
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return apierror.Interno("error eliminando venta: %v", err)
		}
		return nil
	})
}

// notFound reports whether err is a gorm "record not found".
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
