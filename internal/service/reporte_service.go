package service

import (
	"context"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/repository"
)

const topProductosLimit = 10

// ReporteService exposes the read-only reporting projections.
type ReporteService interface {
	VentasDiarias(ctx context.Context, filter dto.RangoFechasFilter) ([]dto.VentaDiaria, error)
	StockBajo(ctx context.Context) ([]dto.StockBajo, error)
	TopProductos(ctx context.Context) ([]dto.TopProducto, error)
	ResumenCaja(ctx context.Context) ([]dto.SaldoCaja, error)
}

type reporteService struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	cajaRepo     repository.CajaRepository
}

func NewReporteService(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	cajaRepo repository.CajaRepository,
) ReporteService {
	return &reporteService{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		cajaRepo:     cajaRepo,
	}
}

// VentasDiarias defaults to the last 30 days when the range is open.
func (s *reporteService) VentasDiarias(ctx context.Context, filter dto.RangoFechasFilter) ([]dto.VentaDiaria, error) {
	hasta := time.Now()
	if filter.Hasta != "" {
		t, err := time.Parse("2006-01-02", filter.Hasta)
		if err != nil {
			return nil, apierror.Validacion("hasta inválido: use YYYY-MM-DD")
		}
		hasta = t
	}

	desde := hasta.AddDate(0, 0, -30)
	if filter.Desde != "" {
		t, err := time.Parse("2006-01-02", filter.Desde)
		if err != nil {
			return nil, apierror.Validacion("desde inválido: use YYYY-MM-DD")
		}
		desde = t
	}
	if desde.After(hasta) {
		return nil, apierror.Validacion("desde no puede ser posterior a hasta")
	}

	return s.ventaRepo.VentasDiarias(ctx, desde, hasta)
}

func (s *reporteService) StockBajo(ctx context.Context) ([]dto.StockBajo, error) {
	productos, err := s.productoRepo.StockBajo(ctx)
	if err != nil {
		return nil, apierror.Interno("error consultando stock bajo: %v", err)
	}
	rows := make([]dto.StockBajo, 0, len(productos))
	for _, p := range productos {
		rows = append(rows, dto.StockBajo{
			ProductoID: p.ID.String(),
			Name:       p.Name,
			Stock:      p.Stock,
			MinStock:   p.MinStock,
		})
	}
	return rows, nil
}

func (s *reporteService) TopProductos(ctx context.Context) ([]dto.TopProducto, error) {
	return s.ventaRepo.TopProductos(ctx, topProductosLimit)
}

func (s *reporteService) ResumenCaja(ctx context.Context) ([]dto.SaldoCaja, error) {
	return s.cajaRepo.SaldosPorMoneda(ctx)
}
