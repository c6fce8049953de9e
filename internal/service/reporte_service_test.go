package service

import (
	"context"
	"testing"

	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReporteSvc() (ReporteService, *stubProductoRepo) {
	productoRepo := newStubProductoRepo()
	return NewReporteService(newStubVentaRepo(), productoRepo, newStubCajaRepo()), productoRepo
}

func TestVentasDiarias_RangoInvalido(t *testing.T) {
	svc, _ := buildReporteSvc()

	_, err := svc.VentasDiarias(context.Background(), dto.RangoFechasFilter{
		Desde: "2026-05-10",
		Hasta: "2026-05-01",
	})
	assert.ErrorContains(t, err, "posterior")
}

func TestVentasDiarias_FechaMalformada(t *testing.T) {
	svc, _ := buildReporteSvc()

	_, err := svc.VentasDiarias(context.Background(), dto.RangoFechasFilter{Desde: "10/05/2026"})
	assert.ErrorContains(t, err, "desde inválido")
}

func TestStockBajo_FiltraPorUmbral(t *testing.T) {
	svc, productoRepo := buildReporteSvc()
	ctx := context.Background()

	require.NoError(t, productoRepo.Create(ctx, &model.Producto{
		Name: "Escaso", Price: decimal.NewFromInt(10), Stock: 2, MinStock: 5,
	}))
	require.NoError(t, productoRepo.Create(ctx, &model.Producto{
		Name: "Abundante", Price: decimal.NewFromInt(10), Stock: 50, MinStock: 5,
	}))

	rows, err := svc.StockBajo(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Escaso", rows[0].Name)
	assert.Equal(t, 2, rows[0].Stock)
}
