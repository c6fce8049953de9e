package service

import (
	"context"
	"testing"

	"github.com/salva920/AlmacenRepuestos/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProducto_SiembraLoteInicial(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Name:     "Filtro de aire",
		Price:    decimal.NewFromInt(12),
		Stock:    8,
		MinStock: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, p.Stock)
	require.Len(t, p.Lotes, 1)
	assert.Equal(t, 8, p.Lotes[0].Cantidad)
	assert.Equal(t, 8, p.Lotes[0].StockActual)
	// the seed lot's purchase price is the catalog price
	assert.Equal(t, "12", p.Lotes[0].Precio.String())
}

func TestCrearProducto_SinStockSinLote(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	p, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Name:  "Retén",
		Price: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Empty(t, p.Lotes)
}

func TestIngresarStock_CreaLoteEIncrementa(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)
	ctx := context.Background()

	p, err := svc.Crear(ctx, dto.CrearProductoRequest{
		Name:  "Bombillo",
		Price: decimal.NewFromInt(6),
		Stock: 4,
	})
	require.NoError(t, err)

	actualizado, err := svc.IngresarStock(ctx, p.ID, dto.IngresoStockRequest{
		Cantidad: 10,
		Precio:   decimal.NewFromFloat(3.5),
	})
	require.NoError(t, err)

	assert.Equal(t, 14, actualizado.Stock)
	require.Len(t, actualizado.Lotes, 2)
	assert.Equal(t, "3.5", actualizado.Lotes[1].Precio.String())
	assert.Equal(t, 10, actualizado.Lotes[1].StockActual)
}

func TestIngresarStock_ProductoInexistente(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo())

	_, err := svc.IngresarStock(context.Background(), uuid.New(), dto.IngresoStockRequest{
		Cantidad: 5,
		Precio:   decimal.NewFromInt(2),
	})
	assert.ErrorContains(t, err, "no encontrado")
}

func TestEliminarProducto_UsadoEnVentas(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)
	ctx := context.Background()

	p, err := svc.Crear(ctx, dto.CrearProductoRequest{
		Name:  "Disco de freno",
		Price: decimal.NewFromInt(45),
		Stock: 2,
	})
	require.NoError(t, err)
	repo.usados[p.ID] = true

	err = svc.Eliminar(ctx, p.ID)
	assert.ErrorContains(t, err, "utilizado en ventas")

	// Without references it deletes
	repo.usados[p.ID] = false
	require.NoError(t, svc.Eliminar(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.Error(t, err)
}
