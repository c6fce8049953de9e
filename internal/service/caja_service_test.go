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

func TestCrearTransaccion_SaldoAcumulado(t *testing.T) {
	repo := newStubCajaRepo()
	svc := NewCajaService(repo)
	ctx := context.Background()

	t1, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha:    "2026-03-01",
		Concepto: "Venta del día",
		Moneda:   "USD",
		Entrada:  decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, "100", t1.Saldo.String())

	t2, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha:    "2026-03-02",
		Concepto: "Pago a proveedor",
		Moneda:   "USD",
		Salida:   decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	assert.Equal(t, "70", t2.Saldo.String())

	t3, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha:    "2026-03-03",
		Concepto: "Abono de cliente",
		Moneda:   "USD",
		Entrada:  decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "120", t3.Saldo.String())
}

func TestCrearTransaccion_FechaInvalida(t *testing.T) {
	svc := NewCajaService(newStubCajaRepo())

	_, err := svc.Crear(context.Background(), dto.CrearTransaccionRequest{
		Fecha:    "03/01/2026",
		Concepto: "Venta",
		Moneda:   "USD",
		Entrada:  decimal.NewFromInt(10),
	})
	assert.ErrorContains(t, err, "fecha inválida")
}

func TestCrearTransaccion_SinMovimiento(t *testing.T) {
	svc := NewCajaService(newStubCajaRepo())

	_, err := svc.Crear(context.Background(), dto.CrearTransaccionRequest{
		Fecha:    "2026-03-01",
		Concepto: "Nada",
		Moneda:   "USD",
	})
	assert.ErrorContains(t, err, "entrada o una salida")
}

func TestEliminarTransaccion_RecalculaSaldosPosteriores(t *testing.T) {
	repo := newStubCajaRepo()
	svc := NewCajaService(repo)
	ctx := context.Background()

	t1, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-01", Concepto: "Apertura", Moneda: "USD",
		Entrada: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	t2, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-02", Concepto: "Compra", Moneda: "USD",
		Salida: decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	t3, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-03", Concepto: "Venta", Moneda: "USD",
		Entrada: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// Delete the middle entry: later saldos reseed from t1 (100)
	require.NoError(t, svc.Eliminar(ctx, t2.ID))

	restante, err := repo.FindByID(ctx, t3.ID)
	require.NoError(t, err)
	assert.Equal(t, "110", restante.Saldo.String())

	intacta, err := repo.FindByID(ctx, t1.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", intacta.Saldo.String())
}

func TestEliminarTransaccion_MismaFechaRecalculaHermanas(t *testing.T) {
	repo := newStubCajaRepo()
	svc := NewCajaService(repo)
	ctx := context.Background()

	// Bare YYYY-MM-DD bodies map to midnight, so both entries share the
	// exact fecha; created_at breaks the tie.
	t1, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-01", Concepto: "Apertura", Moneda: "USD",
		Entrada: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	t2, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-01", Concepto: "Venta", Moneda: "USD",
		Entrada: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	require.Equal(t, "150", t2.Saldo.String())

	require.NoError(t, svc.Eliminar(ctx, t1.ID))

	restante, err := repo.FindByID(ctx, t2.ID)
	require.NoError(t, err)
	assert.Equal(t, "50", restante.Saldo.String())
}

func TestEliminarTransaccion_MismaFechaConservaAnteriores(t *testing.T) {
	repo := newStubCajaRepo()
	svc := NewCajaService(repo)
	ctx := context.Background()

	t1, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-01", Concepto: "Apertura", Moneda: "USD",
		Entrada: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	t2, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-01", Concepto: "Compra", Moneda: "USD",
		Salida: decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	t3, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-01", Concepto: "Venta", Moneda: "USD",
		Entrada: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// Delete the middle same-day entry: the later sibling reseeds from t1,
	// the earlier one stays untouched.
	require.NoError(t, svc.Eliminar(ctx, t2.ID))

	restante, err := repo.FindByID(ctx, t3.ID)
	require.NoError(t, err)
	assert.Equal(t, "110", restante.Saldo.String())

	intacta, err := repo.FindByID(ctx, t1.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", intacta.Saldo.String())
}

func TestEliminarTransaccion_PrimeraEntradaReseedDesdeCero(t *testing.T) {
	repo := newStubCajaRepo()
	svc := NewCajaService(repo)
	ctx := context.Background()

	t1, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-01", Concepto: "Apertura", Moneda: "USD",
		Entrada: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	t2, err := svc.Crear(ctx, dto.CrearTransaccionRequest{
		Fecha: "2026-03-02", Concepto: "Venta", Moneda: "USD",
		Entrada: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, t1.ID))

	restante, err := repo.FindByID(ctx, t2.ID)
	require.NoError(t, err)
	assert.Equal(t, "25", restante.Saldo.String())
}

func TestEliminarTransaccion_NoExiste(t *testing.T) {
	svc := NewCajaService(newStubCajaRepo())
	err := svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "no encontrada")
}
