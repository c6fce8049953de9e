package service

import (
	"context"
	"testing"

	"github.com/salva920/AlmacenRepuestos/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cache behavior is exercised with a nil client: the service must work
// straight against the repository.

func TestTasaCambio_UltimaSinRegistro(t *testing.T) {
	svc := NewTasaCambioService(&stubTasaRepo{}, nil)

	_, err := svc.Ultima(context.Background())
	assert.ErrorContains(t, err, "No hay tasa de cambio registrada")
}

func TestTasaCambio_CrearYConsultar(t *testing.T) {
	repo := &stubTasaRepo{}
	svc := NewTasaCambioService(repo, nil)
	ctx := context.Background()

	_, err := svc.Crear(ctx, dto.CrearTasaRequest{Tasa: decimal.NewFromFloat(36.5)})
	require.NoError(t, err)
	_, err = svc.Crear(ctx, dto.CrearTasaRequest{Tasa: decimal.NewFromFloat(37.2)})
	require.NoError(t, err)

	ultima, err := svc.Ultima(ctx)
	require.NoError(t, err)
	assert.Equal(t, "37.2", ultima.Tasa.String())
}
