package service

import (
	"context"
	"testing"

	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildClienteSvc() (ClienteService, *stubClienteRepo, *stubVentaRepo) {
	clienteRepo := newStubClienteRepo()
	ventaRepo := newStubVentaRepo()
	return NewClienteService(clienteRepo, ventaRepo), clienteRepo, ventaRepo
}

func TestCrearCliente_CedulaDuplicada(t *testing.T) {
	svc, _, _ := buildClienteSvc()
	ctx := context.Background()

	_, err := svc.Crear(ctx, dto.GuardarClienteRequest{Name: "Ana", Cedula: "V-111"})
	require.NoError(t, err)

	_, err = svc.Crear(ctx, dto.GuardarClienteRequest{Name: "Otra Ana", Cedula: "V-111"})
	assert.ErrorContains(t, err, "cédula")
}

func TestCrearCliente_EmailDuplicado(t *testing.T) {
	svc, _, _ := buildClienteSvc()
	ctx := context.Background()
	email := "ana@example.com"

	_, err := svc.Crear(ctx, dto.GuardarClienteRequest{Name: "Ana", Cedula: "V-111", Email: &email})
	require.NoError(t, err)

	_, err = svc.Crear(ctx, dto.GuardarClienteRequest{Name: "Luisa", Cedula: "V-222", Email: &email})
	assert.ErrorContains(t, err, "email")
}

func TestActualizarCliente_PermiteMismaCedula(t *testing.T) {
	svc, _, _ := buildClienteSvc()
	ctx := context.Background()

	c, err := svc.Crear(ctx, dto.GuardarClienteRequest{Name: "Ana", Cedula: "V-111"})
	require.NoError(t, err)

	actualizado, err := svc.Actualizar(ctx, c.ID, dto.GuardarClienteRequest{Name: "Ana María", Cedula: "V-111"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", actualizado.Name)
}

func TestEliminarCliente_ConVentas(t *testing.T) {
	svc, _, ventaRepo := buildClienteSvc()
	ctx := context.Background()

	c, err := svc.Crear(ctx, dto.GuardarClienteRequest{Name: "Ana", Cedula: "V-111"})
	require.NoError(t, err)

	require.NoError(t, ventaRepo.CreateTx(nil, &model.Venta{ClienteID: c.ID}))

	err = svc.Eliminar(ctx, c.ID)
	assert.ErrorContains(t, err, "ventas registradas")
}

func TestEliminarCliente_SinVentas(t *testing.T) {
	svc, clienteRepo, _ := buildClienteSvc()
	ctx := context.Background()

	c, err := svc.Crear(ctx, dto.GuardarClienteRequest{Name: "Ana", Cedula: "V-111"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, c.ID))
	_, err = clienteRepo.FindByID(ctx, c.ID)
	assert.Error(t, err)
}
