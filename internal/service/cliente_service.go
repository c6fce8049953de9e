package service

import (
	"context"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/google/uuid"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.GuardarClienteRequest) (*model.Cliente, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Listar(ctx context.Context) ([]model.Cliente, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarClienteRequest) (*model.Cliente, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// VentasDeCliente lists the customer's sales, newest first.
	VentasDeCliente(ctx context.Context, id uuid.UUID) ([]model.Venta, error)
}

type clienteService struct {
	repo      repository.ClienteRepository
	ventaRepo repository.VentaRepository
}

func NewClienteService(repo repository.ClienteRepository, ventaRepo repository.VentaRepository) ClienteService {
	return &clienteService{repo: repo, ventaRepo: ventaRepo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.GuardarClienteRequest) (*model.Cliente, error) {
	if existente, err := s.repo.FindByCedula(ctx, req.Cedula); err == nil && existente != nil {
		return nil, apierror.Conflicto("Ya existe un cliente con la cédula %s", req.Cedula)
	}
	if req.Email != nil && *req.Email != "" {
		if existente, err := s.repo.FindByEmail(ctx, *req.Email); err == nil && existente != nil {
			return nil, apierror.Conflicto("Ya existe un cliente con el email %s", *req.Email)
		}
	}

	cliente := &model.Cliente{
		Name:    req.Name,
		Cedula:  req.Cedula,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, apierror.Interno("error creando cliente: %v", err)
	}
	return cliente, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NoEncontrado("Cliente no encontrado")
	}
	return cliente, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]model.Cliente, error) {
	return s.repo.List(ctx)
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.GuardarClienteRequest) (*model.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NoEncontrado("Cliente no encontrado")
	}

	if req.Cedula != cliente.Cedula {
		if existente, err := s.repo.FindByCedula(ctx, req.Cedula); err == nil && existente != nil && existente.ID != id {
			return nil, apierror.Conflicto("Ya existe un cliente con la cédula %s", req.Cedula)
		}
	}
	if req.Email != nil && *req.Email != "" {
		if existente, err := s.repo.FindByEmail(ctx, *req.Email); err == nil && existente != nil && existente.ID != id {
			return nil, apierror.Conflicto("Ya existe un cliente con el email %s", *req.Email)
		}
	}

	cliente.Name = req.Name
	cliente.Cedula = req.Cedula
	cliente.Email = req.Email
	cliente.Phone = req.Phone
	cliente.Address = req.Address

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, apierror.Interno("error actualizando cliente: %v", err)
	}
	return cliente, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NoEncontrado("Cliente no encontrado")
	}
	ventas, err := s.ventaRepo.ListByCliente(ctx, id)
	if err != nil {
		return apierror.Interno("error verificando ventas: %v", err)
	}
	if len(ventas) > 0 {
		return apierror.Conflicto("No se puede eliminar el cliente porque tiene ventas registradas")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Interno("error eliminando cliente: %v", err)
	}
	return nil
}

func (s *clienteService) VentasDeCliente(ctx context.Context, id uuid.UUID) ([]model.Venta, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apierror.NoEncontrado("Cliente no encontrado")
	}
	return s.ventaRepo.ListByCliente(ctx, id)
}
