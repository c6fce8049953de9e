package service

import (
	"context"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/google/uuid"
)

type GastoService interface {
	Crear(ctx context.Context, req dto.CrearGastoRequest) (*model.Gasto, error)
	Listar(ctx context.Context) ([]model.Gasto, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type gastoService struct {
	repo repository.GastoRepository
}

func NewGastoService(repo repository.GastoRepository) GastoService {
	return &gastoService{repo: repo}
}

func (s *gastoService) Crear(ctx context.Context, req dto.CrearGastoRequest) (*model.Gasto, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, apierror.Validacion("fecha inválida: use RFC 3339 o YYYY-MM-DD")
	}

	gasto := &model.Gasto{
		Concepto:    req.Concepto,
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		Categoria:   req.Categoria,
		Fecha:       fecha,
		Moneda:      req.Moneda,
	}
	if err := s.repo.Create(ctx, gasto); err != nil {
		return nil, apierror.Interno("error creando gasto: %v", err)
	}
	return gasto, nil
}

func (s *gastoService) Listar(ctx context.Context) ([]model.Gasto, error) {
	return s.repo.List(ctx)
}

func (s *gastoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NoEncontrado("Gasto no encontrado")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Interno("error eliminando gasto: %v", err)
	}
	return nil
}
