package service

import (
	"context"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CajaService interface {
	Crear(ctx context.Context, req dto.CrearTransaccionRequest) (*model.TransaccionCaja, error)
	Listar(ctx context.Context) ([]model.TransaccionCaja, error)
	// Eliminar removes the entry and recomputes the running balance of every
	// entry at or after it in ledger order (fecha, created_at), seeded from
	// the last surviving entry before the deleted one.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type cajaService struct {
	repo repository.CajaRepository
}

func NewCajaService(repo repository.CajaRepository) CajaService {
	return &cajaService{repo: repo}
}

// parseFecha accepts RFC 3339 or a bare YYYY-MM-DD date.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (s *cajaService) Crear(ctx context.Context, req dto.CrearTransaccionRequest) (*model.TransaccionCaja, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, apierror.Validacion("fecha inválida: use RFC 3339 o YYYY-MM-DD")
	}
	if req.Entrada.IsNegative() || req.Salida.IsNegative() {
		return nil, apierror.Validacion("entrada y salida no pueden ser negativas")
	}
	if req.Entrada.IsZero() && req.Salida.IsZero() {
		return nil, apierror.Validacion("La transacción debe tener una entrada o una salida")
	}

	saldoAnterior := decimal.Zero
	if ultima, err := s.repo.UltimaPorFecha(ctx); err == nil {
		saldoAnterior = ultima.Saldo
	} else if !notFound(err) {
		return nil, apierror.Interno("error consultando saldo: %v", err)
	}

	t := &model.TransaccionCaja{
		Fecha:      fecha,
		Concepto:   req.Concepto,
		Moneda:     req.Moneda,
		Entrada:    req.Entrada,
		Salida:     req.Salida,
		Saldo:      saldoAnterior.Add(req.Entrada).Sub(req.Salida),
		TasaCambio: req.TasaCambio,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apierror.Interno("error creando transacción: %v", err)
	}
	return t, nil
}

func (s *cajaService) Listar(ctx context.Context) ([]model.TransaccionCaja, error) {
	return s.repo.List(ctx)
}

func (s *cajaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NoEncontrado("Transacción no encontrada")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return apierror.Interno("error eliminando transacción: %v", err)
		}

		// Seed the recompute from the newest surviving entry strictly before
		// the deleted ledger position; with no such entry the chain restarts
		// from zero. Same-fecha entries sort by created_at, so siblings of the
		// deleted entry are recomputed, never used as seed.
		saldo := decimal.Zero
		if anterior, err := s.repo.UltimaAnteriorTx(tx, t.Fecha, t.CreatedAt); err == nil {
			saldo = anterior.Saldo
		} else if !notFound(err) {
			return apierror.Interno("error consultando saldo anterior: %v", err)
		}

		posteriores, err := s.repo.ListDesdeTx(tx, t.Fecha, t.CreatedAt)
		if err != nil {
			return apierror.Interno("error consultando transacciones posteriores: %v", err)
		}
		for _, p := range posteriores {
			saldo = saldo.Add(p.Entrada).Sub(p.Salida)
			if err := s.repo.UpdateSaldoTx(tx, p.ID, saldo); err != nil {
				return apierror.Interno("error recalculando saldo: %v", err)
			}
		}
		return nil
	})
}
