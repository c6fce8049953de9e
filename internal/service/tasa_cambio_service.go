package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	tasaCacheKey = "tasa_cambio:ultima"
	tasaCacheTTL = 5 * time.Minute
)

type TasaCambioService interface {
	Crear(ctx context.Context, req dto.CrearTasaRequest) (*model.TasaCambio, error)
	// Ultima returns the current rate, serving from cache when possible.
	Ultima(ctx context.Context) (*model.TasaCambio, error)
}

type tasaCambioService struct {
	repo  repository.TasaCambioRepository
	cache *redis.Client // nil disables caching
}

func NewTasaCambioService(repo repository.TasaCambioRepository, cache *redis.Client) TasaCambioService {
	return &tasaCambioService{repo: repo, cache: cache}
}

func (s *tasaCambioService) Crear(ctx context.Context, req dto.CrearTasaRequest) (*model.TasaCambio, error) {
	tasa := &model.TasaCambio{
		Tasa:  req.Tasa,
		Fecha: time.Now(),
	}
	if err := s.repo.Create(ctx, tasa); err != nil {
		return nil, apierror.Interno("error guardando tasa de cambio: %v", err)
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, tasaCacheKey).Err(); err != nil {
			log.Warn().Err(err).Msg("no se pudo invalidar la cache de tasa de cambio")
		}
	}
	return tasa, nil
}

func (s *tasaCambioService) Ultima(ctx context.Context) (*model.TasaCambio, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, tasaCacheKey).Bytes(); err == nil {
			var cached model.TasaCambio
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	tasa, err := s.repo.Ultima(ctx)
	if err != nil {
		return nil, apierror.NoEncontrado("No hay tasa de cambio registrada")
	}

	if s.cache != nil {
		if raw, err := json.Marshal(tasa); err == nil {
			if err := s.cache.Set(ctx, tasaCacheKey, raw, tasaCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear la tasa de cambio")
			}
		}
	}
	return tasa, nil
}
