package repository

import (
	"context"

	"github.com/salva920/AlmacenRepuestos/internal/model"

	"gorm.io/gorm"
)

type TasaCambioRepository interface {
	Create(ctx context.Context, t *model.TasaCambio) error
	// Ultima returns the newest rate by fecha, or gorm.ErrRecordNotFound.
	Ultima(ctx context.Context) (*model.TasaCambio, error)
}

type tasaCambioRepo struct{ db *gorm.DB }

func NewTasaCambioRepository(db *gorm.DB) TasaCambioRepository { return &tasaCambioRepo{db: db} }

func (r *tasaCambioRepo) Create(ctx context.Context, t *model.TasaCambio) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tasaCambioRepo) Ultima(ctx context.Context) (*model.TasaCambio, error) {
	var t model.TasaCambio
	err := r.db.WithContext(ctx).Order("fecha DESC").First(&t).Error
	return &t, err
}
