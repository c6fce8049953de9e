package infra

import (
	"fmt"

	"github.com/salva920/AlmacenRepuestos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate over every domain table.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// gen_random_uuid() defaults on the models require pgcrypto on
	// PostgreSQL < 13.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("pgcrypto: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates all tables. Also used by integration tests
// against a disposable database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Cliente{},
		&model.Producto{},
		&model.Lote{},
		&model.Venta{},
		&model.VentaItem{},
		&model.TransaccionCaja{},
		&model.Gasto{},
		&model.TasaCambio{},
		&model.Usuario{},
	)
}
