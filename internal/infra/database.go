package infra

import (
	"fmt"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for every entity table.
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

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates/updates all tables. Personas first: every party-role
// table carries a FK to it.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Persona{},
		&model.Cliente{},
		&model.Proveedor{},
		&model.Empleado{},
		&model.Usuario{},
		&model.Categoria{},
		&model.Area{},
		&model.Producto{},
		&model.Direccion{},
		&model.Envio{},
		&model.Orden{},
		&model.OrdenDetalle{},
		&model.Factura{},
	)
}
