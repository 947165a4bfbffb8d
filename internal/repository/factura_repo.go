package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacturaRepository interface {
	CrearTx(tx *gorm.DB, f *model.Factura) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Factura, error)
	Listar(ctx context.Context) ([]model.Factura, error)
	Actualizar(ctx context.Context, f *model.Factura) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) CrearTx(tx *gorm.DB, f *model.Factura) error {
	return tx.Create(f).Error
}

func (r *facturaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).First(&f, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *facturaRepo) Listar(ctx context.Context) ([]model.Factura, error) {
	var facturas []model.Factura
	err := r.db.WithContext(ctx).Where("activo = true").Order("fecha DESC").Find(&facturas).Error
	return facturas, err
}

func (r *facturaRepo) Actualizar(ctx context.Context, f *model.Factura) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *facturaRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Factura{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *facturaRepo) DB() *gorm.DB { return r.db }
