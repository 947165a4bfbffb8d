package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Crear(ctx context.Context, p *model.Proveedor) error
	CrearTx(tx *gorm.DB, p *model.Proveedor) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	Listar(ctx context.Context) ([]model.Proveedor, error)
	Actualizar(ctx context.Context, p *model.Proveedor) error
	ActualizarTx(tx *gorm.DB, p *model.Proveedor) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	DesactivarTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Crear(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) CrearTx(tx *gorm.DB, p *model.Proveedor) error {
	return tx.Create(p).Error
}

func (r *proveedorRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).Preload("Persona").First(&p, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) Listar(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).Preload("Persona").Where("activo = true").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) Actualizar(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepo) ActualizarTx(tx *gorm.DB, p *model.Proveedor) error {
	return tx.Save(p).Error
}

func (r *proveedorRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Proveedor{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *proveedorRepo) DesactivarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Proveedor{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *proveedorRepo) DB() *gorm.DB { return r.db }
