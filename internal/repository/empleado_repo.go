package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	Crear(ctx context.Context, e *model.Empleado) error
	CrearTx(tx *gorm.DB, e *model.Empleado) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empleado, error)
	Listar(ctx context.Context) ([]model.Empleado, error)
	Actualizar(ctx context.Context, e *model.Empleado) error
	ActualizarTx(tx *gorm.DB, e *model.Empleado) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	DesactivarTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) Crear(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empleadoRepo) CrearTx(tx *gorm.DB, e *model.Empleado) error {
	return tx.Create(e).Error
}

func (r *empleadoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).Preload("Persona").First(&e, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) Listar(ctx context.Context) ([]model.Empleado, error) {
	var empleados []model.Empleado
	err := r.db.WithContext(ctx).Preload("Persona").Where("activo = true").Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) Actualizar(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empleadoRepo) ActualizarTx(tx *gorm.DB, e *model.Empleado) error {
	return tx.Save(e).Error
}

func (r *empleadoRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Empleado{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *empleadoRepo) DesactivarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Empleado{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *empleadoRepo) DB() *gorm.DB { return r.db }
