package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ─── Direcciones ─────────────────────────────────────────────────────────────

type DireccionRepository interface {
	Crear(ctx context.Context, d *model.Direccion) error
	CrearTx(tx *gorm.DB, d *model.Direccion) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Direccion, error)
	ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Direccion, error)
	Actualizar(ctx context.Context, d *model.Direccion) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type direccionRepo struct{ db *gorm.DB }

func NewDireccionRepository(db *gorm.DB) DireccionRepository { return &direccionRepo{db: db} }

func (r *direccionRepo) Crear(ctx context.Context, d *model.Direccion) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *direccionRepo) CrearTx(tx *gorm.DB, d *model.Direccion) error {
	return tx.Create(d).Error
}

func (r *direccionRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Direccion, error) {
	var d model.Direccion
	err := r.db.WithContext(ctx).First(&d, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *direccionRepo) ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Direccion, error) {
	var direcciones []model.Direccion
	err := r.db.WithContext(ctx).Where("cliente_id = ? AND activo = true", clienteID).Find(&direcciones).Error
	return direcciones, err
}

func (r *direccionRepo) Actualizar(ctx context.Context, d *model.Direccion) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *direccionRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Direccion{}).Where("id = ?", id).Update("activo", false).Error
}

// ─── Envios ──────────────────────────────────────────────────────────────────

type EnvioRepository interface {
	Crear(ctx context.Context, e *model.Envio) error
	CrearTx(tx *gorm.DB, e *model.Envio) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Envio, error)
	Listar(ctx context.Context) ([]model.Envio, error)
	Actualizar(ctx context.Context, e *model.Envio) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type envioRepo struct{ db *gorm.DB }

func NewEnvioRepository(db *gorm.DB) EnvioRepository { return &envioRepo{db: db} }

func (r *envioRepo) Crear(ctx context.Context, e *model.Envio) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *envioRepo) CrearTx(tx *gorm.DB, e *model.Envio) error {
	return tx.Create(e).Error
}

func (r *envioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Envio, error) {
	var e model.Envio
	err := r.db.WithContext(ctx).Preload("Direccion").First(&e, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *envioRepo) Listar(ctx context.Context) ([]model.Envio, error) {
	var envios []model.Envio
	err := r.db.WithContext(ctx).Preload("Direccion").Where("activo = true").Find(&envios).Error
	return envios, err
}

func (r *envioRepo) Actualizar(ctx context.Context, e *model.Envio) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *envioRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Envio{}).Where("id = ?", id).Update("activo", false).Error
}
