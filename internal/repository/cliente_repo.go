package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository is the data access contract for clientes. Reads expand
// the owned Persona.
type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	CrearTx(tx *gorm.DB, c *model.Cliente) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Listar(ctx context.Context) ([]model.Cliente, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	ActualizarTx(tx *gorm.DB, c *model.Cliente) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	DesactivarTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) CrearTx(tx *gorm.DB, c *model.Cliente) error {
	return tx.Create(c).Error
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Persona").First(&c, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Listar(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Preload("Persona").Where("activo = true").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Actualizar(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) ActualizarTx(tx *gorm.DB, c *model.Cliente) error {
	return tx.Save(c).Error
}

func (r *clienteRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *clienteRepo) DesactivarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Cliente{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *clienteRepo) DB() *gorm.DB { return r.db }
