package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonaRepository is the data access contract for personas. Role-entity
// workflows create personas inside their own transactions, so every write
// has a Tx variant.
type PersonaRepository interface {
	Crear(ctx context.Context, p *model.Persona) error
	CrearTx(tx *gorm.DB, p *model.Persona) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Persona, error)
	Actualizar(ctx context.Context, p *model.Persona) error
	ActualizarTx(tx *gorm.DB, p *model.Persona) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	DesactivarTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type personaRepo struct{ db *gorm.DB }

func NewPersonaRepository(db *gorm.DB) PersonaRepository { return &personaRepo{db: db} }

func (r *personaRepo) Crear(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personaRepo) CrearTx(tx *gorm.DB, p *model.Persona) error {
	return tx.Create(p).Error
}

func (r *personaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Persona, error) {
	var p model.Persona
	err := r.db.WithContext(ctx).First(&p, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personaRepo) Actualizar(ctx context.Context, p *model.Persona) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *personaRepo) ActualizarTx(tx *gorm.DB, p *model.Persona) error {
	return tx.Save(p).Error
}

func (r *personaRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Persona{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *personaRepo) DesactivarTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Persona{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *personaRepo) DB() *gorm.DB { return r.db }
