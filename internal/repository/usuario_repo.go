package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository is the data access contract for system accounts.
// A diferencia del resto de entidades, un usuario inactivo sigue siendo
// consultable: la administracion necesita listarlo y reactivarlo.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	CrearTx(tx *gorm.DB, u *model.Usuario) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error)
	Listar(ctx context.Context) ([]model.Usuario, error)
	Actualizar(ctx context.Context, u *model.Usuario) error
	ActualizarTx(tx *gorm.DB, u *model.Usuario) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) CrearTx(tx *gorm.DB, u *model.Usuario) error {
	return tx.Create(u).Error
}

func (r *usuarioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Empleado").Preload("Empleado.Persona").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Empleado").Preload("Empleado.Persona").
		First(&u, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Empleado").Preload("Empleado.Persona").
		Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Actualizar(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) ActualizarTx(tx *gorm.DB, u *model.Usuario) error {
	return tx.Save(u).Error
}

func (r *usuarioRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *usuarioRepo) DB() *gorm.DB { return r.db }
