package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ─── Categorias ──────────────────────────────────────────────────────────────

type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Listar(ctx context.Context) ([]model.Categoria, error)
	Actualizar(ctx context.Context, c *model.Categoria) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "nombre = ? AND activo = true", nombre).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) Listar(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Where("activo = true").Order("indice ASC").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Actualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Categoria{}).Where("id = ?", id).Update("activo", false).Error
}

// ─── Areas ───────────────────────────────────────────────────────────────────

type AreaRepository interface {
	Crear(ctx context.Context, a *model.Area) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Area, error)
	Listar(ctx context.Context) ([]model.Area, error)
	Actualizar(ctx context.Context, a *model.Area) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type areaRepo struct{ db *gorm.DB }

func NewAreaRepository(db *gorm.DB) AreaRepository { return &areaRepo{db: db} }

func (r *areaRepo) Crear(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *areaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Area, error) {
	var a model.Area
	err := r.db.WithContext(ctx).First(&a, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *areaRepo) Listar(ctx context.Context) ([]model.Area, error) {
	var areas []model.Area
	err := r.db.WithContext(ctx).Where("activo = true").Order("indice ASC").Find(&areas).Error
	return areas, err
}

func (r *areaRepo) Actualizar(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *areaRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Area{}).Where("id = ?", id).Update("activo", false).Error
}
