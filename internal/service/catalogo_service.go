package service

import (
	"context"
	"errors"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ─── Categorias ──────────────────────────────────────────────────────────────

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func mapCategoria(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID.String(),
		Indice:      c.Indice,
		CodigoPadre: c.CodigoPadre,
		Codigo:      c.Codigo,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activo:      c.Activo,
	}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	existente, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}
	if existente != nil {
		return nil, apierror.Conflict("Ya existe una categoria con ese nombre")
	}

	c := &model.Categoria{
		Indice:      req.Indice,
		CodigoPadre: req.CodigoPadre,
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      true,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapCategoria(c), nil
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Categoria no encontrada")
	}
	return mapCategoria(c), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapCategoria(&list[i]))
	}
	return result, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Categoria no encontrada")
	}

	if req.Nombre != nil && *req.Nombre != c.Nombre {
		existente, err := s.repo.ObtenerPorNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		if existente != nil && existente.ID != id {
			return nil, apierror.Conflict("Ya existe una categoria con ese nombre")
		}
		c.Nombre = *req.Nombre
	}
	if req.Indice != nil {
		c.Indice = *req.Indice
	}
	if req.CodigoPadre != nil {
		c.CodigoPadre = *req.CodigoPadre
	}
	if req.Codigo != nil {
		c.Codigo = *req.Codigo
	}
	if req.Descripcion != nil {
		c.Descripcion = *req.Descripcion
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapCategoria(c), nil
}

func (s *categoriaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return notFound(err, "Categoria no encontrada")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// ─── Areas ───────────────────────────────────────────────────────────────────

type AreaService interface {
	Crear(ctx context.Context, req dto.CrearAreaRequest) (*dto.AreaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.AreaResponse, error)
	Listar(ctx context.Context) ([]dto.AreaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAreaRequest) (*dto.AreaResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type areaService struct {
	repo         repository.AreaRepository
	empleadoRepo repository.EmpleadoRepository
}

func NewAreaService(repo repository.AreaRepository, empleadoRepo repository.EmpleadoRepository) AreaService {
	return &areaService{repo: repo, empleadoRepo: empleadoRepo}
}

func mapArea(a *model.Area) *dto.AreaResponse {
	resp := &dto.AreaResponse{
		ID:          a.ID.String(),
		Indice:      a.Indice,
		CodigoPadre: a.CodigoPadre,
		Codigo:      a.Codigo,
		Nombre:      a.Nombre,
		Telefono:    a.Telefono,
		Detalles:    a.Detalles,
		Activo:      a.Activo,
	}
	if a.EmpleadoID != nil {
		id := a.EmpleadoID.String()
		resp.EmpleadoID = &id
	}
	return resp
}

func (s *areaService) resolverEmpleado(ctx context.Context, empleado *string) (*uuid.UUID, error) {
	if empleado == nil || *empleado == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*empleado)
	if err != nil {
		return nil, apierror.BadID(*empleado)
	}
	if _, err := s.empleadoRepo.ObtenerPorID(ctx, id); err != nil {
		return nil, notFound(err, "Empleado no encontrado")
	}
	return &id, nil
}

func (s *areaService) Crear(ctx context.Context, req dto.CrearAreaRequest) (*dto.AreaResponse, error) {
	empleadoID, err := s.resolverEmpleado(ctx, req.EmpleadoID)
	if err != nil {
		return nil, err
	}

	a := &model.Area{
		Indice:      req.Indice,
		CodigoPadre: req.CodigoPadre,
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Telefono:    req.Telefono,
		EmpleadoID:  empleadoID,
		Detalles:    req.Detalles,
		Activo:      true,
	}
	if err := s.repo.Crear(ctx, a); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapArea(a), nil
}

func (s *areaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.AreaResponse, error) {
	a, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Area no encontrada")
	}
	return mapArea(a), nil
}

func (s *areaService) Listar(ctx context.Context) ([]dto.AreaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.AreaResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapArea(&list[i]))
	}
	return result, nil
}

func (s *areaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAreaRequest) (*dto.AreaResponse, error) {
	a, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Area no encontrada")
	}

	empleadoID, err := s.resolverEmpleado(ctx, req.EmpleadoID)
	if err != nil {
		return nil, err
	}
	if empleadoID != nil {
		a.EmpleadoID = empleadoID
	}

	if req.Indice != nil {
		a.Indice = *req.Indice
	}
	if req.CodigoPadre != nil {
		a.CodigoPadre = *req.CodigoPadre
	}
	if req.Codigo != nil {
		a.Codigo = *req.Codigo
	}
	if req.Nombre != nil {
		a.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		a.Telefono = *req.Telefono
	}
	if req.Detalles != nil {
		a.Detalles = *req.Detalles
	}

	if err := s.repo.Actualizar(ctx, a); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapArea(a), nil
}

func (s *areaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return notFound(err, "Area no encontrada")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
