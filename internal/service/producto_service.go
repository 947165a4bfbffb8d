package service

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	proveedorRepo repository.ProveedorRepository
}

func NewProductoService(
	repo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	proveedorRepo repository.ProveedorRepository,
) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo, proveedorRepo: proveedorRepo}
}

func mapProducto(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:           p.ID.String(),
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Precio1:      p.Precio1,
		Precio2:      p.Precio2,
		Precio3:      p.Precio3,
		Precio4:      p.Precio4,
		Costo:        p.Costo,
		Stock:        p.Stock,
		StockMinimo:  p.StockMinimo,
		Marca:        p.Marca,
		Serie:        p.Serie,
		Color:        p.Color,
		Anio:         p.Anio,
		Peso:         p.Peso,
		Tamanio:      p.Tamanio,
		EsConsumible: p.EsConsumible,
		Activo:       p.Activo,
	}
	if p.CategoriaID != nil {
		id := p.CategoriaID.String()
		resp.CategoriaID = &id
	}
	if p.ProveedorID != nil {
		id := p.ProveedorID.String()
		resp.ProveedorID = &id
	}
	if p.FechaVencimiento != nil {
		resp.FechaVencimiento = p.FechaVencimiento.Format(fechaCorta)
	}
	if p.FechaLimiteVenta != nil {
		resp.FechaLimiteVenta = p.FechaLimiteVenta.Format(fechaCorta)
	}
	return resp
}

// resolverReferencias valida que la categoria y el proveedor referenciados
// existan y esten activos.
func (s *productoService) resolverReferencias(ctx context.Context, categoria, proveedor *string) (*uuid.UUID, *uuid.UUID, error) {
	var categoriaID, proveedorID *uuid.UUID
	if categoria != nil && *categoria != "" {
		id, err := uuid.Parse(*categoria)
		if err != nil {
			return nil, nil, apierror.BadID(*categoria)
		}
		if _, err := s.categoriaRepo.ObtenerPorID(ctx, id); err != nil {
			return nil, nil, notFound(err, "Categoria no encontrada")
		}
		categoriaID = &id
	}
	if proveedor != nil && *proveedor != "" {
		id, err := uuid.Parse(*proveedor)
		if err != nil {
			return nil, nil, apierror.BadID(*proveedor)
		}
		if _, err := s.proveedorRepo.ObtenerPorID(ctx, id); err != nil {
			return nil, nil, notFound(err, "Proveedor no encontrado")
		}
		proveedorID = &id
	}
	return categoriaID, proveedorID, nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categoriaID, proveedorID, err := s.resolverReferencias(ctx, req.CategoriaID, req.ProveedorID)
	if err != nil {
		return nil, err
	}

	p := &model.Producto{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		CategoriaID:      categoriaID,
		ProveedorID:      proveedorID,
		Precio1:          req.Precio1,
		Precio2:          req.Precio2,
		Precio3:          req.Precio3,
		Precio4:          req.Precio4,
		Costo:            req.Costo,
		Stock:            req.Stock,
		StockMinimo:      req.StockMinimo,
		Marca:            req.Marca,
		Serie:            req.Serie,
		Color:            req.Color,
		Anio:             req.Anio,
		Peso:             req.Peso,
		Tamanio:          req.Tamanio,
		FechaVencimiento: parseFecha(req.FechaVencimiento),
		FechaLimiteVenta: parseFecha(req.FechaLimiteVenta),
		EsConsumible:     req.EsConsumible,
		Activo:           true,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapProducto(p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Producto no encontrado")
	}
	return mapProducto(p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.ProductoResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapProducto(&list[i]))
	}
	return result, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Producto no encontrado")
	}

	categoriaID, proveedorID, err := s.resolverReferencias(ctx, req.CategoriaID, req.ProveedorID)
	if err != nil {
		return nil, err
	}
	if categoriaID != nil {
		p.CategoriaID = categoriaID
	}
	if proveedorID != nil {
		p.ProveedorID = proveedorID
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Precio1 != nil {
		p.Precio1 = *req.Precio1
	}
	if req.Precio2 != nil {
		p.Precio2 = *req.Precio2
	}
	if req.Precio3 != nil {
		p.Precio3 = *req.Precio3
	}
	if req.Precio4 != nil {
		p.Precio4 = *req.Precio4
	}
	if req.Costo != nil {
		p.Costo = *req.Costo
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.Marca != nil {
		p.Marca = *req.Marca
	}
	if req.Serie != nil {
		p.Serie = *req.Serie
	}
	if req.Color != nil {
		p.Color = *req.Color
	}
	if req.Anio != nil {
		p.Anio = *req.Anio
	}
	if req.Peso != nil {
		p.Peso = *req.Peso
	}
	if req.Tamanio != nil {
		p.Tamanio = *req.Tamanio
	}
	if req.FechaVencimiento != nil {
		p.FechaVencimiento = parseFecha(*req.FechaVencimiento)
	}
	if req.FechaLimiteVenta != nil {
		p.FechaLimiteVenta = parseFecha(*req.FechaLimiteVenta)
	}
	if req.EsConsumible != nil {
		p.EsConsumible = *req.EsConsumible
	}

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapProducto(p), nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return notFound(err, "Producto no encontrado")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
