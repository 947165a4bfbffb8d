package service

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"

	"github.com/google/uuid"
)

// ─── Direcciones ─────────────────────────────────────────────────────────────

type DireccionService interface {
	Crear(ctx context.Context, req dto.CrearDireccionRequest) (*dto.DireccionResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.DireccionResponse, error)
	ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.DireccionResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarDireccionRequest) (*dto.DireccionResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type direccionService struct {
	repo        repository.DireccionRepository
	clienteRepo repository.ClienteRepository
}

func NewDireccionService(repo repository.DireccionRepository, clienteRepo repository.ClienteRepository) DireccionService {
	return &direccionService{repo: repo, clienteRepo: clienteRepo}
}

func mapDireccion(d *model.Direccion) *dto.DireccionResponse {
	return &dto.DireccionResponse{
		ID:         d.ID.String(),
		ClienteID:  d.ClienteID.String(),
		Nombre:     d.Nombre,
		Ciudad:     d.Ciudad,
		Direccion1: d.Direccion1,
		Direccion2: d.Direccion2,
		Telefono:   d.Telefono,
		Detalles:   d.Detalles,
		Activo:     d.Activo,
	}
}

func (s *direccionService) Crear(ctx context.Context, req dto.CrearDireccionRequest) (*dto.DireccionResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.BadID(req.ClienteID)
	}
	if _, err := s.clienteRepo.ObtenerPorID(ctx, clienteID); err != nil {
		return nil, notFound(err, "Cliente no encontrado")
	}

	d := &model.Direccion{
		ClienteID:  clienteID,
		Nombre:     req.Nombre,
		Ciudad:     req.Ciudad,
		Direccion1: req.Direccion1,
		Direccion2: req.Direccion2,
		Telefono:   req.Telefono,
		Detalles:   req.Detalles,
		Activo:     true,
	}
	if err := s.repo.Crear(ctx, d); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapDireccion(d), nil
}

func (s *direccionService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.DireccionResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Direccion no encontrada")
	}
	return mapDireccion(d), nil
}

func (s *direccionService) ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.DireccionResponse, error) {
	list, err := s.repo.ListarPorCliente(ctx, clienteID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.DireccionResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapDireccion(&list[i]))
	}
	return result, nil
}

func (s *direccionService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarDireccionRequest) (*dto.DireccionResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Direccion no encontrada")
	}

	if req.Nombre != nil {
		d.Nombre = *req.Nombre
	}
	if req.Ciudad != nil {
		d.Ciudad = *req.Ciudad
	}
	if req.Direccion1 != nil {
		d.Direccion1 = *req.Direccion1
	}
	if req.Direccion2 != nil {
		d.Direccion2 = *req.Direccion2
	}
	if req.Telefono != nil {
		d.Telefono = *req.Telefono
	}
	if req.Detalles != nil {
		d.Detalles = *req.Detalles
	}

	if err := s.repo.Actualizar(ctx, d); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapDireccion(d), nil
}

func (s *direccionService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return notFound(err, "Direccion no encontrada")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// ─── Envios ──────────────────────────────────────────────────────────────────

type EnvioService interface {
	Crear(ctx context.Context, req dto.CrearEnvioRequest) (*dto.EnvioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EnvioResponse, error)
	Listar(ctx context.Context) ([]dto.EnvioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEnvioRequest) (*dto.EnvioResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type envioService struct {
	repo          repository.EnvioRepository
	direccionRepo repository.DireccionRepository
	clienteRepo   repository.ClienteRepository
}

func NewEnvioService(
	repo repository.EnvioRepository,
	direccionRepo repository.DireccionRepository,
	clienteRepo repository.ClienteRepository,
) EnvioService {
	return &envioService{repo: repo, direccionRepo: direccionRepo, clienteRepo: clienteRepo}
}

func mapEnvio(e *model.Envio) *dto.EnvioResponse {
	resp := &dto.EnvioResponse{
		ID:          e.ID.String(),
		ClienteID:   e.ClienteID.String(),
		DireccionID: e.DireccionID.String(),
		Costo:       e.Costo,
		Estado:      e.Estado,
		Repartidor:  e.Repartidor,
		Descripcion: e.Descripcion,
		Activo:      e.Activo,
	}
	if e.FechaEntrega != nil {
		resp.FechaEntrega = e.FechaEntrega.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

func (s *envioService) Crear(ctx context.Context, req dto.CrearEnvioRequest) (*dto.EnvioResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.BadID(req.ClienteID)
	}
	direccionID, err := uuid.Parse(req.DireccionID)
	if err != nil {
		return nil, apierror.BadID(req.DireccionID)
	}
	if _, err := s.clienteRepo.ObtenerPorID(ctx, clienteID); err != nil {
		return nil, notFound(err, "Cliente no encontrado")
	}
	direccion, err := s.direccionRepo.ObtenerPorID(ctx, direccionID)
	if err != nil {
		return nil, notFound(err, "Direccion no encontrada")
	}
	if direccion.ClienteID != clienteID {
		return nil, apierror.Validation("address", "La direccion no pertenece al cliente")
	}

	e := &model.Envio{
		ClienteID:    clienteID,
		DireccionID:  direccionID,
		Costo:        req.Costo,
		Estado:       req.Estado,
		Repartidor:   req.Repartidor,
		FechaEntrega: parseFechaHora(req.FechaEntrega),
		Descripcion:  req.Descripcion,
		Activo:       true,
	}
	if err := s.repo.Crear(ctx, e); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapEnvio(e), nil
}

func (s *envioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EnvioResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Envio no encontrado")
	}
	return mapEnvio(e), nil
}

func (s *envioService) Listar(ctx context.Context) ([]dto.EnvioResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.EnvioResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapEnvio(&list[i]))
	}
	return result, nil
}

func (s *envioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEnvioRequest) (*dto.EnvioResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Envio no encontrado")
	}

	if req.Costo != nil {
		e.Costo = *req.Costo
	}
	if req.Estado != nil {
		e.Estado = *req.Estado
	}
	if req.Repartidor != nil {
		e.Repartidor = *req.Repartidor
	}
	if req.FechaEntrega != nil {
		e.FechaEntrega = parseFechaHora(*req.FechaEntrega)
	}
	if req.Descripcion != nil {
		e.Descripcion = *req.Descripcion
	}

	if err := s.repo.Actualizar(ctx, e); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapEnvio(e), nil
}

func (s *envioService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return notFound(err, "Envio no encontrado")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
