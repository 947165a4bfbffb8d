package service

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo        repository.ProveedorRepository
	personaRepo repository.PersonaRepository
}

func NewProveedorService(repo repository.ProveedorRepository, personaRepo repository.PersonaRepository) ProveedorService {
	return &proveedorService{repo: repo, personaRepo: personaRepo}
}

func mapProveedor(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:              p.ID.String(),
		CodigoProveedor: p.CodigoProveedor,
		LugarTrabajo:    p.LugarTrabajo,
		Website:         p.Website,
		Facebook:        p.Facebook,
		Activo:          p.Activo,
		Persona:         mapPersona(p.Persona),
	}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	persona := personaDesde(req.DatosPersona)
	proveedor := &model.Proveedor{
		CodigoProveedor: codigoRol(req.RTN, req.Apellido),
		LugarTrabajo:    req.LugarTrabajo,
		Website:         req.Website,
		Facebook:        req.Facebook,
		Activo:          true,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.personaRepo.CrearTx(tx, persona); err != nil {
			return err
		}
		proveedor.PersonaID = persona.ID
		return s.repo.CrearTx(tx, proveedor)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}

	proveedor.Persona = persona
	return mapProveedor(proveedor), nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Proveedor no encontrado")
	}
	return mapProveedor(p), nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.ProveedorResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapProveedor(&list[i]))
	}
	return result, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Proveedor no encontrado")
	}

	if p.Persona != nil {
		aplicarPersona(p.Persona, req.ActualizarPersona)
	}
	if req.LugarTrabajo != nil {
		p.LugarTrabajo = *req.LugarTrabajo
	}
	if req.Website != nil {
		p.Website = *req.Website
	}
	if req.Facebook != nil {
		p.Facebook = *req.Facebook
	}
	if p.Persona != nil && (req.RTN != nil || req.Apellido != nil) {
		p.CodigoProveedor = codigoRol(p.Persona.RTN, p.Persona.Apellido)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if p.Persona != nil {
			if err := s.personaRepo.ActualizarTx(tx, p.Persona); err != nil {
				return err
			}
		}
		return s.repo.ActualizarTx(tx, p)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}
	return mapProveedor(p), nil
}

func (s *proveedorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return notFound(err, "Proveedor no encontrado")
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.personaRepo.DesactivarTx(tx, p.PersonaID); err != nil {
			return err
		}
		return s.repo.DesactivarTx(tx, id)
	})
	if txErr != nil {
		return apierror.Wrap(txErr)
	}
	return nil
}
