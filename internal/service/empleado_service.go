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

type EmpleadoService interface {
	Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error)
	Listar(ctx context.Context) ([]dto.EmpleadoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type empleadoService struct {
	repo        repository.EmpleadoRepository
	personaRepo repository.PersonaRepository
}

func NewEmpleadoService(repo repository.EmpleadoRepository, personaRepo repository.PersonaRepository) EmpleadoService {
	return &empleadoService{repo: repo, personaRepo: personaRepo}
}

func mapEmpleado(e *model.Empleado) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		ID:             e.ID.String(),
		CodigoEmpleado: e.CodigoEmpleado,
		LugarTrabajo:   e.LugarTrabajo,
		Activo:         e.Activo,
		Persona:        mapPersona(e.Persona),
	}
}

func (s *empleadoService) Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	persona := personaDesde(req.DatosPersona)
	empleado := &model.Empleado{
		CodigoEmpleado: codigoRol(req.RTN, req.Apellido),
		LugarTrabajo:   req.LugarTrabajo,
		Activo:         true,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.personaRepo.CrearTx(tx, persona); err != nil {
			return err
		}
		empleado.PersonaID = persona.ID
		return s.repo.CrearTx(tx, empleado)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}

	empleado.Persona = persona
	return mapEmpleado(empleado), nil
}

func (s *empleadoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.EmpleadoResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Empleado no encontrado")
	}
	return mapEmpleado(e), nil
}

func (s *empleadoService) Listar(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.EmpleadoResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapEmpleado(&list[i]))
	}
	return result, nil
}

func (s *empleadoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Empleado no encontrado")
	}

	if e.Persona != nil {
		aplicarPersona(e.Persona, req.ActualizarPersona)
	}
	if req.LugarTrabajo != nil {
		e.LugarTrabajo = *req.LugarTrabajo
	}
	if e.Persona != nil && (req.RTN != nil || req.Apellido != nil) {
		e.CodigoEmpleado = codigoRol(e.Persona.RTN, e.Persona.Apellido)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if e.Persona != nil {
			if err := s.personaRepo.ActualizarTx(tx, e.Persona); err != nil {
				return err
			}
		}
		return s.repo.ActualizarTx(tx, e)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}
	return mapEmpleado(e), nil
}

func (s *empleadoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return notFound(err, "Empleado no encontrado")
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.personaRepo.DesactivarTx(tx, e.PersonaID); err != nil {
			return err
		}
		return s.repo.DesactivarTx(tx, id)
	})
	if txErr != nil {
		return apierror.Wrap(txErr)
	}
	return nil
}
