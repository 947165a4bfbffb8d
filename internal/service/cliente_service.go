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

// ClienteService defines business operations for clientes.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo        repository.ClienteRepository
	personaRepo repository.PersonaRepository
}

func NewClienteService(repo repository.ClienteRepository, personaRepo repository.PersonaRepository) ClienteService {
	return &clienteService{repo: repo, personaRepo: personaRepo}
}

func mapCliente(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID.String(),
		CodigoCliente: c.CodigoCliente,
		PagaIVA:       c.PagaIVA,
		Activo:        c.Activo,
		Persona:       mapPersona(c.Persona),
	}
}

// Crear registers the persona and the cliente in one transaction so a failed
// cliente insert never leaves an orphan persona behind.
func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	persona := personaDesde(req.DatosPersona)
	cliente := &model.Cliente{
		CodigoCliente: codigoRol(req.RTN, req.Apellido),
		PagaIVA:       *req.PagaIVA,
		Activo:        true,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.personaRepo.CrearTx(tx, persona); err != nil {
			return err
		}
		cliente.PersonaID = persona.ID
		return s.repo.CrearTx(tx, cliente)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}

	cliente.Persona = persona
	return mapCliente(cliente), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Cliente no encontrado")
	}
	return mapCliente(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapCliente(&list[i]))
	}
	return result, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Cliente no encontrado")
	}

	if c.Persona != nil {
		aplicarPersona(c.Persona, req.ActualizarPersona)
	}
	if req.PagaIVA != nil {
		c.PagaIVA = *req.PagaIVA
	}
	// codeCustomer follows the persona when rtn or lastName change
	if c.Persona != nil && (req.RTN != nil || req.Apellido != nil) {
		c.CodigoCliente = codigoRol(c.Persona.RTN, c.Persona.Apellido)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if c.Persona != nil {
			if err := s.personaRepo.ActualizarTx(tx, c.Persona); err != nil {
				return err
			}
		}
		return s.repo.ActualizarTx(tx, c)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}
	return mapCliente(c), nil
}

// Desactivar marks both the cliente and its persona inactive.
func (s *clienteService) Desactivar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return notFound(err, "Cliente no encontrado")
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.personaRepo.DesactivarTx(tx, c.PersonaID); err != nil {
			return err
		}
		return s.repo.DesactivarTx(tx, id)
	})
	if txErr != nil {
		return apierror.Wrap(txErr)
	}
	return nil
}
