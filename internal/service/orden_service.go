package service

import (
	"context"
	"fmt"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnvioPendiente is the initial status of a shipping record created by the
// order workflow.
const EnvioPendiente = "pendiente"

type OrdenService interface {
	Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.OrdenResponse, error)
	Listar(ctx context.Context) ([]dto.OrdenResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error

	CrearDetalle(ctx context.Context, req dto.CrearOrdenDetalleRequest) (*dto.OrdenDetalleResponse, error)
	ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.OrdenDetalleResponse, error)
	ListarDetalles(ctx context.Context) ([]dto.OrdenDetalleResponse, error)
	ListarDetallesPorOrden(ctx context.Context, ordenID uuid.UUID) ([]dto.OrdenDetalleResponse, error)
	ActualizarDetalle(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenDetalleRequest) (*dto.OrdenDetalleResponse, error)
	DesactivarDetalle(ctx context.Context, id uuid.UUID) error
}

type ordenService struct {
	repo          repository.OrdenRepository
	personaRepo   repository.PersonaRepository
	clienteRepo   repository.ClienteRepository
	empleadoRepo  repository.EmpleadoRepository
	productoRepo  repository.ProductoRepository
	direccionRepo repository.DireccionRepository
	envioRepo     repository.EnvioRepository
}

func NewOrdenService(
	repo repository.OrdenRepository,
	personaRepo repository.PersonaRepository,
	clienteRepo repository.ClienteRepository,
	empleadoRepo repository.EmpleadoRepository,
	productoRepo repository.ProductoRepository,
	direccionRepo repository.DireccionRepository,
	envioRepo repository.EnvioRepository,
) OrdenService {
	return &ordenService{
		repo:          repo,
		personaRepo:   personaRepo,
		clienteRepo:   clienteRepo,
		empleadoRepo:  empleadoRepo,
		productoRepo:  productoRepo,
		direccionRepo: direccionRepo,
		envioRepo:     envioRepo,
	}
}

func mapDetalle(d *model.OrdenDetalle) *dto.OrdenDetalleResponse {
	resp := &dto.OrdenDetalleResponse{
		ID:         d.ID.String(),
		OrdenID:    d.OrdenID.String(),
		ProductoID: d.ProductoID.String(),
		Cantidad:   d.Cantidad,
		Precio:     d.Precio,
		Subtotal:   d.Subtotal,
		Impuesto:   d.Impuesto,
		Descuento:  d.Descuento,
		Total:      d.Total,
		Notas:      d.Notas,
		Activo:     d.Activo,
	}
	if d.Producto != nil {
		resp.Producto = d.Producto.Nombre
	}
	return resp
}

func mapOrden(o *model.Orden) *dto.OrdenResponse {
	resp := &dto.OrdenResponse{
		ID:          o.ID.String(),
		NumeroOrden: o.NumeroOrden,
		Canal:       o.Canal,
		TipoOrden:   o.TipoOrden,
		NumeroMesa:  o.NumeroMesa,
		Estado:      o.Estado,
		Descripcion: o.Descripcion,
		Activo:      o.Activo,
	}
	if o.EmpleadoID != nil {
		id := o.EmpleadoID.String()
		resp.EmpleadoID = &id
	}
	if o.EnvioID != nil {
		id := o.EnvioID.String()
		resp.EnvioID = &id
	}
	if o.ClienteID != nil {
		id := o.ClienteID.String()
		resp.ClienteID = &id
	}
	for i := range o.Detalles {
		resp.Detalles = append(resp.Detalles, *mapDetalle(&o.Detalles[i]))
	}
	return resp
}

// lineaTotal recomputes a line total; client-sent totals are never trusted.
func lineaTotal(d *model.OrdenDetalle) {
	d.Total = d.Subtotal.Add(d.Impuesto).Sub(d.Descuento)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// The whole aggregate is written in one transaction:
//   1. Pre-flight (outside TX): resolve empleado/cliente refs, validate every
//      product, check the canal/tipo structural rules.
//   2. BEGIN TX: persona+cliente inline, orden, direccion+envio for delivery
//      types, batch insert of detalles.
//   3. COMMIT; any failed step rolls everything back.

func (s *ordenService) Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	orden := &model.Orden{
		NumeroOrden: req.NumeroOrden,
		Canal:       req.Canal,
		TipoOrden:   req.TipoOrden,
		NumeroMesa:  req.NumeroMesa,
		Estado:      model.OrdenAbierta,
		Descripcion: req.Descripcion,
		Activo:      true,
	}

	// Structural rules per tipo de orden.
	if orden.TipoOrden == model.TipoComerAqui && orden.NumeroMesa == nil {
		return nil, apierror.Validation("tableNum", "Numero de mesa es requerido")
	}
	if orden.EsEntrega() && req.Envio == nil {
		return nil, apierror.Validation("shipping", "Datos de envio son requeridos")
	}
	if orden.EsEntrega() && req.ClienteID == nil && req.Cliente == nil {
		return nil, apierror.Validation("customer", "Cliente es requerido para ordenes de entrega")
	}

	// Resolve referenced empleado.
	if req.EmpleadoID != nil && *req.EmpleadoID != "" {
		id, err := uuid.Parse(*req.EmpleadoID)
		if err != nil {
			return nil, apierror.BadID(*req.EmpleadoID)
		}
		if _, err := s.empleadoRepo.ObtenerPorID(ctx, id); err != nil {
			return nil, notFound(err, "Empleado no encontrado")
		}
		orden.EmpleadoID = &id
	}

	// Resolve referenced cliente; inline customerData wins over customer id.
	if req.Cliente == nil && req.ClienteID != nil && *req.ClienteID != "" {
		id, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, apierror.BadID(*req.ClienteID)
		}
		if _, err := s.clienteRepo.ObtenerPorID(ctx, id); err != nil {
			return nil, notFound(err, "Cliente no encontrado")
		}
		orden.ClienteID = &id
	}

	// Validate every line product before opening the transaction.
	detalles := make([]model.OrdenDetalle, 0, len(req.Items))
	var fieldErrs []apierror.FieldError
	for i, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			fieldErrs = append(fieldErrs, apierror.FieldError{
				Field:   fmt.Sprintf("orderItems[%d].product", i),
				Message: fmt.Sprintf("%s no es un identificador valido", item.ProductoID),
			})
			continue
		}
		if _, err := s.productoRepo.ObtenerPorID(ctx, pid); err != nil {
			fieldErrs = append(fieldErrs, apierror.FieldError{
				Field:   fmt.Sprintf("orderItems[%d].product", i),
				Message: "Producto no encontrado",
			})
			continue
		}
		d := model.OrdenDetalle{
			ProductoID: pid,
			Cantidad:   item.Cantidad,
			Precio:     item.Precio,
			Subtotal:   item.Subtotal,
			Impuesto:   item.Impuesto,
			Descuento:  item.Descuento,
			Notas:      item.Notas,
			Activo:     true,
		}
		lineaTotal(&d)
		detalles = append(detalles, d)
	}
	if len(fieldErrs) > 0 {
		return nil, apierror.ValidationFields(fieldErrs)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Inline customer: persona + cliente created inside the same TX.
		if req.Cliente != nil {
			persona := personaDesde(req.Cliente.DatosPersona)
			if err := s.personaRepo.CrearTx(tx, persona); err != nil {
				return err
			}
			cliente := &model.Cliente{
				PersonaID:     persona.ID,
				CodigoCliente: codigoRol(persona.RTN, persona.Apellido),
				PagaIVA:       req.Cliente.PagaIVA == nil || *req.Cliente.PagaIVA,
				Activo:        true,
			}
			if err := s.clienteRepo.CrearTx(tx, cliente); err != nil {
				return err
			}
			orden.ClienteID = &cliente.ID
		}

		// Delivery types get their direccion + envio before the orden so the
		// header can reference the envio.
		if orden.EsEntrega() {
			direccion := &model.Direccion{
				ClienteID:  *orden.ClienteID,
				Nombre:     req.Envio.NombreDireccion,
				Ciudad:     req.Envio.Ciudad,
				Direccion1: req.Envio.Direccion1,
				Direccion2: req.Envio.Direccion2,
				Telefono:   req.Envio.Telefono,
				Detalles:   req.Envio.Detalles,
				Activo:     true,
			}
			if err := s.direccionRepo.CrearTx(tx, direccion); err != nil {
				return err
			}
			envio := &model.Envio{
				ClienteID:    *orden.ClienteID,
				DireccionID:  direccion.ID,
				Costo:        req.Envio.Costo,
				Estado:       EnvioPendiente,
				Repartidor:   req.Envio.Repartidor,
				FechaEntrega: parseFechaHora(req.Envio.FechaEntrega),
				Descripcion:  req.Envio.Descripcion,
				Activo:       true,
			}
			if err := s.envioRepo.CrearTx(tx, envio); err != nil {
				return err
			}
			orden.EnvioID = &envio.ID
		}

		if err := s.repo.CrearTx(tx, orden); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].OrdenID = orden.ID
		}
		return s.repo.CrearDetallesTx(tx, detalles)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}

	orden.Detalles = detalles
	return mapOrden(orden), nil
}

func (s *ordenService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.OrdenResponse, error) {
	o, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Orden no encontrada")
	}
	return mapOrden(o), nil
}

func (s *ordenService) Listar(ctx context.Context) ([]dto.OrdenResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.OrdenResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapOrden(&list[i]))
	}
	return result, nil
}

func (s *ordenService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error) {
	o, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Orden no encontrada")
	}
	if o.Estado == model.OrdenFacturada {
		return nil, apierror.Conflict("La orden ya fue facturada")
	}

	if req.NumeroOrden != nil {
		o.NumeroOrden = *req.NumeroOrden
	}
	if req.Canal != nil {
		o.Canal = *req.Canal
	}
	if req.TipoOrden != nil {
		o.TipoOrden = *req.TipoOrden
	}
	if req.NumeroMesa != nil {
		o.NumeroMesa = req.NumeroMesa
	}
	if req.Estado != nil && *req.Estado != "" {
		if *req.Estado != model.OrdenAbierta && *req.Estado != model.OrdenFacturada {
			return nil, apierror.Validation("status", "Estado de orden no valido")
		}
		o.Estado = *req.Estado
	}
	if req.Descripcion != nil {
		o.Descripcion = *req.Descripcion
	}

	if err := s.repo.Actualizar(ctx, o); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapOrden(o), nil
}

func (s *ordenService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return notFound(err, "Orden no encontrada")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// ── Detalles ─────────────────────────────────────────────────────────────────

func (s *ordenService) CrearDetalle(ctx context.Context, req dto.CrearOrdenDetalleRequest) (*dto.OrdenDetalleResponse, error) {
	ordenID, err := uuid.Parse(req.OrdenID)
	if err != nil {
		return nil, apierror.BadID(req.OrdenID)
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apierror.BadID(req.ProductoID)
	}

	orden, err := s.repo.ObtenerPorID(ctx, ordenID)
	if err != nil {
		return nil, notFound(err, "Orden no encontrada")
	}
	if orden.Estado == model.OrdenFacturada {
		return nil, apierror.Conflict("La orden ya fue facturada")
	}
	if _, err := s.productoRepo.ObtenerPorID(ctx, productoID); err != nil {
		return nil, notFound(err, "Producto no encontrado")
	}

	d := &model.OrdenDetalle{
		OrdenID:    ordenID,
		ProductoID: productoID,
		Cantidad:   req.Cantidad,
		Precio:     req.Precio,
		Subtotal:   req.Subtotal,
		Impuesto:   req.Impuesto,
		Descuento:  req.Descuento,
		Notas:      req.Notas,
		Activo:     true,
	}
	lineaTotal(d)

	if err := s.repo.CrearDetalle(ctx, d); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapDetalle(d), nil
}

func (s *ordenService) ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.OrdenDetalleResponse, error) {
	d, err := s.repo.ObtenerDetallePorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Detalle de orden no encontrado")
	}
	return mapDetalle(d), nil
}

func (s *ordenService) ListarDetalles(ctx context.Context) ([]dto.OrdenDetalleResponse, error) {
	list, err := s.repo.ListarDetalles(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.OrdenDetalleResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapDetalle(&list[i]))
	}
	return result, nil
}

func (s *ordenService) ListarDetallesPorOrden(ctx context.Context, ordenID uuid.UUID) ([]dto.OrdenDetalleResponse, error) {
	list, err := s.repo.ListarDetallesPorOrden(ctx, ordenID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.OrdenDetalleResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapDetalle(&list[i]))
	}
	return result, nil
}

func (s *ordenService) ActualizarDetalle(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenDetalleRequest) (*dto.OrdenDetalleResponse, error) {
	d, err := s.repo.ObtenerDetallePorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Detalle de orden no encontrado")
	}

	if req.Cantidad != nil {
		d.Cantidad = *req.Cantidad
	}
	if req.Precio != nil {
		d.Precio = *req.Precio
	}
	if req.Subtotal != nil {
		d.Subtotal = *req.Subtotal
	}
	if req.Impuesto != nil {
		d.Impuesto = *req.Impuesto
	}
	if req.Descuento != nil {
		d.Descuento = *req.Descuento
	}
	if req.Notas != nil {
		d.Notas = *req.Notas
	}
	lineaTotal(d)

	if err := s.repo.ActualizarDetalle(ctx, d); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapDetalle(d), nil
}

func (s *ordenService) DesactivarDetalle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerDetallePorID(ctx, id); err != nil {
		return notFound(err, "Detalle de orden no encontrado")
	}
	if err := s.repo.DesactivarDetalle(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
