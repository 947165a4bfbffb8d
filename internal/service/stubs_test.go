package service_test

// In-memory repository stubs shared by the service tests. DB() returns nil
// so the services run their transactional closures directly against the
// stubs; gorm.ErrRecordNotFound keeps the not-found mapping honest.

import (
	"context"
	"time"

	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"
	"github.com/EmSanchezM/posweb-backend/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Persona ──────────────────────────────────────────────────────────────────

type stubPersonaRepo struct {
	personas map[uuid.UUID]*model.Persona
}

func newStubPersonaRepo() *stubPersonaRepo {
	return &stubPersonaRepo{personas: make(map[uuid.UUID]*model.Persona)}
}

func (r *stubPersonaRepo) Crear(_ context.Context, p *model.Persona) error {
	return r.CrearTx(nil, p)
}

func (r *stubPersonaRepo) CrearTx(_ *gorm.DB, p *model.Persona) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.personas[p.ID] = p
	return nil
}

func (r *stubPersonaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Persona, error) {
	p, ok := r.personas[id]
	if !ok || !p.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPersonaRepo) Actualizar(_ context.Context, p *model.Persona) error {
	return r.ActualizarTx(nil, p)
}

func (r *stubPersonaRepo) ActualizarTx(_ *gorm.DB, p *model.Persona) error {
	r.personas[p.ID] = p
	return nil
}

func (r *stubPersonaRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	return r.DesactivarTx(nil, id)
}

func (r *stubPersonaRepo) DesactivarTx(_ *gorm.DB, id uuid.UUID) error {
	if p, ok := r.personas[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubPersonaRepo) DB() *gorm.DB { return nil }

var _ repository.PersonaRepository = (*stubPersonaRepo)(nil)

// ── Cliente ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes  map[uuid.UUID]*model.Cliente
	failCrear error
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	return r.CrearTx(nil, c)
}

func (r *stubClienteRepo) CrearTx(_ *gorm.DB, c *model.Cliente) error {
	if r.failCrear != nil {
		return r.failCrear
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok || !c.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) Listar(_ context.Context) ([]model.Cliente, error) {
	list := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		if c.Activo {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (r *stubClienteRepo) Actualizar(_ context.Context, c *model.Cliente) error {
	return r.ActualizarTx(nil, c)
}

func (r *stubClienteRepo) ActualizarTx(_ *gorm.DB, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	return r.DesactivarTx(nil, id)
}

func (r *stubClienteRepo) DesactivarTx(_ *gorm.DB, id uuid.UUID) error {
	if c, ok := r.clientes[id]; ok {
		c.Activo = false
	}
	return nil
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Empleado ─────────────────────────────────────────────────────────────────

type stubEmpleadoRepo struct {
	empleados map[uuid.UUID]*model.Empleado
}

func newStubEmpleadoRepo() *stubEmpleadoRepo {
	return &stubEmpleadoRepo{empleados: make(map[uuid.UUID]*model.Empleado)}
}

func (r *stubEmpleadoRepo) Crear(_ context.Context, e *model.Empleado) error {
	return r.CrearTx(nil, e)
}

func (r *stubEmpleadoRepo) CrearTx(_ *gorm.DB, e *model.Empleado) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Empleado, error) {
	e, ok := r.empleados[id]
	if !ok || !e.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmpleadoRepo) Listar(_ context.Context) ([]model.Empleado, error) {
	list := make([]model.Empleado, 0, len(r.empleados))
	for _, e := range r.empleados {
		if e.Activo {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (r *stubEmpleadoRepo) Actualizar(_ context.Context, e *model.Empleado) error {
	return r.ActualizarTx(nil, e)
}

func (r *stubEmpleadoRepo) ActualizarTx(_ *gorm.DB, e *model.Empleado) error {
	r.empleados[e.ID] = e
	return nil
}

func (r *stubEmpleadoRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	return r.DesactivarTx(nil, id)
}

func (r *stubEmpleadoRepo) DesactivarTx(_ *gorm.DB, id uuid.UUID) error {
	if e, ok := r.empleados[id]; ok {
		e.Activo = false
	}
	return nil
}

func (r *stubEmpleadoRepo) DB() *gorm.DB { return nil }

var _ repository.EmpleadoRepository = (*stubEmpleadoRepo)(nil)

// ── Producto ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok || !p.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) Listar(_ context.Context) ([]model.Producto, error) {
	list := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if p.Activo {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (r *stubProductoRepo) Actualizar(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func seedProducto(r *stubProductoRepo, nombre string) *model.Producto {
	p := &model.Producto{Nombre: nombre, Activo: true}
	_ = r.Crear(context.Background(), p)
	return p
}

// ── Direccion ────────────────────────────────────────────────────────────────

type stubDireccionRepo struct {
	direcciones map[uuid.UUID]*model.Direccion
}

func newStubDireccionRepo() *stubDireccionRepo {
	return &stubDireccionRepo{direcciones: make(map[uuid.UUID]*model.Direccion)}
}

func (r *stubDireccionRepo) Crear(_ context.Context, d *model.Direccion) error {
	return r.CrearTx(nil, d)
}

func (r *stubDireccionRepo) CrearTx(_ *gorm.DB, d *model.Direccion) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.direcciones[d.ID] = d
	return nil
}

func (r *stubDireccionRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Direccion, error) {
	d, ok := r.direcciones[id]
	if !ok || !d.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDireccionRepo) ListarPorCliente(_ context.Context, clienteID uuid.UUID) ([]model.Direccion, error) {
	list := make([]model.Direccion, 0)
	for _, d := range r.direcciones {
		if d.Activo && d.ClienteID == clienteID {
			list = append(list, *d)
		}
	}
	return list, nil
}

func (r *stubDireccionRepo) Actualizar(_ context.Context, d *model.Direccion) error {
	r.direcciones[d.ID] = d
	return nil
}

func (r *stubDireccionRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if d, ok := r.direcciones[id]; ok {
		d.Activo = false
	}
	return nil
}

var _ repository.DireccionRepository = (*stubDireccionRepo)(nil)

// ── Envio ────────────────────────────────────────────────────────────────────

type stubEnvioRepo struct {
	envios map[uuid.UUID]*model.Envio
}

func newStubEnvioRepo() *stubEnvioRepo {
	return &stubEnvioRepo{envios: make(map[uuid.UUID]*model.Envio)}
}

func (r *stubEnvioRepo) Crear(_ context.Context, e *model.Envio) error {
	return r.CrearTx(nil, e)
}

func (r *stubEnvioRepo) CrearTx(_ *gorm.DB, e *model.Envio) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.envios[e.ID] = e
	return nil
}

func (r *stubEnvioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Envio, error) {
	e, ok := r.envios[id]
	if !ok || !e.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEnvioRepo) Listar(_ context.Context) ([]model.Envio, error) {
	list := make([]model.Envio, 0, len(r.envios))
	for _, e := range r.envios {
		if e.Activo {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (r *stubEnvioRepo) Actualizar(_ context.Context, e *model.Envio) error {
	r.envios[e.ID] = e
	return nil
}

func (r *stubEnvioRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if e, ok := r.envios[id]; ok {
		e.Activo = false
	}
	return nil
}

var _ repository.EnvioRepository = (*stubEnvioRepo)(nil)

// ── Orden ────────────────────────────────────────────────────────────────────

type stubOrdenRepo struct {
	ordenes      map[uuid.UUID]*model.Orden
	detalles     map[uuid.UUID]*model.OrdenDetalle
	failDetalles error
}

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{
		ordenes:  make(map[uuid.UUID]*model.Orden),
		detalles: make(map[uuid.UUID]*model.OrdenDetalle),
	}
}

func (r *stubOrdenRepo) CrearTx(_ *gorm.DB, o *model.Orden) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.ordenes[o.ID] = o
	return nil
}

func (r *stubOrdenRepo) CrearDetallesTx(_ *gorm.DB, detalles []model.OrdenDetalle) error {
	if r.failDetalles != nil {
		return r.failDetalles
	}
	for i := range detalles {
		if detalles[i].ID == uuid.Nil {
			detalles[i].ID = uuid.New()
		}
		d := detalles[i]
		r.detalles[d.ID] = &d
	}
	return nil
}

func (r *stubOrdenRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Orden, error) {
	o, ok := r.ordenes[id]
	if !ok || !o.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	o.Detalles = o.Detalles[:0]
	for _, d := range r.detalles {
		if d.OrdenID == id && d.Activo {
			o.Detalles = append(o.Detalles, *d)
		}
	}
	return o, nil
}

func (r *stubOrdenRepo) Listar(_ context.Context) ([]model.Orden, error) {
	list := make([]model.Orden, 0, len(r.ordenes))
	for _, o := range r.ordenes {
		if o.Activo {
			list = append(list, *o)
		}
	}
	return list, nil
}

func (r *stubOrdenRepo) Actualizar(_ context.Context, o *model.Orden) error {
	r.ordenes[o.ID] = o
	return nil
}

func (r *stubOrdenRepo) ActualizarEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	o, ok := r.ordenes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Estado = estado
	return nil
}

func (r *stubOrdenRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if o, ok := r.ordenes[id]; ok {
		o.Activo = false
	}
	return nil
}

func (r *stubOrdenRepo) ObtenerDetallePorID(_ context.Context, id uuid.UUID) (*model.OrdenDetalle, error) {
	d, ok := r.detalles[id]
	if !ok || !d.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubOrdenRepo) ListarDetalles(_ context.Context) ([]model.OrdenDetalle, error) {
	list := make([]model.OrdenDetalle, 0, len(r.detalles))
	for _, d := range r.detalles {
		if d.Activo {
			list = append(list, *d)
		}
	}
	return list, nil
}

func (r *stubOrdenRepo) ListarDetallesPorOrden(_ context.Context, ordenID uuid.UUID) ([]model.OrdenDetalle, error) {
	list := make([]model.OrdenDetalle, 0)
	for _, d := range r.detalles {
		if d.Activo && d.OrdenID == ordenID {
			list = append(list, *d)
		}
	}
	return list, nil
}

func (r *stubOrdenRepo) CrearDetalle(_ context.Context, d *model.OrdenDetalle) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detalles[d.ID] = d
	return nil
}

func (r *stubOrdenRepo) ActualizarDetalle(_ context.Context, d *model.OrdenDetalle) error {
	r.detalles[d.ID] = d
	return nil
}

func (r *stubOrdenRepo) DesactivarDetalle(_ context.Context, id uuid.UUID) error {
	if d, ok := r.detalles[id]; ok {
		d.Activo = false
	}
	return nil
}

func (r *stubOrdenRepo) DB() *gorm.DB { return nil }

var _ repository.OrdenRepository = (*stubOrdenRepo)(nil)

// ── Factura ──────────────────────────────────────────────────────────────────

type stubFacturaRepo struct {
	facturas map[uuid.UUID]*model.Factura
}

func newStubFacturaRepo() *stubFacturaRepo {
	return &stubFacturaRepo{facturas: make(map[uuid.UUID]*model.Factura)}
}

func (r *stubFacturaRepo) CrearTx(_ *gorm.DB, f *model.Factura) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.facturas[f.ID] = f
	return nil
}

func (r *stubFacturaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Factura, error) {
	f, ok := r.facturas[id]
	if !ok || !f.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFacturaRepo) Listar(_ context.Context) ([]model.Factura, error) {
	list := make([]model.Factura, 0, len(r.facturas))
	for _, f := range r.facturas {
		if f.Activo {
			list = append(list, *f)
		}
	}
	return list, nil
}

func (r *stubFacturaRepo) Actualizar(_ context.Context, f *model.Factura) error {
	r.facturas[f.ID] = f
	return nil
}

func (r *stubFacturaRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if f, ok := r.facturas[id]; ok {
		f.Activo = false
	}
	return nil
}

func (r *stubFacturaRepo) DB() *gorm.DB { return nil }

var _ repository.FacturaRepository = (*stubFacturaRepo)(nil)

// ── Usuario ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	return r.CrearTx(nil, u)
}

func (r *stubUsuarioRepo) CrearTx(_ *gorm.DB, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) ObtenerPorUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) Listar(_ context.Context) ([]model.Usuario, error) {
	list := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		list = append(list, *u)
	}
	return list, nil
}

func (r *stubUsuarioRepo) Actualizar(_ context.Context, u *model.Usuario) error {
	return r.ActualizarTx(nil, u)
}

func (r *stubUsuarioRepo) ActualizarTx(_ *gorm.DB, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── TokenStore ───────────────────────────────────────────────────────────────

type stubTokenStore struct {
	tokens map[string]string
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) GuardarRefresh(_ context.Context, jti, usuarioID string, _ time.Duration) error {
	s.tokens[jti] = usuarioID
	return nil
}

func (s *stubTokenStore) ValidarRefresh(_ context.Context, jti string) (string, error) {
	id, ok := s.tokens[jti]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return id, nil
}

func (s *stubTokenStore) RevocarRefresh(_ context.Context, jti string) error {
	delete(s.tokens, jti)
	return nil
}

var _ service.TokenStore = (*stubTokenStore)(nil)
