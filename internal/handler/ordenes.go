package handler

import (
	"net/http"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdenesHandler struct{ svc service.OrdenService }

func NewOrdenesHandler(svc service.OrdenService) *OrdenesHandler {
	return &OrdenesHandler{svc: svc}
}

// Crear POST /api/order — runs the whole order workflow in one transaction.
func (h *OrdenesHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// Obtener GET /api/order/:id
func (h *OrdenesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Listar GET /api/order
func (h *OrdenesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Actualizar PUT /api/order/:id
func (h *OrdenesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Desactivar DELETE /api/order/:id
func (h *OrdenesHandler) Desactivar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Orden eliminada"})
}

// ─── Detalles ────────────────────────────────────────────────────────────────

// CrearDetalle POST /api/orderdetail
func (h *OrdenesHandler) CrearDetalle(c *gin.Context) {
	var req dto.CrearOrdenDetalleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearDetalle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// ObtenerDetalle GET /api/orderdetail/:id
func (h *OrdenesHandler) ObtenerDetalle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// ListarDetalles GET /api/orderdetail
func (h *OrdenesHandler) ListarDetalles(c *gin.Context) {
	resp, err := h.svc.ListarDetalles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// ListarDetallesPorOrden GET /api/orderdetail/order/:id
func (h *OrdenesHandler) ListarDetallesPorOrden(c *gin.Context) {
	raw := c.Param("id")
	ordenID, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, apierror.BadID(raw))
		return
	}
	resp, err := h.svc.ListarDetallesPorOrden(c.Request.Context(), ordenID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// ActualizarDetalle PUT /api/orderdetail/:id
func (h *OrdenesHandler) ActualizarDetalle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarOrdenDetalleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarDetalle(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// DesactivarDetalle DELETE /api/orderdetail/:id
func (h *OrdenesHandler) DesactivarDetalle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DesactivarDetalle(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Detalle de orden eliminado"})
}
