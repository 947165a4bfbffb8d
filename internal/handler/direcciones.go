package handler

import (
	"net/http"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DireccionesHandler struct{ svc service.DireccionService }

func NewDireccionesHandler(svc service.DireccionService) *DireccionesHandler {
	return &DireccionesHandler{svc: svc}
}

// Crear POST /api/addresses
func (h *DireccionesHandler) Crear(c *gin.Context) {
	var req dto.CrearDireccionRequest
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

// Obtener GET /api/addresses/:id
func (h *DireccionesHandler) Obtener(c *gin.Context) {
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

// ListarPorCliente GET /api/addresses/customer/:id
func (h *DireccionesHandler) ListarPorCliente(c *gin.Context) {
	raw := c.Param("id")
	clienteID, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, apierror.BadID(raw))
		return
	}
	resp, err := h.svc.ListarPorCliente(c.Request.Context(), clienteID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Actualizar PUT /api/addresses/:id
func (h *DireccionesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarDireccionRequest
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

// Desactivar DELETE /api/addresses/:id
func (h *DireccionesHandler) Desactivar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Direccion eliminada"})
}
