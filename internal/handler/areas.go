package handler

import (
	"net/http"

	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AreasHandler struct{ svc service.AreaService }

func NewAreasHandler(svc service.AreaService) *AreasHandler {
	return &AreasHandler{svc: svc}
}

// Crear POST /api/areas
func (h *AreasHandler) Crear(c *gin.Context) {
	var req dto.CrearAreaRequest
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

// Obtener GET /api/areas/:id
func (h *AreasHandler) Obtener(c *gin.Context) {
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

// Listar GET /api/areas
func (h *AreasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Actualizar PUT /api/areas/:id
func (h *AreasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarAreaRequest
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

// Desactivar DELETE /api/areas/:id
func (h *AreasHandler) Desactivar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Area eliminada"})
}
