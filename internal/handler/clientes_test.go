package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClienteService returns canned responses so the tests exercise only
// the HTTP layer: binding, validation messages and the response envelopes.
type stubClienteService struct {
	clientes map[string]*dto.ClienteResponse
}

func newStubClienteService() *stubClienteService {
	return &stubClienteService{clientes: make(map[string]*dto.ClienteResponse)}
}

func (s *stubClienteService) Crear(_ context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	resp := &dto.ClienteResponse{
		ID:            uuid.NewString(),
		CodigoCliente: req.RTN + "_" + req.Apellido,
		PagaIVA:       *req.PagaIVA,
		Activo:        true,
	}
	s.clientes[resp.ID] = resp
	return resp, nil
}

func (s *stubClienteService) ObtenerPorID(_ context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, ok := s.clientes[id.String()]
	if !ok {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	return c, nil
}

func (s *stubClienteService) Listar(_ context.Context) ([]dto.ClienteResponse, error) {
	list := make([]dto.ClienteResponse, 0, len(s.clientes))
	for _, c := range s.clientes {
		list = append(list, *c)
	}
	return list, nil
}

func (s *stubClienteService) Actualizar(_ context.Context, id uuid.UUID, _ dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, ok := s.clientes[id.String()]
	if !ok {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	return c, nil
}

func (s *stubClienteService) Desactivar(_ context.Context, id uuid.UUID) error {
	if _, ok := s.clientes[id.String()]; !ok {
		return apierror.NotFound("Cliente no encontrado")
	}
	delete(s.clientes, id.String())
	return nil
}

var _ service.ClienteService = (*stubClienteService)(nil)

func newClientesRouter() (*gin.Engine, *stubClienteService) {
	gin.SetMode(gin.TestMode)
	svc := newStubClienteService()
	h := NewClientesHandler(svc)
	r := gin.New()
	r.POST("/api/customers", h.Crear)
	r.GET("/api/customers", h.Listar)
	r.GET("/api/customers/:id", h.Obtener)
	r.PUT("/api/customers/:id", h.Actualizar)
	r.DELETE("/api/customers/:id", h.Desactivar)
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCrearCliente_Envelope(t *testing.T) {
	r, _ := newClientesRouter()

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"identidad": "0801199901234",
		"name":      "Juan",
		"lastName":  "Perez",
		"rtn":       "08011999012345",
		"email":     "juan@example.com",
		"phone1":    "99112233",
		"payIVA":    true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		OK   bool                `json:"ok"`
		Data dto.ClienteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "08011999012345_Perez", body.Data.CodigoCliente)
}

func TestCrearCliente_IdentidadRequerida(t *testing.T) {
	r, _ := newClientesRouter()

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name":     "Juan",
		"lastName": "Perez",
		"email":    "juan@example.com",
		"phone1":   "99112233",
		"payIVA":   true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "identidad", body.Errors[0].Field)
	assert.Equal(t, "Identidad es requerida", body.Errors[0].Message)
}

func TestCrearCliente_JSONInvalido(t *testing.T) {
	r, _ := newClientesRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "JSON invalido", body.Message)
}

func TestObtenerCliente_IDInvalido(t *testing.T) {
	r, _ := newClientesRouter()

	w := doJSON(t, r, http.MethodGet, "/api/customers/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "abc no es un identificador valido", body.Message)
}

func TestObtenerCliente_NoEncontrado(t *testing.T) {
	r, _ := newClientesRouter()

	w := doJSON(t, r, http.MethodGet, "/api/customers/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "Cliente no encontrado", body.Message)
}

func TestDesactivarCliente_Mensaje(t *testing.T) {
	r, svc := newClientesRouter()
	resp, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		DatosPersona: dto.DatosPersona{Apellido: "Perez", RTN: "08011999012345"},
		PagaIVA:      boolPtr(true),
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/api/customers/"+resp.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "Cliente eliminado", body.Data.Message)
}

func boolPtr(b bool) *bool { return &b }
