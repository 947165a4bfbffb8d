package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/config"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService accepts exactly one credential pair and one refresh token
// value so the handler tests can drive both outcomes.
type stubAuthService struct {
	refreshVigente string
}

func (s *stubAuthService) sesion() *dto.LoginResponse {
	return &dto.LoginResponse{
		AccessToken: "access-token",
		Usuario:     dto.UsuarioResponse{ID: uuid.NewString(), Username: "cmejia", Rol: "Admin", Activo: true},
	}
}

func (s *stubAuthService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	if req.Username != "cmejia" || req.Password != "secreto1" {
		return nil, "", apierror.Unauthorized("Credenciales no validas")
	}
	s.refreshVigente = "refresh-1"
	return s.sesion(), s.refreshVigente, nil
}

func (s *stubAuthService) Refresh(_ context.Context, refreshToken string) (*dto.LoginResponse, string, error) {
	if refreshToken != s.refreshVigente || refreshToken == "" {
		return nil, "", apierror.Unauthorized("Sesion expirada")
	}
	s.refreshVigente = "refresh-2"
	return s.sesion(), s.refreshVigente, nil
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error {
	s.refreshVigente = ""
	return nil
}

func (s *stubAuthService) Register(_ context.Context, _ dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	return &dto.UsuarioResponse{ID: uuid.NewString(), Username: "nuevo", Rol: "User", Activo: true}, nil
}

func (s *stubAuthService) UsuarioActual(_ context.Context, _ uuid.UUID) (*dto.UsuarioResponse, error) {
	return &dto.UsuarioResponse{Username: "cmejia"}, nil
}

func (s *stubAuthService) ActualizarPerfil(_ context.Context, _ uuid.UUID, _ dto.PerfilRequest) (*dto.UsuarioResponse, error) {
	return &dto.UsuarioResponse{Username: "cmejia"}, nil
}

func (s *stubAuthService) ListarUsuarios(_ context.Context) ([]dto.UsuarioResponse, error) {
	return nil, nil
}

func (s *stubAuthService) ObtenerUsuario(_ context.Context, _ uuid.UUID) (*dto.UsuarioResponse, error) {
	return nil, apierror.NotFound("Usuario no encontrado")
}

func (s *stubAuthService) ActualizarUsuario(_ context.Context, _ uuid.UUID, _ dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	return nil, apierror.NotFound("Usuario no encontrado")
}

func (s *stubAuthService) DesactivarUsuario(_ context.Context, _ uuid.UUID) error {
	return apierror.NotFound("Usuario no encontrado")
}

var _ service.AuthService = (*stubAuthService)(nil)

func newAuthRouter() (*gin.Engine, *stubAuthService) {
	gin.SetMode(gin.TestMode)
	svc := &stubAuthService{}
	cfg := &config.Config{RefreshTokenHours: 24}
	h := NewAuthHandler(svc, cfg)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/register", h.Register)
	r.GET("/api/auth/refresh", h.Refresh)
	r.GET("/api/auth/logout", h.Logout)
	return r, svc
}

func refreshCookieDe(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == refreshCookie {
			return ck
		}
	}
	t.Fatal("no refresh cookie in response")
	return nil
}

func TestLoginHandler_SeteaCookie(t *testing.T) {
	r, _ := newAuthRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "cmejia", "password": "secreto1"})
	require.Equal(t, http.StatusOK, w.Code)

	ck := refreshCookieDe(t, w)
	assert.Equal(t, "refresh-1", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)

	var body struct {
		OK   bool              `json:"ok"`
		Data dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "access-token", body.Data.AccessToken)
	assert.Equal(t, "cmejia", body.Data.Usuario.Username)
}

func TestLoginHandler_CredencialesInvalidas(t *testing.T) {
	r, _ := newAuthRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "cmejia", "password": "equivocada"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Credenciales no validas", body.Message)
}

func TestLoginHandler_PasswordRequerida(t *testing.T) {
	r, _ := newAuthRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "cmejia"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "password", body.Errors[0].Field)
	assert.Equal(t, "Contrasena es requerida", body.Errors[0].Message)
}

func TestRegisterHandler_SinTokenCreaCuenta(t *testing.T) {
	r, _ := newAuthRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"identidad":    "0801198805678",
		"name":         "Carlos",
		"lastName":     "Castro",
		"email":        "ccastro@example.com",
		"phone1":       "99887766",
		"username":     "ccastro",
		"password":     "secreta1",
		"rol":          "User",
		"workLocation": "Caja",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		OK   bool                `json:"ok"`
		Data dto.UsuarioResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "nuevo", body.Data.Username)
}

func TestRefreshHandler_SinCookie(t *testing.T) {
	r, _ := newAuthRouter()

	w := doJSON(t, r, http.MethodGet, "/api/auth/refresh", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Sesion expirada", body.Message)
}

func TestRefreshHandler_RotaCookie(t *testing.T) {
	r, svc := newAuthRouter()
	svc.refreshVigente = "refresh-1"

	req := httptest.NewRequest(http.MethodGet, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookie, Value: "refresh-1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "refresh-2", refreshCookieDe(t, w).Value)
}

func TestRefreshHandler_TokenRevocadoLimpiaCookie(t *testing.T) {
	r, _ := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookie, Value: "viejo"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	ck := refreshCookieDe(t, w)
	assert.Empty(t, ck.Value)
	assert.Less(t, ck.MaxAge, 0)
}

func TestLogoutHandler_SiempreOK(t *testing.T) {
	r, svc := newAuthRouter()
	svc.refreshVigente = "refresh-1"

	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookie, Value: "refresh-1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.refreshVigente)
	assert.Empty(t, refreshCookieDe(t, w).Value)

	// Without a cookie it still succeeds.
	w2 := doJSON(t, r, http.MethodGet, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w2.Code)
}
