package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func tokenFirmado(t *testing.T, rol string, exp time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  uuid.NewString(),
		"username": "cmejia",
		"employee": uuid.NewString(),
		"rol":      rol,
		"iat":      now.Unix(),
		"exp":      now.Add(exp).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newProtectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grupo := r.Group("/", JWTAuth(testSecret))
	if len(roles) > 0 {
		grupo.Use(RequireRole(roles...))
	}
	grupo.GET("/recurso", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username, "rol": claims.Rol})
	})
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_SinHeader(t *testing.T) {
	w := get(newProtectedRouter(), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Autenticacion requerida", body.Message)
}

func TestJWTAuth_TokenInvalido(t *testing.T) {
	w := get(newProtectedRouter(), "Bearer basura")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Token invalido o expirado", body.Message)
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	token := tokenFirmado(t, "Admin", -time.Minute)
	w := get(newProtectedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_FirmaAjena(t *testing.T) {
	otro, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"rol": "Admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	w := get(newProtectedRouter(), "Bearer "+otro)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExponeClaims(t *testing.T) {
	token := tokenFirmado(t, "User", time.Hour)
	w := get(newProtectedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "cmejia", body["username"])
	assert.Equal(t, "User", body["rol"])
}

func TestRequireRole_RolInsuficiente(t *testing.T) {
	token := tokenFirmado(t, "User", time.Hour)
	w := get(newProtectedRouter("Admin"), "Bearer "+token)
	require.Equal(t, http.StatusForbidden, w.Code)

	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Permisos insuficientes", body.Message)
}

func TestRequireRole_RolPermitido(t *testing.T) {
	token := tokenFirmado(t, "Admin", time.Hour)
	w := get(newProtectedRouter("Admin", "User"), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
}
