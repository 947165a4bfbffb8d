package handler

import (
	"net/http"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/config"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/middleware"
	"github.com/EmSanchezM/posweb-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// refreshCookie is the HttpOnly cookie carrying the refresh token. The
// access token travels only in the response body.
const refreshCookie = "jwt"

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	maxAge := h.cfg.RefreshTokenHours * 3600
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, token, maxAge, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, refreshToken, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setRefreshCookie(c, refreshToken)
	respond(c, http.StatusOK, resp)
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// Refresh GET /api/auth/refresh — rotates the cookie and returns a fresh
// access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(refreshCookie)
	if err != nil || token == "" {
		respondError(c, apierror.Unauthorized("Sesion expirada"))
		return
	}
	resp, newRefresh, err := h.svc.Refresh(c.Request.Context(), token)
	if err != nil {
		h.clearRefreshCookie(c)
		respondError(c, err)
		return
	}
	h.setRefreshCookie(c, newRefresh)
	respond(c, http.StatusOK, resp)
}

// Logout GET /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(refreshCookie); err == nil && token != "" {
		_ = h.svc.Logout(c.Request.Context(), token)
	}
	h.clearRefreshCookie(c)
	respond(c, http.StatusOK, gin.H{"message": "Sesion cerrada"})
}

// User GET /api/auth/user — the authenticated account, expanded.
func (h *AuthHandler) User(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		respondError(c, apierror.Unauthorized("Autenticacion requerida"))
		return
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(c, apierror.Unauthorized("Token invalido o expirado"))
		return
	}
	resp, err := h.svc.UsuarioActual(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Profile PUT /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		respondError(c, apierror.Unauthorized("Autenticacion requerida"))
		return
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(c, apierror.Unauthorized("Token invalido o expirado"))
		return
	}
	var req dto.PerfilRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarPerfil(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
