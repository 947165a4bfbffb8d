package service

import (
	"context"
	"errors"
	"time"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/config"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// credencialesInvalidas is deliberately the same for every login failure
// mode so the endpoint cannot be used to probe accounts.
var credencialesInvalidas = apierror.Unauthorized("Credenciales no validas")

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, string, error)
	Logout(ctx context.Context, refreshToken string) error
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UsuarioResponse, error)
	UsuarioActual(ctx context.Context, usuarioID uuid.UUID) (*dto.UsuarioResponse, error)
	ActualizarPerfil(ctx context.Context, usuarioID uuid.UUID, req dto.PerfilRequest) (*dto.UsuarioResponse, error)

	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo         repository.UsuarioRepository
	personaRepo  repository.PersonaRepository
	empleadoRepo repository.EmpleadoRepository
	tokens       TokenStore
	cfg          *config.Config
}

func NewAuthService(
	repo repository.UsuarioRepository,
	personaRepo repository.PersonaRepository,
	empleadoRepo repository.EmpleadoRepository,
	tokens TokenStore,
	cfg *config.Config,
) AuthService {
	return &authService{
		repo:         repo,
		personaRepo:  personaRepo,
		empleadoRepo: empleadoRepo,
		tokens:       tokens,
		cfg:          cfg,
	}
}

func mapUsuario(u *model.Usuario) *dto.UsuarioResponse {
	resp := &dto.UsuarioResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Rol:      u.Rol,
		Activo:   u.Activo,
	}
	if u.Empleado != nil {
		resp.Empleado = mapEmpleado(u.Empleado)
	}
	return resp
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func (s *authService) generateAccessToken(u *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  u.ID.String(),
		"username": u.Username,
		"employee": u.EmpleadoID.String(),
		"rol":      u.Rol,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(s.cfg.AccessTokenMinutes) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateRefreshToken issues a refresh JWT and registers its jti in the
// allow-list; rotation revokes the old jti.
func (s *authService) generateRefreshToken(ctx context.Context, u *model.Usuario) (string, error) {
	now := time.Now()
	jti := uuid.NewString()
	ttl := time.Duration(s.cfg.RefreshTokenHours) * time.Hour
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"jti":     jti,
		"typ":     "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", err
	}
	if err := s.tokens.GuardarRefresh(ctx, jti, u.ID.String(), ttl); err != nil {
		return "", err
	}
	return signed, nil
}

// parseRefreshToken verifies the signature and returns the claims. The jti
// allow-list check happens in the caller.
func (s *authService) parseRefreshToken(refreshToken string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Unauthorized("Sesion expirada")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Unauthorized("Sesion expirada")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return nil, apierror.Unauthorized("Sesion expirada")
	}
	return claims, nil
}

func (s *authService) emitirSesion(ctx context.Context, u *model.Usuario) (*dto.LoginResponse, string, error) {
	accessToken, err := s.generateAccessToken(u)
	if err != nil {
		return nil, "", apierror.Internal(err)
	}
	refreshToken, err := s.generateRefreshToken(ctx, u)
	if err != nil {
		return nil, "", apierror.Internal(err)
	}
	return &dto.LoginResponse{AccessToken: accessToken, Usuario: *mapUsuario(u)}, refreshToken, nil
}

// ── Sesiones ─────────────────────────────────────────────────────────────────

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	user, err := s.repo.ObtenerPorUsername(ctx, req.Username)
	if err != nil {
		return nil, "", credencialesInvalidas
	}
	if !user.Activo {
		return nil, "", credencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", credencialesInvalidas
	}
	return s.emitirSesion(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, string, error) {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, "", err
	}
	jti, _ := claims["jti"].(string)
	userIDStr, _ := claims["user_id"].(string)
	if jti == "" || userIDStr == "" {
		return nil, "", apierror.Unauthorized("Sesion expirada")
	}

	storedID, err := s.tokens.ValidarRefresh(ctx, jti)
	if err != nil || storedID != userIDStr {
		return nil, "", apierror.Unauthorized("Sesion expirada")
	}

	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, "", apierror.Unauthorized("Sesion expirada")
	}
	user, err := s.repo.ObtenerPorID(ctx, uid)
	if err != nil || !user.Activo {
		return nil, "", apierror.Unauthorized("Sesion expirada")
	}

	// Rotation: a used refresh token is never valid twice.
	if err := s.tokens.RevocarRefresh(ctx, jti); err != nil {
		return nil, "", apierror.Internal(err)
	}
	return s.emitirSesion(ctx, user)
}

// Logout revokes the refresh token. An already-invalid token is not an
// error: logout is idempotent.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil
	}
	if jti, _ := claims["jti"].(string); jti != "" {
		_ = s.tokens.RevocarRefresh(ctx, jti)
	}
	return nil
}

// ── Registro y perfil ────────────────────────────────────────────────────────

// Register creates persona, empleado and usuario in a single transaction.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	existente, err := s.repo.ObtenerPorUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}
	if existente != nil {
		return nil, apierror.Conflict("El nombre de usuario ya esta en uso")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	persona := personaDesde(req.DatosPersona)
	empleado := &model.Empleado{
		CodigoEmpleado: codigoRol(req.RTN, req.Apellido),
		LugarTrabajo:   req.LugarTrabajo,
		Activo:         true,
	}
	usuario := &model.Usuario{
		Username:     req.Username,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.personaRepo.CrearTx(tx, persona); err != nil {
			return err
		}
		empleado.PersonaID = persona.ID
		if err := s.empleadoRepo.CrearTx(tx, empleado); err != nil {
			return err
		}
		usuario.EmpleadoID = empleado.ID
		return s.repo.CrearTx(tx, usuario)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}

	empleado.Persona = persona
	usuario.Empleado = empleado
	return mapUsuario(usuario), nil
}

func (s *authService) UsuarioActual(ctx context.Context, usuarioID uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.repo.ObtenerPorID(ctx, usuarioID)
	if err != nil {
		return nil, notFound(err, "Usuario no encontrado")
	}
	return mapUsuario(u), nil
}

// ActualizarPerfil lets the authenticated user patch their own persona,
// empleado and username.
func (s *authService) ActualizarPerfil(ctx context.Context, usuarioID uuid.UUID, req dto.PerfilRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.ObtenerPorID(ctx, usuarioID)
	if err != nil {
		return nil, notFound(err, "Usuario no encontrado")
	}

	if req.Username != nil && *req.Username != u.Username {
		existente, err := s.repo.ObtenerPorUsername(ctx, *req.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		if existente != nil {
			return nil, apierror.Conflict("El nombre de usuario ya esta en uso")
		}
		u.Username = *req.Username
	}

	if u.Empleado != nil {
		if u.Empleado.Persona != nil {
			aplicarPersona(u.Empleado.Persona, req.ActualizarPersona)
		}
		if req.LugarTrabajo != nil {
			u.Empleado.LugarTrabajo = *req.LugarTrabajo
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if u.Empleado != nil {
			if u.Empleado.Persona != nil {
				if err := s.personaRepo.ActualizarTx(tx, u.Empleado.Persona); err != nil {
					return err
				}
			}
			if err := s.empleadoRepo.ActualizarTx(tx, u.Empleado); err != nil {
				return err
			}
		}
		return s.repo.ActualizarTx(tx, u)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}
	return mapUsuario(u), nil
}

// ── Administracion de usuarios ───────────────────────────────────────────────

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.UsuarioResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapUsuario(&list[i]))
	}
	return result, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Usuario no encontrado")
	}
	return mapUsuario(u), nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Usuario no encontrado")
	}

	if req.Username != nil && *req.Username != u.Username {
		existente, err := s.repo.ObtenerPorUsername(ctx, *req.Username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Internal(err)
		}
		if existente != nil {
			return nil, apierror.Conflict("El nombre de usuario ya esta en uso")
		}
		u.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, apierror.Internal(err)
		}
		u.PasswordHash = string(hash)
	}
	if req.Rol != nil {
		u.Rol = *req.Rol
	}
	if req.Activo != nil {
		u.Activo = *req.Activo
	}

	if err := s.repo.Actualizar(ctx, u); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapUsuario(u), nil
}

// DesactivarUsuario flips Activo off. The record stays readable so the
// account can be audited and reactivated.
func (s *authService) DesactivarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return notFound(err, "Usuario no encontrado")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
