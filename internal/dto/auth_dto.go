package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=5"`
}

// RegisterRequest creates persona → empleado → usuario in one call.
type RegisterRequest struct {
	DatosPersona
	Username     string `json:"username"     validate:"required,min=4"`
	Password     string `json:"password"     validate:"required,min=5"`
	Rol          string `json:"rol"          validate:"required,oneof=Admin User"`
	LugarTrabajo string `json:"workLocation" validate:"required"`
}

type PerfilRequest struct {
	ActualizarPersona
	Username     *string `json:"username"     validate:"omitempty,min=4"`
	LugarTrabajo *string `json:"workLocation"`
}

type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	Usuario     UsuarioResponse `json:"user"`
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

type ActualizarUsuarioRequest struct {
	Username *string `json:"username" validate:"omitempty,min=4"`
	Password *string `json:"password" validate:"omitempty,min=5"`
	Rol      *string `json:"rol"      validate:"omitempty,oneof=Admin User"`
	Activo   *bool   `json:"isActive"`
}

type UsuarioResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Rol      string            `json:"rol"`
	Activo   bool              `json:"isActive"`
	Empleado *EmpleadoResponse `json:"employee,omitempty"`
}
