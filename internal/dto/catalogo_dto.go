package dto

// ─── Categorias ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Indice      int    `json:"index"        validate:"required,min=1"`
	CodigoPadre int    `json:"parentCode"   validate:"required,min=1"`
	Codigo      string `json:"codeCategory" validate:"required"`
	Nombre      string `json:"nameCategory" validate:"required,min=2"`
	Descripcion string `json:"description"`
}

type ActualizarCategoriaRequest struct {
	Indice      *int    `json:"index"        validate:"omitempty,min=1"`
	CodigoPadre *int    `json:"parentCode"   validate:"omitempty,min=1"`
	Codigo      *string `json:"codeCategory"`
	Nombre      *string `json:"nameCategory" validate:"omitempty,min=2"`
	Descripcion *string `json:"description"`
}

type CategoriaResponse struct {
	ID          string `json:"id"`
	Indice      int    `json:"index"`
	CodigoPadre int    `json:"parentCode"`
	Codigo      string `json:"codeCategory"`
	Nombre      string `json:"nameCategory"`
	Descripcion string `json:"description"`
	Activo      bool   `json:"isActive"`
}

// ─── Areas ───────────────────────────────────────────────────────────────────

type CrearAreaRequest struct {
	Indice      int     `json:"index"      validate:"required,min=1"`
	CodigoPadre int     `json:"parentCode" validate:"required,min=1"`
	Codigo      string  `json:"codeArea"   validate:"required"`
	Nombre      string  `json:"nameArea"   validate:"required,min=2"`
	Telefono    string  `json:"phoneArea"`
	EmpleadoID  *string `json:"employee"   validate:"omitempty,uuid"`
	Detalles    string  `json:"details"`
}

type ActualizarAreaRequest struct {
	Indice      *int    `json:"index"      validate:"omitempty,min=1"`
	CodigoPadre *int    `json:"parentCode" validate:"omitempty,min=1"`
	Codigo      *string `json:"codeArea"`
	Nombre      *string `json:"nameArea"   validate:"omitempty,min=2"`
	Telefono    *string `json:"phoneArea"`
	EmpleadoID  *string `json:"employee"   validate:"omitempty,uuid"`
	Detalles    *string `json:"details"`
}

type AreaResponse struct {
	ID          string  `json:"id"`
	Indice      int     `json:"index"`
	CodigoPadre int     `json:"parentCode"`
	Codigo      string  `json:"codeArea"`
	Nombre      string  `json:"nameArea"`
	Telefono    string  `json:"phoneArea"`
	EmpleadoID  *string `json:"employee"`
	Detalles    string  `json:"details"`
	Activo      bool    `json:"isActive"`
}
