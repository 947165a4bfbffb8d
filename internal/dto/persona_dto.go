package dto

// DatosPersona carries the biographical fields shared by the cliente,
// proveedor and register payloads. JSON keys match the public API contract.
type DatosPersona struct {
	Identidad  string `json:"identidad" validate:"required"`
	Nombre     string `json:"name"      validate:"required,min=2"`
	Apellido   string `json:"lastName"  validate:"required,min=2"`
	RTN        string `json:"rtn"       validate:"omitempty,min=14"`
	Genero     string `json:"gender"`
	Nacimiento string `json:"birth"     validate:"omitempty,datetime=2006-01-02"`
	Email      string `json:"email"     validate:"required,email"`
	Telefono1  string `json:"phone1"    validate:"required"`
	Telefono2  string `json:"phone2"`
	Ubicacion  string `json:"location"`
	Pais       string `json:"country"`
	Ciudad     string `json:"city"`
}

// ActualizarPersona is the partial-update counterpart: nil means "keep".
type ActualizarPersona struct {
	Identidad  *string `json:"identidad" validate:"omitempty,min=2"`
	Nombre     *string `json:"name"      validate:"omitempty,min=2"`
	Apellido   *string `json:"lastName"  validate:"omitempty,min=2"`
	RTN        *string `json:"rtn"`
	Genero     *string `json:"gender"`
	Nacimiento *string `json:"birth"     validate:"omitempty,datetime=2006-01-02"`
	Email      *string `json:"email"     validate:"omitempty,email"`
	Telefono1  *string `json:"phone1"`
	Telefono2  *string `json:"phone2"`
	Ubicacion  *string `json:"location"`
	Pais       *string `json:"country"`
	Ciudad     *string `json:"city"`
}

// PersonaResponse is the expanded persona embedded in role-entity responses.
type PersonaResponse struct {
	ID         string `json:"id"`
	Identidad  string `json:"identidad"`
	Nombre     string `json:"name"`
	Apellido   string `json:"lastName"`
	RTN        string `json:"rtn"`
	Genero     string `json:"gender"`
	Nacimiento string `json:"birth,omitempty"`
	Email      string `json:"email"`
	Telefono1  string `json:"phone1"`
	Telefono2  string `json:"phone2"`
	Ubicacion  string `json:"location"`
	Pais       string `json:"country"`
	Ciudad     string `json:"city"`
	Activo     bool   `json:"isActive"`
}
