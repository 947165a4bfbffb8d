package dto

type CrearEmpleadoRequest struct {
	DatosPersona
	LugarTrabajo string `json:"workLocation" validate:"required"`
}

type ActualizarEmpleadoRequest struct {
	ActualizarPersona
	LugarTrabajo *string `json:"workLocation"`
}

type EmpleadoResponse struct {
	ID             string           `json:"id"`
	CodigoEmpleado string           `json:"codeEmployee"`
	LugarTrabajo   string           `json:"workLocation"`
	Activo         bool             `json:"isActive"`
	Persona        *PersonaResponse `json:"person,omitempty"`
}
