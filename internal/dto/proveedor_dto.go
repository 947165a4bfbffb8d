package dto

type CrearProveedorRequest struct {
	DatosPersona
	LugarTrabajo string `json:"workLocation"`
	Website      string `json:"website"`
	Facebook     string `json:"facebook"`
}

type ActualizarProveedorRequest struct {
	ActualizarPersona
	LugarTrabajo *string `json:"workLocation"`
	Website      *string `json:"website"`
	Facebook     *string `json:"facebook"`
}

type ProveedorResponse struct {
	ID              string           `json:"id"`
	CodigoProveedor string           `json:"codeSupplier"`
	LugarTrabajo    string           `json:"workLocation"`
	Website         string           `json:"website"`
	Facebook        string           `json:"facebook"`
	Activo          bool             `json:"isActive"`
	Persona         *PersonaResponse `json:"person,omitempty"`
}
