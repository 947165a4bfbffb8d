package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	DatosPersona
	PagaIVA *bool `json:"payIVA" validate:"required"`
}

type ActualizarClienteRequest struct {
	ActualizarPersona
	PagaIVA *bool `json:"payIVA"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID            string           `json:"id"`
	CodigoCliente string           `json:"codeCustomer"`
	PagaIVA       bool             `json:"payIVA"`
	Activo        bool             `json:"isActive"`
	Persona       *PersonaResponse `json:"person,omitempty"`
}
