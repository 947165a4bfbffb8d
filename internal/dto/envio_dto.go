package dto

import "github.com/shopspring/decimal"

// ─── Direcciones ─────────────────────────────────────────────────────────────

type CrearDireccionRequest struct {
	ClienteID  string `json:"customer" validate:"required,uuid"`
	Nombre     string `json:"name"     validate:"required"`
	Ciudad     string `json:"city"     validate:"required"`
	Direccion1 string `json:"address1" validate:"required"`
	Direccion2 string `json:"address2"`
	Telefono   string `json:"phone"    validate:"required"`
	Detalles   string `json:"details"`
}

type ActualizarDireccionRequest struct {
	Nombre     *string `json:"name"`
	Ciudad     *string `json:"city"`
	Direccion1 *string `json:"address1"`
	Direccion2 *string `json:"address2"`
	Telefono   *string `json:"phone"`
	Detalles   *string `json:"details"`
}

type DireccionResponse struct {
	ID         string `json:"id"`
	ClienteID  string `json:"customer"`
	Nombre     string `json:"name"`
	Ciudad     string `json:"city"`
	Direccion1 string `json:"address1"`
	Direccion2 string `json:"address2"`
	Telefono   string `json:"phone"`
	Detalles   string `json:"details"`
	Activo     bool   `json:"isActive"`
}

// ─── Envios ──────────────────────────────────────────────────────────────────

type CrearEnvioRequest struct {
	ClienteID   string          `json:"customer"       validate:"required,uuid"`
	DireccionID string          `json:"address"        validate:"required,uuid"`
	Costo       decimal.Decimal `json:"cost"`
	Estado      string          `json:"status"         validate:"required"`
	Repartidor  string          `json:"deliverName"`
	FechaEntrega string         `json:"deliverTimeOut" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Descripcion string          `json:"description"`
}

type ActualizarEnvioRequest struct {
	Costo        *decimal.Decimal `json:"cost"`
	Estado       *string          `json:"status"`
	Repartidor   *string          `json:"deliverName"`
	FechaEntrega *string          `json:"deliverTimeOut" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Descripcion  *string          `json:"description"`
}

type EnvioResponse struct {
	ID           string          `json:"id"`
	ClienteID    string          `json:"customer"`
	DireccionID  string          `json:"address"`
	Costo        decimal.Decimal `json:"cost"`
	Estado       string          `json:"status"`
	Repartidor   string          `json:"deliverName"`
	FechaEntrega string          `json:"deliverTimeOut,omitempty"`
	Descripcion  string          `json:"description"`
	Activo       bool            `json:"isActive"`
}
