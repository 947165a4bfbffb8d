package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ClienteInline is the optional biographical block of a web order: the
// workflow creates Persona + Cliente from it inside the order transaction.
type ClienteInline struct {
	DatosPersona
	PagaIVA *bool `json:"payIVA"`
}

// EnvioInline is the shipping block, required when TipoOrden is a delivery
// flow. The workflow creates the Direccion and the Envio from it.
type EnvioInline struct {
	NombreDireccion string          `json:"addressName" validate:"required"`
	Ciudad          string          `json:"city"        validate:"required"`
	Direccion1      string          `json:"address1"    validate:"required"`
	Direccion2      string          `json:"address2"`
	Telefono        string          `json:"phone"       validate:"required"`
	Detalles        string          `json:"details"`
	Costo           decimal.Decimal `json:"cost"`
	Repartidor      string          `json:"deliverName"`
	FechaEntrega    string          `json:"deliverTimeOut" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Descripcion     string          `json:"description"`
}

type ItemOrdenRequest struct {
	ProductoID string          `json:"product"  validate:"required,uuid"`
	Cantidad   int             `json:"quantity" validate:"required,min=1"`
	Precio     decimal.Decimal `json:"price"    validate:"required"`
	Subtotal   decimal.Decimal `json:"subTotal" validate:"required"`
	Impuesto   decimal.Decimal `json:"tax"`
	Descuento  decimal.Decimal `json:"discount"`
	Notas      string          `json:"notes"`
}

type CrearOrdenRequest struct {
	NumeroOrden int     `json:"orderNum"  validate:"required,min=1"`
	Canal       string  `json:"canal"     validate:"required,min=2"`
	TipoOrden   string  `json:"orderType" validate:"required,min=2"`
	NumeroMesa  *int    `json:"tableNum"  validate:"omitempty,min=1"`
	EmpleadoID  *string `json:"employee"  validate:"omitempty,uuid"`
	ClienteID   *string `json:"customer"  validate:"omitempty,uuid"`
	// Estado del caller se ignora: toda orden nace "abierta".
	Estado      string             `json:"status"`
	Descripcion string             `json:"description"`
	Cliente     *ClienteInline     `json:"customerData"`
	Envio       *EnvioInline       `json:"shipping"`
	Items       []ItemOrdenRequest `json:"orderItems" validate:"required,min=1,dive"`
}

type ActualizarOrdenRequest struct {
	NumeroOrden *int    `json:"orderNum"  validate:"omitempty,min=1"`
	Canal       *string `json:"canal"     validate:"omitempty,min=2"`
	TipoOrden   *string `json:"orderType" validate:"omitempty,min=2"`
	NumeroMesa  *int    `json:"tableNum"  validate:"omitempty,min=1"`
	Estado      *string `json:"status"`
	Descripcion *string `json:"description"`
}

// ─── OrdenDetalle standalone CRUD ────────────────────────────────────────────

type CrearOrdenDetalleRequest struct {
	OrdenID    string          `json:"order"    validate:"required,uuid"`
	ProductoID string          `json:"product"  validate:"required,uuid"`
	Cantidad   int             `json:"quantity" validate:"required,min=1"`
	Precio     decimal.Decimal `json:"price"    validate:"required"`
	Subtotal   decimal.Decimal `json:"subTotal" validate:"required"`
	Impuesto   decimal.Decimal `json:"tax"`
	Descuento  decimal.Decimal `json:"discount"`
	Notas      string          `json:"notes"`
}

type ActualizarOrdenDetalleRequest struct {
	Cantidad  *int             `json:"quantity" validate:"omitempty,min=1"`
	Precio    *decimal.Decimal `json:"price"`
	Subtotal  *decimal.Decimal `json:"subTotal"`
	Impuesto  *decimal.Decimal `json:"tax"`
	Descuento *decimal.Decimal `json:"discount"`
	Notas     *string          `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrdenDetalleResponse struct {
	ID         string          `json:"id"`
	OrdenID    string          `json:"order"`
	ProductoID string          `json:"product"`
	Producto   string          `json:"productName,omitempty"`
	Cantidad   int             `json:"quantity"`
	Precio     decimal.Decimal `json:"price"`
	Subtotal   decimal.Decimal `json:"subTotal"`
	Impuesto   decimal.Decimal `json:"tax"`
	Descuento  decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	Notas      string          `json:"notes"`
	Activo     bool            `json:"isActive"`
}

// OrdenResponse carries the whole persisted aggregate so callers can see
// exactly what the workflow created.
type OrdenResponse struct {
	ID          string                 `json:"id"`
	NumeroOrden int                    `json:"orderNum"`
	Canal       string                 `json:"canal"`
	TipoOrden   string                 `json:"orderType"`
	NumeroMesa  *int                   `json:"tableNum,omitempty"`
	EmpleadoID  *string                `json:"employee,omitempty"`
	EnvioID     *string                `json:"shipping,omitempty"`
	ClienteID   *string                `json:"customer,omitempty"`
	Estado      string                 `json:"status"`
	Descripcion string                 `json:"description"`
	Activo      bool                   `json:"isActive"`
	Detalles    []OrdenDetalleResponse `json:"orderItems,omitempty"`
}
