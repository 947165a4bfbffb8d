package dto

import "github.com/shopspring/decimal"

type CrearFacturaRequest struct {
	OrdenID    string          `json:"order"         validate:"required,uuid"`
	EmpleadoID string          `json:"employee"      validate:"required,uuid"`
	Propina    decimal.Decimal `json:"tips"`
	MetodoPago string          `json:"paymentMethod" validate:"required"`
	RTN        string          `json:"rtn"`
	Detalles   string          `json:"details"`
	// Email opcional del cliente: si viene, la factura se envia en PDF.
	EmailCliente string `json:"customerEmail" validate:"omitempty,email"`
}

type ActualizarFacturaRequest struct {
	MetodoPago *string `json:"paymentMethod"`
	RTN        *string `json:"rtn"`
	Detalles   *string `json:"details"`
}

type FacturaResponse struct {
	ID         string          `json:"id"`
	OrdenID    string          `json:"order"`
	EmpleadoID string          `json:"employee"`
	Fecha      string          `json:"date"`
	Subtotal   decimal.Decimal `json:"subTotal"`
	Impuesto   decimal.Decimal `json:"tax"`
	Descuento  decimal.Decimal `json:"discount"`
	Propina    decimal.Decimal `json:"tips"`
	CostoEnvio decimal.Decimal `json:"shippingCost"`
	Total      decimal.Decimal `json:"total"`
	MetodoPago string          `json:"paymentMethod"`
	RTN        string          `json:"rtn"`
	Detalles   string          `json:"details"`
	Activo     bool            `json:"isActive"`
}
