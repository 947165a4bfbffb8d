package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre           string          `json:"name"        validate:"required,min=2"`
	Descripcion      string          `json:"description"`
	CategoriaID      *string         `json:"category"    validate:"omitempty,uuid"`
	ProveedorID      *string         `json:"supplier"    validate:"omitempty,uuid"`
	Precio1          decimal.Decimal `json:"price1"      validate:"required"`
	Precio2          decimal.Decimal `json:"price2"`
	Precio3          decimal.Decimal `json:"price3"`
	Precio4          decimal.Decimal `json:"price4"`
	Costo            decimal.Decimal `json:"cost"        validate:"required"`
	Stock            int             `json:"inStock"     validate:"min=0"`
	StockMinimo      int             `json:"minCount"    validate:"min=0"`
	Marca            string          `json:"brand"`
	Serie            string          `json:"serie"`
	Color            string          `json:"color"`
	Anio             string          `json:"year"`
	Peso             string          `json:"weight"`
	Tamanio          string          `json:"size"`
	FechaVencimiento string          `json:"expiredDate"     validate:"omitempty,datetime=2006-01-02"`
	FechaLimiteVenta string          `json:"expiredSaleDate" validate:"omitempty,datetime=2006-01-02"`
	EsConsumible     bool            `json:"isConsumible"`
}

type ActualizarProductoRequest struct {
	Nombre           *string          `json:"name"        validate:"omitempty,min=2"`
	Descripcion      *string          `json:"description"`
	CategoriaID      *string          `json:"category"    validate:"omitempty,uuid"`
	ProveedorID      *string          `json:"supplier"    validate:"omitempty,uuid"`
	Precio1          *decimal.Decimal `json:"price1"`
	Precio2          *decimal.Decimal `json:"price2"`
	Precio3          *decimal.Decimal `json:"price3"`
	Precio4          *decimal.Decimal `json:"price4"`
	Costo            *decimal.Decimal `json:"cost"`
	Stock            *int             `json:"inStock"     validate:"omitempty,min=0"`
	StockMinimo      *int             `json:"minCount"    validate:"omitempty,min=0"`
	Marca            *string          `json:"brand"`
	Serie            *string          `json:"serie"`
	Color            *string          `json:"color"`
	Anio             *string          `json:"year"`
	Peso             *string          `json:"weight"`
	Tamanio          *string          `json:"size"`
	FechaVencimiento *string          `json:"expiredDate"     validate:"omitempty,datetime=2006-01-02"`
	FechaLimiteVenta *string          `json:"expiredSaleDate" validate:"omitempty,datetime=2006-01-02"`
	EsConsumible     *bool            `json:"isConsumible"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"name"`
	Descripcion      string          `json:"description"`
	CategoriaID      *string         `json:"category"`
	ProveedorID      *string         `json:"supplier"`
	Precio1          decimal.Decimal `json:"price1"`
	Precio2          decimal.Decimal `json:"price2"`
	Precio3          decimal.Decimal `json:"price3"`
	Precio4          decimal.Decimal `json:"price4"`
	Costo            decimal.Decimal `json:"cost"`
	Stock            int             `json:"inStock"`
	StockMinimo      int             `json:"minCount"`
	Marca            string          `json:"brand"`
	Serie            string          `json:"serie"`
	Color            string          `json:"color"`
	Anio             string          `json:"year"`
	Peso             string          `json:"weight"`
	Tamanio          string          `json:"size"`
	FechaVencimiento string          `json:"expiredDate,omitempty"`
	FechaLimiteVenta string          `json:"expiredSaleDate,omitempty"`
	EsConsumible     bool            `json:"isConsumible"`
	Activo           bool            `json:"isActive"`
}
