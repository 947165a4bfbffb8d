package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog item. The four price tiers are independent; no
// ordering between them is enforced.
type Producto struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre           string    `gorm:"index;not null"`
	Descripcion      string
	CategoriaID      *uuid.UUID      `gorm:"type:uuid;index"`
	ProveedorID      *uuid.UUID      `gorm:"type:uuid;index"`
	Precio1          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Precio2          decimal.Decimal `gorm:"type:decimal(10,2)"`
	Precio3          decimal.Decimal `gorm:"type:decimal(10,2)"`
	Precio4          decimal.Decimal `gorm:"type:decimal(10,2)"`
	Costo            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock            int             `gorm:"not null;default:0"`
	StockMinimo      int             `gorm:"not null;default:0"`
	Marca            string
	Serie            string
	Color            string
	Anio             string
	Peso             string
	Tamanio          string
	FechaVencimiento *time.Time
	FechaLimiteVenta *time.Time
	EsConsumible     bool `gorm:"not null;default:false"`
	Activo           bool `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (Producto) TableName() string { return "productos" }
