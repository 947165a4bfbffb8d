package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Factura summarizes the financial totals of a closed Orden. Total is
// recomputed server-side from the order's detalles plus propina and costo de
// envio.
type Factura struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmpleadoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha      time.Time       `gorm:"not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Impuesto   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Descuento  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Propina    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CostoEnvio decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MetodoPago string          `gorm:"not null"`
	RTN        string          `gorm:"column:rtn"`
	Detalles   string
	Activo     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Orden    *Orden    `gorm:"foreignKey:OrdenID"`
	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (Factura) TableName() string { return "facturas" }
