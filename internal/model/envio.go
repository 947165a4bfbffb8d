package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Envio is a shipping record for delivery orders: references the Cliente and
// one of its Direcciones.
type Envio struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	DireccionID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Costo        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Estado       string          `gorm:"not null"`
	Repartidor   string
	FechaEntrega *time.Time
	Descripcion  string
	Activo       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Cliente   *Cliente   `gorm:"foreignKey:ClienteID"`
	Direccion *Direccion `gorm:"foreignKey:DireccionID"`
}

func (Envio) TableName() string { return "envios" }
