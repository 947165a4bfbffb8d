package model

import (
	"time"

	"github.com/google/uuid"
)

// Direccion is a delivery address owned by a Cliente. Nombre is the label
// the customer gives it (casa, trabajo, etc).
type Direccion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre     string    `gorm:"not null"`
	Ciudad     string    `gorm:"not null"`
	Direccion1 string    `gorm:"not null"`
	Direccion2 string
	Telefono   string `gorm:"not null"`
	Detalles   string
	Activo     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Direccion) TableName() string { return "direcciones" }
