package model

import (
	"time"

	"github.com/google/uuid"
)

// Proveedor wraps a Persona with supplier-specific fields.
type Proveedor struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonaID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CodigoProveedor string    `gorm:"not null"`
	LugarTrabajo    string
	Website         string
	Facebook        string
	Activo          bool `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Persona *Persona `gorm:"foreignKey:PersonaID"`
}

func (Proveedor) TableName() string { return "proveedores" }
