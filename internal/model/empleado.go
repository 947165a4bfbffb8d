package model

import (
	"time"

	"github.com/google/uuid"
)

// Empleado wraps a Persona with employment fields. Usuarios reference it.
type Empleado struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonaID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CodigoEmpleado string    `gorm:"not null"`
	LugarTrabajo   string
	Activo         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Persona *Persona `gorm:"foreignKey:PersonaID"`
}

func (Empleado) TableName() string { return "empleados" }
