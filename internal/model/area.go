package model

import (
	"time"

	"github.com/google/uuid"
)

// Area is a physical zone of the business (cocina, estante, salon). Same
// index-based hierarchy as Categoria, plus an optional responsible empleado.
type Area struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Indice      int       `gorm:"not null"`
	CodigoPadre int       `gorm:"not null"`
	Codigo      string    `gorm:"not null"`
	Nombre      string    `gorm:"not null"`
	Telefono    string
	EmpleadoID  *uuid.UUID `gorm:"type:uuid;index"`
	Detalles    string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (Area) TableName() string { return "areas" }
