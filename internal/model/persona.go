package model

import (
	"time"

	"github.com/google/uuid"
)

// Persona holds the biographical and contact data shared by clientes,
// proveedores and empleados. Role records reference it 1:1 and never embed it.
type Persona struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Identidad  string    `gorm:"index;not null"`
	Nombre     string    `gorm:"not null"`
	Apellido   string    `gorm:"not null"`
	RTN        string    `gorm:"column:rtn"`
	Genero     string
	Nacimiento *time.Time
	Email      string
	Telefono1  string
	Telefono2  string
	Ubicacion  string
	Pais       string
	Ciudad     string
	Activo     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Persona) TableName() string { return "personas" }
