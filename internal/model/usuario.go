package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles disponibles para usuarios del sistema.
const (
	RolAdmin = "Admin"
	RolUser  = "User"
)

// Usuario is a system account tied to an Empleado.
// Eliminar un usuario es siempre un toggle de Activo: la cuenta queda
// consultable para auditoria y reactivacion.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpleadoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (Usuario) TableName() string { return "usuarios" }
