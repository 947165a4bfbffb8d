package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente wraps a Persona with customer-specific fields.
// CodigoCliente se deriva de `<rtn>_<apellido>` al crear.
type Cliente struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonaID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CodigoCliente string    `gorm:"not null"`
	PagaIVA       bool      `gorm:"not null;default:true"`
	Activo        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Persona *Persona `gorm:"foreignKey:PersonaID"`
}

func (Cliente) TableName() string { return "clientes" }
