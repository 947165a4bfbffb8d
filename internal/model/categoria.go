package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies productos. The hierarchy is expressed with numeric
// indices (Indice/CodigoPadre); no cycle detection is performed.
type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Indice      int       `gorm:"not null"`
	CodigoPadre int       `gorm:"not null"`
	Codigo      string    `gorm:"not null"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Categoria) TableName() string { return "categorias" }
