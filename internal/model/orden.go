package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una Orden.
const (
	OrdenAbierta   = "abierta"
	OrdenFacturada = "facturada"
)

// Canales de origen de una Orden.
const (
	CanalWeb    = "web"
	CanalMesa   = "mesa"
	CanalMesero = "mesero"
)

// Tipos de orden. Los tipos de entrega ("llevar", "recoger") requieren un
// Envio; "comer aqui" requiere NumeroMesa.
const (
	TipoComerAqui = "comer aqui"
	TipoLlevar    = "llevar"
	TipoRecoger   = "recoger"
)

// Orden is the order header. EmpleadoID is set for waiter-entered orders,
// ClienteID/EnvioID for web orders; the workflow fills them, never both paths
// at once.
type Orden struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroOrden int       `gorm:"not null;index"`
	Canal       string    `gorm:"not null"`
	TipoOrden   string    `gorm:"not null"`
	NumeroMesa  *int
	EmpleadoID  *uuid.UUID `gorm:"type:uuid;index"`
	EnvioID     *uuid.UUID `gorm:"type:uuid;index"`
	ClienteID   *uuid.UUID `gorm:"type:uuid;index"`
	Estado      string     `gorm:"not null;default:'abierta'"`
	Descripcion string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Empleado *Empleado      `gorm:"foreignKey:EmpleadoID"`
	Envio    *Envio         `gorm:"foreignKey:EnvioID"`
	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Detalles []OrdenDetalle `gorm:"foreignKey:OrdenID"`
}

func (Orden) TableName() string { return "ordenes" }

// EsEntrega reports whether the order type requires a shipping record.
func (o *Orden) EsEntrega() bool {
	return o.TipoOrden == TipoLlevar || o.TipoOrden == TipoRecoger
}

// OrdenDetalle is one line item of an Orden. Total is recomputed server-side
// as Subtotal + Impuesto - Descuento.
type OrdenDetalle struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad   int             `gorm:"not null"`
	Precio     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Impuesto   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Descuento  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Notas      string
	Activo     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (OrdenDetalle) TableName() string { return "orden_detalles" }
