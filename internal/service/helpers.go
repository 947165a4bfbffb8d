package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFound maps gorm's record-not-found onto the entity-specific 404; any
// other lookup failure stays internal.
func notFound(err error, mensaje string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(mensaje)
	}
	return apierror.Internal(err)
}

const fechaCorta = "2006-01-02"

// parseFecha parses an optional yyyy-mm-dd field already shape-checked by the
// validator. Empty input means nil.
func parseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(fechaCorta, s)
	if err != nil {
		return nil
	}
	return &t
}

func parseFechaHora(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// codigoRol derives the code shared by clientes and empleados: `<rtn>_<apellido>`.
func codigoRol(rtn, apellido string) string {
	return fmt.Sprintf("%s_%s", rtn, apellido)
}

// personaDesde builds a Persona model from the shared biographical payload.
func personaDesde(datos dto.DatosPersona) *model.Persona {
	return &model.Persona{
		Identidad:  datos.Identidad,
		Nombre:     datos.Nombre,
		Apellido:   datos.Apellido,
		RTN:        datos.RTN,
		Genero:     datos.Genero,
		Nacimiento: parseFecha(datos.Nacimiento),
		Email:      datos.Email,
		Telefono1:  datos.Telefono1,
		Telefono2:  datos.Telefono2,
		Ubicacion:  datos.Ubicacion,
		Pais:       datos.Pais,
		Ciudad:     datos.Ciudad,
		Activo:     true,
	}
}

// aplicarPersona patches a Persona in place; nil fields keep their value.
func aplicarPersona(p *model.Persona, datos dto.ActualizarPersona) {
	if datos.Identidad != nil {
		p.Identidad = *datos.Identidad
	}
	if datos.Nombre != nil {
		p.Nombre = *datos.Nombre
	}
	if datos.Apellido != nil {
		p.Apellido = *datos.Apellido
	}
	if datos.RTN != nil {
		p.RTN = *datos.RTN
	}
	if datos.Genero != nil {
		p.Genero = *datos.Genero
	}
	if datos.Nacimiento != nil {
		p.Nacimiento = parseFecha(*datos.Nacimiento)
	}
	if datos.Email != nil {
		p.Email = *datos.Email
	}
	if datos.Telefono1 != nil {
		p.Telefono1 = *datos.Telefono1
	}
	if datos.Telefono2 != nil {
		p.Telefono2 = *datos.Telefono2
	}
	if datos.Ubicacion != nil {
		p.Ubicacion = *datos.Ubicacion
	}
	if datos.Pais != nil {
		p.Pais = *datos.Pais
	}
	if datos.Ciudad != nil {
		p.Ciudad = *datos.Ciudad
	}
}

func mapPersona(p *model.Persona) *dto.PersonaResponse {
	if p == nil {
		return nil
	}
	nacimiento := ""
	if p.Nacimiento != nil {
		nacimiento = p.Nacimiento.Format(fechaCorta)
	}
	return &dto.PersonaResponse{
		ID:         p.ID.String(),
		Identidad:  p.Identidad,
		Nombre:     p.Nombre,
		Apellido:   p.Apellido,
		RTN:        p.RTN,
		Genero:     p.Genero,
		Nacimiento: nacimiento,
		Email:      p.Email,
		Telefono1:  p.Telefono1,
		Telefono2:  p.Telefono2,
		Ubicacion:  p.Ubicacion,
		Pais:       p.Pais,
		Ciudad:     p.Ciudad,
		Activo:     p.Activo,
	}
}
