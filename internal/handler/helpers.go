package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so validator tags like
	// min=0, gt=0, required work without panicking.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report fields by their json name so validation errors match the wire
	// contract instead of Go identifiers.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// mensajesCampo holds the exact wording the API has always used for a few
// well-known required fields.
var mensajesCampo = map[string]string{
	"identidad": "Identidad es requerida",
	"username":  "Usuario es requerido",
	"password":  "Contrasena es requerida",
}

func mensajeValidacion(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		if msg, ok := mensajesCampo[fe.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("%s es requerido", fe.Field())
	}
	return fmt.Sprintf("%s no es valido", fe.Field())
}

// bindAndValidate binds the JSON body and runs the validator tags. On
// failure it writes the 400 response and returns false; the caller must
// return immediately.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Response{OK: false, Message: "JSON invalido"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []apierror.FieldError
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, apierror.FieldError{Field: fe.Field(), Message: mensajeValidacion(fe)})
		}
		respondError(c, apierror.ValidationFields(fields))
		return false
	}
	return true
}

// parseID parses the :id path parameter. The error message format is part
// of the API contract.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, apierror.BadID(raw))
		return uuid.Nil, false
	}
	return id, true
}

// respond writes the success envelope.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"ok": true, "data": data})
}

// respondError maps the error kind to its status code and writes the safe
// payload. Internal causes reach the log through the middleware chain.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(apierror.Status(err), apierror.Payload(err))
}
