// cmd/seedadmin/main.go — Crea o reactiva el usuario administrador inicial.
// Uso: go run ./cmd/seedadmin [-username admin] [-password ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/EmSanchezM/posweb-backend/internal/config"
	"github.com/EmSanchezM/posweb-backend/internal/infra"
	"github.com/EmSanchezM/posweb-backend/internal/model"
)

func main() {
	username := flag.String("username", "admin", "nombre de usuario del administrador")
	password := flag.String("password", "", "contrasena (o variable SEED_ADMIN_PASSWORD)")
	nombre := flag.String("nombre", "Administrador", "nombre de la persona")
	apellido := flag.String("apellido", "Sistema", "apellido de la persona")
	identidad := flag.String("identidad", "0000000000000", "identidad de la persona")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("SEED_ADMIN_PASSWORD")
	}
	if *password == "" {
		log.Fatal("se requiere -password o SEED_ADMIN_PASSWORD")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}

	ctx := context.Background()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existente model.Usuario
		res := tx.Where("username = ?", *username).First(&existente)
		if res.Error == nil {
			existente.PasswordHash = string(hash)
			existente.Rol = model.RolAdmin
			existente.Activo = true
			return tx.Save(&existente).Error
		}
		if res.Error != gorm.ErrRecordNotFound {
			return res.Error
		}

		persona := model.Persona{
			Identidad: *identidad,
			Nombre:    *nombre,
			Apellido:  *apellido,
			Activo:    true,
		}
		if err := tx.Create(&persona).Error; err != nil {
			return err
		}
		empleado := model.Empleado{
			PersonaID:      persona.ID,
			CodigoEmpleado: fmt.Sprintf("%s_%s", persona.RTN, persona.Apellido),
			LugarTrabajo:   "Oficina",
			Activo:         true,
		}
		if err := tx.Create(&empleado).Error; err != nil {
			return err
		}
		usuario := model.Usuario{
			EmpleadoID:   empleado.ID,
			Username:     *username,
			PasswordHash: string(hash),
			Rol:          model.RolAdmin,
			Activo:       true,
		}
		return tx.Create(&usuario).Error
	})
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	fmt.Printf("Usuario administrador '%s' listo\n", *username)
}
