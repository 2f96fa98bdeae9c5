package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores backoffice users with role-based access.
// Rol: "lector" | "editor" | "administrador"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Apellido     string
	Email        *string
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NombreCompleto is what the product audit fields display for
// created_by / updated_by.
func (u *Usuario) NombreCompleto() string {
	full := u.Nombre
	if u.Apellido != "" {
		full += " " + u.Apellido
	}
	if full == "" {
		return u.Username
	}
	return full
}
