package dto

import (
	"time"

	"catalogo/internal/listing"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCategoriaAtributoRequest struct {
	CategoriaID string `json:"categoria"   validate:"required,uuid"`
	AtributoID  string `json:"atributo"    validate:"required,uuid"`
	Obligatorio *bool  `json:"obligatorio"`
	Orden       *int   `json:"orden"       validate:"omitempty,min=0"`
}

type ActualizarCategoriaAtributoRequest struct {
	Obligatorio *bool `json:"obligatorio"`
	Orden       *int  `json:"orden"       validate:"omitempty,min=0"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type CategoriaAtributoFiltro struct {
	Search      string
	CategoriaID string
	AtributoID  string
	Obligatorio *bool
	Fechas      listing.DateRange
	Ordering    string
	Page        listing.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoriaAtributoResponse struct {
	ID              string    `json:"id"`
	CategoriaID     string    `json:"categoria"`
	CategoriaNombre string    `json:"categoriaNombre"`
	AtributoID      string    `json:"atributo"`
	AtributoNombre  string    `json:"atributoNombre"`
	Obligatorio     bool      `json:"obligatorio"`
	Orden           int       `json:"orden"`
	CreatedAt       time.Time `json:"createdAt"`
}
