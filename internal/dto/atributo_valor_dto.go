package dto

import (
	"time"

	"catalogo/internal/listing"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearAtributoValorRequest struct {
	AtributoID string  `json:"atributo"    validate:"required,uuid"`
	Valor      string  `json:"valor"       validate:"required,min=1,max=100"`
	ValorExtra *string `json:"valor_extra" validate:"omitempty,max=100"`
	Orden      *int    `json:"orden"       validate:"omitempty,min=0"`
	Activo     *bool   `json:"activo"`
}

type ActualizarAtributoValorRequest struct {
	AtributoID *string `json:"atributo"    validate:"omitempty,uuid"`
	Valor      *string `json:"valor"       validate:"omitempty,min=1,max=100"`
	ValorExtra *string `json:"valor_extra" validate:"omitempty,max=100"`
	Orden      *int    `json:"orden"       validate:"omitempty,min=0"`
	Activo     *bool   `json:"activo"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type AtributoValorFiltro struct {
	Estado     string
	Search     string
	AtributoID string
	Activo     *bool
	Fechas     listing.DateRange
	Ordering   string
	Page       listing.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AtributoValorResponse struct {
	ID             string     `json:"id"`
	AtributoID     string     `json:"atributo"`
	AtributoNombre string     `json:"atributoNombre"`
	Valor          string     `json:"valor"`
	ValorExtra     *string    `json:"valorExtra"`
	Orden          int        `json:"orden"`
	Activo         bool       `json:"activo"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
}
