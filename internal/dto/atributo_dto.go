package dto

import (
	"time"

	"catalogo/internal/listing"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearAtributoRequest struct {
	Name        string  `json:"name"         validate:"required,min=2,max=200"`
	Descripcion *string `json:"descripcion"`
	TipoInput   string  `json:"tipo_input"   validate:"omitempty,oneof=text number select color checkbox radio"`
	TipoDato    string  `json:"tipo_dato"    validate:"omitempty,oneof=string integer float boolean"`
	EsVariable  *bool   `json:"es_variable"`
	EsFiltrable *bool   `json:"es_filtrable"`
	Orden       *int    `json:"orden"        validate:"omitempty,min=0"`
}

type ActualizarAtributoRequest struct {
	Name        *string `json:"name"         validate:"omitempty,min=2,max=200"`
	Descripcion *string `json:"descripcion"`
	TipoInput   *string `json:"tipo_input"   validate:"omitempty,oneof=text number select color checkbox radio"`
	TipoDato    *string `json:"tipo_dato"    validate:"omitempty,oneof=string integer float boolean"`
	EsVariable  *bool   `json:"es_variable"`
	EsFiltrable *bool   `json:"es_filtrable"`
	Orden       *int    `json:"orden"        validate:"omitempty,min=0"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// AtributoFiltro carries the already-parsed listing parameters; handlers
// build it with the listing helpers.
type AtributoFiltro struct {
	Estado      string
	Search      string
	TipoInput   string
	EsVariable  *bool
	EsFiltrable *bool
	Fechas      listing.DateRange
	Ordering    string
	Page        listing.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AtributoResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Descripcion  *string    `json:"descripcion"`
	TipoInput    string     `json:"tipoInput"`
	TipoDato     string     `json:"tipoDato"`
	EsVariable   bool       `json:"esVariable"`
	EsFiltrable  bool       `json:"esFiltrable"`
	Orden        int        `json:"orden"`
	TotalValores int64      `json:"totalValores"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}
