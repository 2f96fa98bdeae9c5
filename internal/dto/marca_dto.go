package dto

import (
	"time"

	"catalogo/internal/listing"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMarcaRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=200"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"        validate:"omitempty,max=500"`
	Website     *string `json:"website"     validate:"omitempty,url,max=500"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  *bool   `json:"is_featured"`
}

type ActualizarMarcaRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=2,max=200"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"        validate:"omitempty,max=500"`
	Website     *string `json:"website"     validate:"omitempty,url,max=500"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  *bool   `json:"is_featured"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type MarcaFiltro struct {
	Estado     string
	Search     string
	IsActive   *bool
	IsFeatured *bool
	Fechas     listing.DateRange
	Ordering   string
	Page       listing.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MarcaResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Description    *string    `json:"description"`
	Logo           *string    `json:"logo"`
	Website        *string    `json:"website"`
	IsActive       bool       `json:"isActive"`
	IsFeatured     bool       `json:"isFeatured"`
	TotalProductos int64      `json:"totalProductos"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
}
