package dto

import (
	"time"

	"catalogo/internal/listing"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearSubcategoriaRequest struct {
	CategoriaID    string  `json:"category"        validate:"required,uuid"`
	Name           string  `json:"name"            validate:"required,min=2,max=200"`
	Description    *string `json:"description"`
	Icon           *string `json:"icon"            validate:"omitempty,max=100"`
	Image          *string `json:"image"           validate:"omitempty,max=500"`
	SeoTitle       *string `json:"seo_title"       validate:"omitempty,max=60"`
	SeoDescription *string `json:"seo_description" validate:"omitempty,max=160"`
	SeoKeywords    *string `json:"seo_keywords"`
	IsActive       *bool   `json:"is_active"`
	Orden          *int    `json:"order"           validate:"omitempty,min=0"`
}

type ActualizarSubcategoriaRequest struct {
	CategoriaID    *string `json:"category"        validate:"omitempty,uuid"`
	Name           *string `json:"name"            validate:"omitempty,min=2,max=200"`
	Description    *string `json:"description"`
	Icon           *string `json:"icon"            validate:"omitempty,max=100"`
	Image          *string `json:"image"           validate:"omitempty,max=500"`
	SeoTitle       *string `json:"seo_title"       validate:"omitempty,max=60"`
	SeoDescription *string `json:"seo_description" validate:"omitempty,max=160"`
	SeoKeywords    *string `json:"seo_keywords"`
	IsActive       *bool   `json:"is_active"`
	Orden          *int    `json:"order"           validate:"omitempty,min=0"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type SubcategoriaFiltro struct {
	Estado      string
	Search      string
	CategoriaID string
	IsActive    *bool
	Fechas      listing.DateRange
	Ordering    string
	Page        listing.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SubcategoriaResponse struct {
	ID              string     `json:"id"`
	CategoriaID     string     `json:"category"`
	CategoriaNombre string     `json:"categoryNombre"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     *string    `json:"description"`
	Icon            *string    `json:"icon"`
	Image           *string    `json:"image"`
	SeoTitle        *string    `json:"seoTitle"`
	SeoDescription  *string    `json:"seoDescription"`
	SeoKeywords     *string    `json:"seoKeywords"`
	IsActive        bool       `json:"isActive"`
	Orden           int        `json:"order"`
	TotalProductos  int64      `json:"totalProductos"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty"`
}
