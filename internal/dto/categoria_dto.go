package dto

import (
	"time"

	"catalogo/internal/listing"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Name           string  `json:"name"            validate:"required,min=2,max=200"`
	Description    *string `json:"description"`
	Icon           *string `json:"icon"            validate:"omitempty,max=100"`
	Image          *string `json:"image"           validate:"omitempty,max=500"`
	SeoTitle       *string `json:"seo_title"       validate:"omitempty,max=60"`
	SeoDescription *string `json:"seo_description" validate:"omitempty,max=160"`
	SeoKeywords    *string `json:"seo_keywords"`
	IsActive       *bool   `json:"is_active"`
}

type ActualizarCategoriaRequest struct {
	Name           *string `json:"name"            validate:"omitempty,min=2,max=200"`
	Description    *string `json:"description"`
	Icon           *string `json:"icon"            validate:"omitempty,max=100"`
	Image          *string `json:"image"           validate:"omitempty,max=500"`
	SeoTitle       *string `json:"seo_title"       validate:"omitempty,max=60"`
	SeoDescription *string `json:"seo_description" validate:"omitempty,max=160"`
	SeoKeywords    *string `json:"seo_keywords"`
	IsActive       *bool   `json:"is_active"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type CategoriaFiltro struct {
	Estado   string
	Search   string
	IsActive *bool
	Fechas   listing.DateRange
	Ordering string
	Page     listing.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Slug               string     `json:"slug"`
	Description        *string    `json:"description"`
	Icon               *string    `json:"icon"`
	Image              *string    `json:"image"`
	SeoTitle           *string    `json:"seoTitle"`
	SeoDescription     *string    `json:"seoDescription"`
	SeoKeywords        *string    `json:"seoKeywords"`
	IsActive           bool       `json:"isActive"`
	TotalSubcategorias int64      `json:"totalSubcategorias"`
	TotalProductos     int64      `json:"totalProductos"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	DeletedAt          *time.Time `json:"deletedAt,omitempty"`
}
