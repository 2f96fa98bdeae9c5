package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria is a top-level product category, with SEO metadata for the
// storefront category pages.
type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"size:200;not null"`
	Slug        string    `gorm:"size:250;uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	// Icon is a Material-UI icon name rendered by the admin frontend.
	Icon           *string `gorm:"size:100"`
	Image          *string `gorm:"size:500"`
	SeoTitle       *string `gorm:"size:60"`
	SeoDescription *string `gorm:"size:160"`
	SeoKeywords    *string `gorm:"type:text"`
	IsActive       bool    `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`

	Subcategorias []Subcategoria `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
}

func (Categoria) TableName() string { return "categorias" }

func (c *Categoria) IsDeleted() bool { return c.DeletedAt != nil }

func (c *Categoria) MarkDeleted(now time.Time) {
	c.DeletedAt = &now
	c.IsActive = false
}

func (c *Categoria) Restore() {
	c.DeletedAt = nil
	c.IsActive = true
}
