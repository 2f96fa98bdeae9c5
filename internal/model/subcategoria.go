package model

import (
	"time"

	"github.com/google/uuid"
)

// Subcategoria belongs to exactly one parent Categoria.
type Subcategoria struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoriaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"size:200;not null"`
	Slug           string    `gorm:"size:250;uniqueIndex;not null"`
	Description    *string   `gorm:"type:text"`
	Icon           *string   `gorm:"size:100"`
	Image          *string   `gorm:"size:500"`
	SeoTitle       *string   `gorm:"size:60"`
	SeoDescription *string   `gorm:"size:160"`
	SeoKeywords    *string   `gorm:"type:text"`
	IsActive       bool      `gorm:"not null;default:true;index"`
	Orden          int       `gorm:"column:orden;not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
}

func (Subcategoria) TableName() string { return "subcategorias" }

func (s *Subcategoria) IsDeleted() bool { return s.DeletedAt != nil }

// CategoriaNombre returns the parent category name, empty when not loaded.
func (s *Subcategoria) CategoriaNombre() string {
	if s.Categoria == nil {
		return ""
	}
	return s.Categoria.Name
}

func (s *Subcategoria) MarkDeleted(now time.Time) {
	s.DeletedAt = &now
	s.IsActive = false
}

func (s *Subcategoria) Restore() {
	s.DeletedAt = nil
	s.IsActive = true
}
