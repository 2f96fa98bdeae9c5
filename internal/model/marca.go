package model

import (
	"time"

	"github.com/google/uuid"
)

// Marca is a product brand (Nike, Apple, Samsung…).
type Marca struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"size:200;not null"`
	Slug        string    `gorm:"size:250;uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	// Logo stores the served asset path; upload handling lives outside this API.
	Logo       *string `gorm:"size:500"`
	Website    *string `gorm:"size:500"`
	IsActive   bool    `gorm:"not null;default:true;index"`
	IsFeatured bool    `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`
}

func (Marca) TableName() string { return "marcas" }

func (m *Marca) IsDeleted() bool { return m.DeletedAt != nil }

func (m *Marca) MarkDeleted(now time.Time) {
	m.DeletedAt = &now
	m.IsActive = false
}

func (m *Marca) Restore() {
	m.DeletedAt = nil
	m.IsActive = true
}
