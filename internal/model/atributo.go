package model

import (
	"time"

	"github.com/google/uuid"
)

// Atributo defines a dynamic product attribute type (Color, Talla, Material…).
// TipoInput: text | number | select | color | checkbox | radio.
// TipoDato: string | integer | float | boolean.
type Atributo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"size:200;not null"`
	Slug        string    `gorm:"size:250;uniqueIndex;not null"`
	Descripcion *string   `gorm:"type:text"`
	TipoInput   string    `gorm:"size:20;not null;default:'text';index"`
	TipoDato    string    `gorm:"size:20;not null;default:'string'"`
	// EsVariable: whether the attribute affects price/stock of products.
	EsVariable bool `gorm:"not null;default:true;index"`
	// EsFiltrable: whether the attribute appears in catalog search filters.
	EsFiltrable bool `gorm:"not null;default:true;index"`
	Orden       int  `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	Valores []AtributoValor `gorm:"foreignKey:AtributoID;constraint:OnDelete:CASCADE"`
}

func (Atributo) TableName() string { return "atributos" }

func (a *Atributo) IsDeleted() bool { return a.DeletedAt != nil }

// MarkDeleted and Restore are the only sanctioned ways to flip the
// soft-delete state; Atributo has no separate active flag to synchronize.
func (a *Atributo) MarkDeleted(now time.Time) { a.DeletedAt = &now }
func (a *Atributo) Restore()                  { a.DeletedAt = nil }
