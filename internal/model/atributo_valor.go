package model

import (
	"time"

	"github.com/google/uuid"
)

// AtributoValor is one selectable value of a parent attribute, e.g.
// Color → "Rojo" (ValorExtra "#FF0000"), Talla → "XL".
// The (atributo, orden) pair is unique among non-deleted values.
type AtributoValor struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AtributoID uuid.UUID `gorm:"type:uuid;not null;index:idx_valores_atributo_orden"`
	Valor      string    `gorm:"size:100;not null"`
	ValorExtra *string   `gorm:"size:100"`
	Orden      int       `gorm:"not null;default:0;index:idx_valores_atributo_orden"`
	Activo     bool      `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`

	Atributo *Atributo `gorm:"foreignKey:AtributoID;constraint:OnDelete:CASCADE"`
}

func (AtributoValor) TableName() string { return "atributo_valores" }

func (v *AtributoValor) IsDeleted() bool { return v.DeletedAt != nil }

// AtributoNombre returns the parent attribute name, empty when not loaded.
func (v *AtributoValor) AtributoNombre() string {
	if v.Atributo == nil {
		return ""
	}
	return v.Atributo.Name
}

// MarkDeleted deactivates the value alongside the deletion timestamp so the
// two fields can never diverge.
func (v *AtributoValor) MarkDeleted(now time.Time) {
	v.DeletedAt = &now
	v.Activo = false
}

func (v *AtributoValor) Restore() {
	v.DeletedAt = nil
	v.Activo = true
}
