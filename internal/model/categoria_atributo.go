package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoriaAtributo links a category with the attributes its products may
// carry, with a per-category display order and an obligatorio flag.
// Unlike the rest of the catalog it is a pure association row: it has no
// slug and is deleted physically, not softly.
type CategoriaAtributo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoriaID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categoria_atributo"`
	AtributoID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categoria_atributo"`
	Obligatorio bool      `gorm:"not null;default:false;index"`
	Orden       int       `gorm:"not null;default:0"`
	CreatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
	Atributo  *Atributo  `gorm:"foreignKey:AtributoID;constraint:OnDelete:CASCADE"`
}

func (CategoriaAtributo) TableName() string { return "categoria_atributos" }

func (ca *CategoriaAtributo) CategoriaNombre() string {
	if ca.Categoria == nil {
		return ""
	}
	return ca.Categoria.Name
}

func (ca *CategoriaAtributo) AtributoNombre() string {
	if ca.Atributo == nil {
		return ""
	}
	return ca.Atributo.Name
}
