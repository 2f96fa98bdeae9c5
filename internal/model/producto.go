package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is the catalog's central entity. Supports simple, variable and
// digital products; price, stock and dimension figures feed the computed
// read-only fields exposed by the API.
type Producto struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre           string    `gorm:"size:255;index;not null"`
	Slug             string    `gorm:"size:280;uniqueIndex;not null"`
	SkuBase          *string   `gorm:"size:50;index"`
	DescripcionCorta string    `gorm:"size:300"`
	DescripcionLarga string    `gorm:"type:text"`

	CategoriaID uuid.UUID  `gorm:"type:uuid;not null;index"`
	MarcaID     *uuid.UUID `gorm:"type:uuid;index"`

	TieneVariantes bool   `gorm:"not null;default:false"`
	TipoProducto   string `gorm:"size:10;not null;default:'simple'"` // simple | variable | digital

	PrecioBase          *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PrecioCosto         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PrecioDescuento     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	PorcentajeDescuento *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Moneda              string           `gorm:"size:3;not null;default:'COP'"`

	StockActual  int    `gorm:"not null;default:0"`
	StockMinimo  int    `gorm:"not null;default:0"`
	UnidadMedida string `gorm:"size:20;not null;default:'unidad'"`

	// Dimensions in grams / centimeters.
	Peso  *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Largo *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Ancho *decimal.Decimal `gorm:"type:decimal(8,2)"`
	Alto  *decimal.Decimal `gorm:"type:decimal(8,2)"`

	MetaTitle       *string `gorm:"size:160"`
	MetaDescription *string `gorm:"size:320"`
	Keywords        *string `gorm:"size:500"`

	Activo    bool `gorm:"not null;default:true;index"`
	Publicado bool `gorm:"not null;default:false;index"`
	Destacado bool `gorm:"not null;default:false;index"`
	EsNuevo   bool `gorm:"not null;default:false"`

	FechaPublicacion *time.Time
	FechaNuevoHasta  *time.Time

	Vistas         int             `gorm:"not null;default:0"`
	VentasTotales  int             `gorm:"not null;default:0"`
	RatingPromedio decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0"`
	TotalReviews   int             `gorm:"not null;default:0"`

	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
	CreatedByID *uuid.UUID `gorm:"type:uuid"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid"`

	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
	Marca     *Marca     `gorm:"foreignKey:MarcaID;constraint:OnDelete:SET NULL"`
	CreatedBy *Usuario   `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	UpdatedBy *Usuario   `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL"`
}

func (Producto) TableName() string { return "productos" }

func (p *Producto) IsDeleted() bool { return p.DeletedAt != nil }

// MarkDeleted sets the deletion timestamp and forces the visibility flags
// off in the same step; a deleted product must never remain active or
// published.
func (p *Producto) MarkDeleted(now time.Time) {
	p.DeletedAt = &now
	p.Activo = false
	p.Publicado = false
}

// Restore reactivates the product. Publicado stays false: republishing after
// a restore is an explicit editorial decision.
func (p *Producto) Restore() {
	p.DeletedAt = nil
	p.Activo = true
}

// ── Computed fields — derived on every read, never persisted ─────────────────

func (p *Producto) TieneStock() bool { return p.StockActual > 0 }

func (p *Producto) StockBajo() bool { return p.StockActual <= p.StockMinimo }

// PrecioFinal is the discount price when one is set, the base price otherwise.
func (p *Producto) PrecioFinal() *decimal.Decimal {
	if p.PrecioDescuento != nil {
		return p.PrecioDescuento
	}
	return p.PrecioBase
}

func (p *Producto) TieneDescuento() bool {
	return p.PrecioDescuento != nil && p.PrecioBase != nil && p.PrecioDescuento.LessThan(*p.PrecioBase)
}

// MargenGanancia is precio_base - precio_costo, nil unless both are set.
func (p *Producto) MargenGanancia() *decimal.Decimal {
	if p.PrecioBase == nil || p.PrecioCosto == nil {
		return nil
	}
	m := p.PrecioBase.Sub(*p.PrecioCosto)
	return &m
}

// PorcentajeGanancia is (base-costo)/costo*100 rounded to 2 decimals,
// nil unless both prices are set and costo > 0.
func (p *Producto) PorcentajeGanancia() *decimal.Decimal {
	if p.PrecioBase == nil || p.PrecioCosto == nil || !p.PrecioCosto.IsPositive() {
		return nil
	}
	pct := p.PrecioBase.Sub(*p.PrecioCosto).Div(*p.PrecioCosto).Mul(decimal.NewFromInt(100)).Round(2)
	return &pct
}

// Volumen is largo*ancho*alto in cm³, nil when any dimension is missing.
func (p *Producto) Volumen() *decimal.Decimal {
	if p.Largo == nil || p.Ancho == nil || p.Alto == nil {
		return nil
	}
	v := p.Largo.Mul(*p.Ancho).Mul(*p.Alto)
	return &v
}

func (p *Producto) CategoriaNombre() string {
	if p.Categoria == nil {
		return ""
	}
	return p.Categoria.Name
}

func (p *Producto) MarcaNombre() *string {
	if p.Marca == nil {
		return nil
	}
	return &p.Marca.Name
}
