package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"catalogo/internal/listing"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre           string  `json:"nombre"            validate:"required,min=2,max=255"`
	SkuBase          *string `json:"sku_base"          validate:"omitempty,max=50"`
	DescripcionCorta string  `json:"descripcion_corta" validate:"max=300"`
	DescripcionLarga string  `json:"descripcion_larga"`

	CategoriaID string  `json:"categoria" validate:"required,uuid"`
	MarcaID     *string `json:"marca"     validate:"omitempty,uuid"`

	TieneVariantes *bool  `json:"tiene_variantes"`
	TipoProducto   string `json:"tipo_producto" validate:"omitempty,oneof=simple variable digital"`

	PrecioBase          *decimal.Decimal `json:"precio_base"          validate:"omitempty,min=0"`
	PrecioCosto         *decimal.Decimal `json:"precio_costo"         validate:"omitempty,min=0"`
	PrecioDescuento     *decimal.Decimal `json:"precio_descuento"     validate:"omitempty,min=0"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento" validate:"omitempty,min=0"`
	Moneda              string           `json:"moneda"               validate:"omitempty,len=3"`

	StockActual  *int   `json:"stock_actual"  validate:"omitempty,min=0"`
	StockMinimo  *int   `json:"stock_minimo"  validate:"omitempty,min=0"`
	UnidadMedida string `json:"unidad_medida" validate:"omitempty,max=20"`

	Peso  *decimal.Decimal `json:"peso"  validate:"omitempty,min=0"`
	Largo *decimal.Decimal `json:"largo" validate:"omitempty,min=0"`
	Ancho *decimal.Decimal `json:"ancho" validate:"omitempty,min=0"`
	Alto  *decimal.Decimal `json:"alto"  validate:"omitempty,min=0"`

	MetaTitle       *string `json:"meta_title"       validate:"omitempty,max=160"`
	MetaDescription *string `json:"meta_description" validate:"omitempty,max=320"`
	Keywords        *string `json:"keywords"         validate:"omitempty,max=500"`

	Activo          *bool      `json:"activo"`
	Publicado       *bool      `json:"publicado"`
	Destacado       *bool      `json:"destacado"`
	EsNuevo         *bool      `json:"es_nuevo"`
	FechaNuevoHasta *time.Time `json:"fecha_nuevo_hasta"`
}

type ActualizarProductoRequest struct {
	Nombre           *string `json:"nombre"            validate:"omitempty,min=2,max=255"`
	SkuBase          *string `json:"sku_base"          validate:"omitempty,max=50"`
	DescripcionCorta *string `json:"descripcion_corta" validate:"omitempty,max=300"`
	DescripcionLarga *string `json:"descripcion_larga"`

	CategoriaID *string `json:"categoria" validate:"omitempty,uuid"`
	MarcaID     *string `json:"marca"     validate:"omitempty,uuid"`

	TieneVariantes *bool   `json:"tiene_variantes"`
	TipoProducto   *string `json:"tipo_producto" validate:"omitempty,oneof=simple variable digital"`

	PrecioBase          *decimal.Decimal `json:"precio_base"          validate:"omitempty,min=0"`
	PrecioCosto         *decimal.Decimal `json:"precio_costo"         validate:"omitempty,min=0"`
	PrecioDescuento     *decimal.Decimal `json:"precio_descuento"     validate:"omitempty,min=0"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento" validate:"omitempty,min=0"`
	Moneda              *string          `json:"moneda"               validate:"omitempty,len=3"`

	StockActual  *int    `json:"stock_actual"  validate:"omitempty,min=0"`
	StockMinimo  *int    `json:"stock_minimo"  validate:"omitempty,min=0"`
	UnidadMedida *string `json:"unidad_medida" validate:"omitempty,max=20"`

	Peso  *decimal.Decimal `json:"peso"  validate:"omitempty,min=0"`
	Largo *decimal.Decimal `json:"largo" validate:"omitempty,min=0"`
	Ancho *decimal.Decimal `json:"ancho" validate:"omitempty,min=0"`
	Alto  *decimal.Decimal `json:"alto"  validate:"omitempty,min=0"`

	MetaTitle       *string `json:"meta_title"       validate:"omitempty,max=160"`
	MetaDescription *string `json:"meta_description" validate:"omitempty,max=320"`
	Keywords        *string `json:"keywords"         validate:"omitempty,max=500"`

	Activo          *bool      `json:"activo"`
	Publicado       *bool      `json:"publicado"`
	Destacado       *bool      `json:"destacado"`
	EsNuevo         *bool      `json:"es_nuevo"`
	FechaNuevoHasta *time.Time `json:"fecha_nuevo_hasta"`
}

// AjustarStockRequest modifies stock by a signed delta; the resulting stock
// never goes below zero.
type AjustarStockRequest struct {
	Cantidad int     `json:"cantidad" validate:"required"`
	Motivo   *string `json:"motivo"   validate:"omitempty,max=255"`
}

type PublicarProductoRequest struct {
	Publicado bool `json:"publicado"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProductoFiltro struct {
	Estado         string
	Search         string
	CategoriaID    string
	MarcaID        string
	TipoProducto   string
	Activo         *bool
	Publicado      *bool
	Destacado      *bool
	EsNuevo        *bool
	TieneVariantes *bool
	Fechas         listing.DateRange
	Ordering       string
	Page           listing.Page
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID               string  `json:"id"`
	Nombre           string  `json:"nombre"`
	Slug             string  `json:"slug"`
	SkuBase          *string `json:"skuBase"`
	DescripcionCorta string  `json:"descripcionCorta"`
	DescripcionLarga string  `json:"descripcionLarga"`

	CategoriaID     string  `json:"categoria"`
	CategoriaNombre string  `json:"categoriaNombre"`
	MarcaID         *string `json:"marca"`
	MarcaNombre     *string `json:"marcaNombre"`

	TieneVariantes bool   `json:"tieneVariantes"`
	TipoProducto   string `json:"tipoProducto"`

	PrecioBase          *decimal.Decimal `json:"precioBase"`
	PrecioCosto         *decimal.Decimal `json:"precioCosto"`
	PrecioDescuento     *decimal.Decimal `json:"precioDescuento"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentajeDescuento"`
	Moneda              string           `json:"moneda"`

	// Derived fields, never accepted on writes.
	PrecioFinal        *decimal.Decimal `json:"precioFinal"`
	TieneDescuento     bool             `json:"tieneDescuento"`
	MargenGanancia     *decimal.Decimal `json:"margenGanancia"`
	PorcentajeGanancia *decimal.Decimal `json:"porcentajeGanancia"`

	StockActual  int    `json:"stockActual"`
	StockMinimo  int    `json:"stockMinimo"`
	UnidadMedida string `json:"unidadMedida"`
	TieneStock   bool   `json:"tieneStock"`
	StockBajo    bool   `json:"stockBajo"`

	Peso    *decimal.Decimal `json:"peso"`
	Largo   *decimal.Decimal `json:"largo"`
	Ancho   *decimal.Decimal `json:"ancho"`
	Alto    *decimal.Decimal `json:"alto"`
	Volumen *decimal.Decimal `json:"volumen"`

	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Keywords        *string `json:"keywords"`

	Activo    bool `json:"activo"`
	Publicado bool `json:"publicado"`
	Destacado bool `json:"destacado"`
	EsNuevo   bool `json:"esNuevo"`

	FechaPublicacion *time.Time `json:"fechaPublicacion"`
	FechaNuevoHasta  *time.Time `json:"fechaNuevoHasta"`

	Vistas         int             `json:"vistas"`
	VentasTotales  int             `json:"ventasTotales"`
	RatingPromedio decimal.Decimal `json:"ratingPromedio"`
	TotalReviews   int             `json:"totalReviews"`

	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty"`
	CreatedByNombre *string    `json:"createdByNombre"`
	UpdatedByNombre *string    `json:"updatedByNombre"`
}

// ProductoPublicoResponse is the reduced storefront projection served by the
// public slug lookup; it never exposes costs or audit data.
type ProductoPublicoResponse struct {
	ID               string           `json:"id"`
	Nombre           string           `json:"nombre"`
	Slug             string           `json:"slug"`
	DescripcionCorta string           `json:"descripcionCorta"`
	DescripcionLarga string           `json:"descripcionLarga"`
	CategoriaNombre  string           `json:"categoriaNombre"`
	MarcaNombre      *string          `json:"marcaNombre"`
	PrecioFinal      *decimal.Decimal `json:"precioFinal"`
	PrecioBase       *decimal.Decimal `json:"precioBase"`
	TieneDescuento   bool             `json:"tieneDescuento"`
	Moneda           string           `json:"moneda"`
	TieneStock       bool             `json:"tieneStock"`
	UnidadMedida     string           `json:"unidadMedida"`
	EsNuevo          bool             `json:"esNuevo"`
	RatingPromedio   decimal.Decimal  `json:"ratingPromedio"`
	TotalReviews     int              `json:"totalReviews"`
}
