package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/model"
)

var productoOrderCols = map[string]string{
	"id":             "productos.id",
	"nombre":         "nombre",
	"precio_base":    "precio_base",
	"stock_actual":   "stock_actual",
	"vistas":         "vistas",
	"ventas_totales": "ventas_totales",
	"created_at":     "productos.created_at",
}

const productoOrderDefault = "productos.id DESC"

var productoSearchCols = []string{
	"nombre",
	"sku_base",
	"descripcion_corta",
	"descripcion_larga",
	"keywords",
}

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	// FindBySlugPublicado serves the public storefront lookup: only active,
	// published, non-deleted products are visible there.
	FindBySlugPublicado(ctx context.Context, slug string) (*model.Producto, error)
	List(ctx context.Context, f dto.ProductoFiltro) ([]model.Producto, int64, error)
	// ListForExport returns the full filtered set without pagination.
	ListForExport(ctx context.Context, f dto.ProductoFiltro) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error

	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	SkuExistsActivo(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error)

	// AjustarStock applies a signed delta, clamping the result at zero.
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) error
	IncrementarVistas(ctx context.Context, id uuid.UUID) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categoria").Preload("Marca").Preload("CreatedBy").Preload("UpdatedBy").
		First(&p, "productos.id = ?", id).Error
	return &p, err
}

func (r *productoRepo) FindBySlugPublicado(ctx context.Context, slug string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categoria").Preload("Marca").
		Where("slug = ? AND activo = true AND publicado = true AND deleted_at IS NULL", slug).
		First(&p).Error
	return &p, err
}

func (r *productoRepo) buildListQuery(ctx context.Context, f dto.ProductoFiltro) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Producto{})
	q = estadoScope(q, f.Estado, "deleted_at")
	q = searchScope(q, f.Search, productoSearchCols...)
	if f.CategoriaID != "" {
		q = q.Where("categoria_id = ?", f.CategoriaID)
	}
	if f.MarcaID != "" {
		q = q.Where("marca_id = ?", f.MarcaID)
	}
	if f.TipoProducto != "" {
		q = q.Where("tipo_producto = ?", f.TipoProducto)
	}
	q = boolScope(q, "activo", f.Activo)
	q = boolScope(q, "publicado", f.Publicado)
	q = boolScope(q, "destacado", f.Destacado)
	q = boolScope(q, "es_nuevo", f.EsNuevo)
	q = boolScope(q, "tiene_variantes", f.TieneVariantes)
	q = dateScope(q, f.Fechas, "created_at")
	return q
}

func (r *productoRepo) List(ctx context.Context, f dto.ProductoFiltro) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.buildListQuery(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := listing.OrderClause(f.Ordering, productoOrderCols, productoOrderDefault)
	err := q.Preload("Categoria").Preload("Marca").Preload("CreatedBy").Preload("UpdatedBy").
		Order(order).Limit(f.Page.Size).Offset(f.Page.Offset()).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) ListForExport(ctx context.Context, f dto.ProductoFiltro) ([]model.Producto, error) {
	var productos []model.Producto
	order := listing.OrderClause(f.Ordering, productoOrderCols, productoOrderDefault)
	err := r.buildListQuery(ctx, f).
		Preload("Categoria").Preload("Marca").
		Order(order).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"deleted_at": now,
			"activo":     false,
			"publicado":  false,
		}).Error
}

func (r *productoRepo) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": nil, "activo": true}).Error
}

func (r *productoRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Producto{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *productoRepo) SkuExistsActivo(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("LOWER(sku_base) = LOWER(?) AND deleted_at IS NULL", sku)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *productoRepo) AjustarStock(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("stock_actual", gorm.Expr("GREATEST(stock_actual + ?, 0)", delta)).Error
}

func (r *productoRepo) IncrementarVistas(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id = ?", id).
		Update("vistas", gorm.Expr("vistas + 1")).Error
}
