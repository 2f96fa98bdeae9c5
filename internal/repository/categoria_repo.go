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

var categoriaOrderCols = map[string]string{
	"id":         "id",
	"name":       "name",
	"created_at": "created_at",
}

const categoriaOrderDefault = "id DESC"

var categoriaSearchCols = []string{"name", "description", "seo_keywords"}

type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	List(ctx context.Context, f dto.CategoriaFiltro) ([]model.Categoria, int64, error)
	Update(ctx context.Context, c *model.Categoria) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error

	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	NameExistsActivo(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	CountSubcategorias(ctx context.Context, ids []uuid.UUID) (map[string]int64, error)
	CountProductos(ctx context.Context, ids []uuid.UUID) (map[string]int64, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *categoriaRepo) List(ctx context.Context, f dto.CategoriaFiltro) ([]model.Categoria, int64, error) {
	var categorias []model.Categoria
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Categoria{})
	q = estadoScope(q, f.Estado, "deleted_at")
	q = searchScope(q, f.Search, categoriaSearchCols...)
	q = boolScope(q, "is_active", f.IsActive)
	q = dateScope(q, f.Fechas, "created_at")

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := listing.OrderClause(f.Ordering, categoriaOrderCols, categoriaOrderDefault)
	err := q.Order(order).Limit(f.Page.Size).Offset(f.Page.Offset()).Find(&categorias).Error
	return categorias, total, err
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Categoria{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": now, "is_active": false}).Error
}

func (r *categoriaRepo) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Categoria{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": nil, "is_active": true}).Error
}

func (r *categoriaRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Categoria{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *categoriaRepo) NameExistsActivo(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Categoria{}).
		Where("LOWER(name) = LOWER(?) AND deleted_at IS NULL", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *categoriaRepo) CountSubcategorias(ctx context.Context, ids []uuid.UUID) (map[string]int64, error) {
	if len(ids) == 0 {
		return map[string]int64{}, nil
	}
	q := r.db.WithContext(ctx).Model(&model.Subcategoria{}).
		Where("categoria_id IN ? AND deleted_at IS NULL", ids)
	return countByParent(q, "categoria_id")
}

func (r *categoriaRepo) CountProductos(ctx context.Context, ids []uuid.UUID) (map[string]int64, error) {
	if len(ids) == 0 {
		return map[string]int64{}, nil
	}
	q := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("categoria_id IN ? AND deleted_at IS NULL", ids)
	return countByParent(q, "categoria_id")
}
