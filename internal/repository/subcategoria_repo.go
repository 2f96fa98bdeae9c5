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

var subcategoriaOrderCols = map[string]string{
	"id":         "subcategorias.id",
	"name":       "subcategorias.name",
	"order":      "subcategorias.orden",
	"category":   "categoria_id",
	"created_at": "subcategorias.created_at",
}

const subcategoriaOrderDefault = "categoria_id ASC, subcategorias.orden ASC, subcategorias.name ASC"

// The search also matches the parent category's name through the join.
var subcategoriaSearchCols = []string{
	"subcategorias.name",
	"subcategorias.description",
	"subcategorias.seo_keywords",
	"categorias.name",
}

type SubcategoriaRepository interface {
	Create(ctx context.Context, s *model.Subcategoria) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subcategoria, error)
	List(ctx context.Context, f dto.SubcategoriaFiltro) ([]model.Subcategoria, int64, error)
	Update(ctx context.Context, s *model.Subcategoria) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error

	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	NameExistsActivo(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}

type subcategoriaRepo struct{ db *gorm.DB }

func NewSubcategoriaRepository(db *gorm.DB) SubcategoriaRepository {
	return &subcategoriaRepo{db: db}
}

func (r *subcategoriaRepo) Create(ctx context.Context, s *model.Subcategoria) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subcategoriaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Subcategoria, error) {
	var s model.Subcategoria
	err := r.db.WithContext(ctx).Preload("Categoria").First(&s, "subcategorias.id = ?", id).Error
	return &s, err
}

func (r *subcategoriaRepo) List(ctx context.Context, f dto.SubcategoriaFiltro) ([]model.Subcategoria, int64, error) {
	var subcategorias []model.Subcategoria
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Subcategoria{}).
		Joins("JOIN categorias ON categorias.id = subcategorias.categoria_id")
	q = estadoScope(q, f.Estado, "subcategorias.deleted_at")
	q = searchScope(q, f.Search, subcategoriaSearchCols...)
	if f.CategoriaID != "" {
		q = q.Where("subcategorias.categoria_id = ?", f.CategoriaID)
	}
	q = boolScope(q, "subcategorias.is_active", f.IsActive)
	q = dateScope(q, f.Fechas, "subcategorias.created_at")

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := listing.OrderClause(f.Ordering, subcategoriaOrderCols, subcategoriaOrderDefault)
	err := q.Preload("Categoria").Order(order).
		Limit(f.Page.Size).Offset(f.Page.Offset()).Find(&subcategorias).Error
	return subcategorias, total, err
}

func (r *subcategoriaRepo) Update(ctx context.Context, s *model.Subcategoria) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *subcategoriaRepo) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Subcategoria{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": now, "is_active": false}).Error
}

func (r *subcategoriaRepo) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Subcategoria{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": nil, "is_active": true}).Error
}

func (r *subcategoriaRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Subcategoria{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *subcategoriaRepo) NameExistsActivo(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Subcategoria{}).
		Where("LOWER(name) = LOWER(?) AND deleted_at IS NULL", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}
