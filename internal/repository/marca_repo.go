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

var marcaOrderCols = map[string]string{
	"id":          "id",
	"name":        "name",
	"is_featured": "is_featured",
	"created_at":  "created_at",
}

const marcaOrderDefault = "is_featured DESC, id DESC"

var marcaSearchCols = []string{"name", "description", "website"}

type MarcaRepository interface {
	Create(ctx context.Context, m *model.Marca) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Marca, error)
	List(ctx context.Context, f dto.MarcaFiltro) ([]model.Marca, int64, error)
	Update(ctx context.Context, m *model.Marca) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error

	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	NameExistsActivo(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	CountProductos(ctx context.Context, ids []uuid.UUID) (map[string]int64, error)
}

type marcaRepo struct{ db *gorm.DB }

func NewMarcaRepository(db *gorm.DB) MarcaRepository { return &marcaRepo{db: db} }

func (r *marcaRepo) Create(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *marcaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Marca, error) {
	var m model.Marca
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *marcaRepo) List(ctx context.Context, f dto.MarcaFiltro) ([]model.Marca, int64, error) {
	var marcas []model.Marca
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Marca{})
	q = estadoScope(q, f.Estado, "deleted_at")
	q = searchScope(q, f.Search, marcaSearchCols...)
	q = boolScope(q, "is_active", f.IsActive)
	q = boolScope(q, "is_featured", f.IsFeatured)
	q = dateScope(q, f.Fechas, "created_at")

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := listing.OrderClause(f.Ordering, marcaOrderCols, marcaOrderDefault)
	err := q.Order(order).Limit(f.Page.Size).Offset(f.Page.Offset()).Find(&marcas).Error
	return marcas, total, err
}

func (r *marcaRepo) Update(ctx context.Context, m *model.Marca) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *marcaRepo) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Marca{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": now, "is_active": false}).Error
}

func (r *marcaRepo) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Marca{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": nil, "is_active": true}).Error
}

func (r *marcaRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Marca{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *marcaRepo) NameExistsActivo(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Marca{}).
		Where("LOWER(name) = LOWER(?) AND deleted_at IS NULL", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *marcaRepo) CountProductos(ctx context.Context, ids []uuid.UUID) (map[string]int64, error) {
	if len(ids) == 0 {
		return map[string]int64{}, nil
	}
	q := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("marca_id IN ? AND deleted_at IS NULL", ids)
	return countByParent(q, "marca_id")
}
