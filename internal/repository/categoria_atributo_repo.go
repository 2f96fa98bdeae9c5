package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/model"
)

var categoriaAtributoOrderCols = map[string]string{
	"id":          "categoria_atributos.id",
	"orden":       "categoria_atributos.orden",
	"obligatorio": "obligatorio",
	"created_at":  "categoria_atributos.created_at",
}

const categoriaAtributoOrderDefault = "categoria_id ASC, categoria_atributos.orden ASC, atributos.name ASC"

// CategoriaAtributoRepository manages category-attribute associations.
// Rows are deleted physically; the association has no soft-delete state.
type CategoriaAtributoRepository interface {
	Create(ctx context.Context, ca *model.CategoriaAtributo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CategoriaAtributo, error)
	List(ctx context.Context, f dto.CategoriaAtributoFiltro) ([]model.CategoriaAtributo, int64, error)
	Update(ctx context.Context, ca *model.CategoriaAtributo) error
	Delete(ctx context.Context, id uuid.UUID) error

	// PairExists guards the unique (categoria, atributo) combination.
	PairExists(ctx context.Context, categoriaID, atributoID uuid.UUID) (bool, error)
	// ListByCategoria powers the per-category attribute listing, ordered for
	// form rendering.
	ListByCategoria(ctx context.Context, categoriaID uuid.UUID) ([]model.CategoriaAtributo, error)
}

type categoriaAtributoRepo struct{ db *gorm.DB }

func NewCategoriaAtributoRepository(db *gorm.DB) CategoriaAtributoRepository {
	return &categoriaAtributoRepo{db: db}
}

func (r *categoriaAtributoRepo) Create(ctx context.Context, ca *model.CategoriaAtributo) error {
	return r.db.WithContext(ctx).Create(ca).Error
}

func (r *categoriaAtributoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CategoriaAtributo, error) {
	var ca model.CategoriaAtributo
	err := r.db.WithContext(ctx).Preload("Categoria").Preload("Atributo").
		First(&ca, "categoria_atributos.id = ?", id).Error
	return &ca, err
}

func (r *categoriaAtributoRepo) List(ctx context.Context, f dto.CategoriaAtributoFiltro) ([]model.CategoriaAtributo, int64, error) {
	var asociaciones []model.CategoriaAtributo
	var total int64

	// The default ordering and the search reach into the joined attribute
	// and category names.
	q := r.db.WithContext(ctx).Model(&model.CategoriaAtributo{}).
		Joins("JOIN categorias ON categorias.id = categoria_atributos.categoria_id").
		Joins("JOIN atributos ON atributos.id = categoria_atributos.atributo_id")
	q = searchScope(q, f.Search, "categorias.name", "atributos.name")
	if f.CategoriaID != "" {
		q = q.Where("categoria_id = ?", f.CategoriaID)
	}
	if f.AtributoID != "" {
		q = q.Where("atributo_id = ?", f.AtributoID)
	}
	q = boolScope(q, "obligatorio", f.Obligatorio)
	q = dateScope(q, f.Fechas, "categoria_atributos.created_at")

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := listing.OrderClause(f.Ordering, categoriaAtributoOrderCols, categoriaAtributoOrderDefault)
	err := q.Preload("Categoria").Preload("Atributo").Order(order).
		Limit(f.Page.Size).Offset(f.Page.Offset()).Find(&asociaciones).Error
	return asociaciones, total, err
}

func (r *categoriaAtributoRepo) Update(ctx context.Context, ca *model.CategoriaAtributo) error {
	return r.db.WithContext(ctx).Save(ca).Error
}

func (r *categoriaAtributoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CategoriaAtributo{}, "id = ?", id).Error
}

func (r *categoriaAtributoRepo) PairExists(ctx context.Context, categoriaID, atributoID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.CategoriaAtributo{}).
		Where("categoria_id = ? AND atributo_id = ?", categoriaID, atributoID).
		Count(&n).Error
	return n > 0, err
}

func (r *categoriaAtributoRepo) ListByCategoria(ctx context.Context, categoriaID uuid.UUID) ([]model.CategoriaAtributo, error) {
	var asociaciones []model.CategoriaAtributo
	err := r.db.WithContext(ctx).Model(&model.CategoriaAtributo{}).
		Joins("JOIN atributos ON atributos.id = categoria_atributos.atributo_id").
		Where("categoria_id = ?", categoriaID).
		Preload("Atributo").Preload("Atributo.Valores", "deleted_at IS NULL").
		Order("categoria_atributos.orden ASC, atributos.name ASC").
		Find(&asociaciones).Error
	return asociaciones, err
}
