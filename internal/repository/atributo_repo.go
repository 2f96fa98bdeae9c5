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

// Sortable keys accepted by the atributo listing, mapped to columns.
var atributoOrderCols = map[string]string{
	"id":         "id",
	"name":       "name",
	"orden":      "orden",
	"created_at": "created_at",
}

const atributoOrderDefault = "orden ASC, name ASC, id DESC"

var atributoSearchCols = []string{"name", "descripcion", "slug"}

// AtributoRepository defines the data access contract for attributes.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type AtributoRepository interface {
	Create(ctx context.Context, a *model.Atributo) error
	// FindByID loads the record regardless of its soft-delete state; the
	// service layer decides what each operation allows.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Atributo, error)
	List(ctx context.Context, f dto.AtributoFiltro) ([]model.Atributo, int64, error)
	Update(ctx context.Context, a *model.Atributo) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error

	// SlugExists probes every record, deleted included; a freed slug is never
	// reused while the deleted owner can still be restored.
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	NameExistsActivo(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// CountValores returns the non-deleted value count per attribute id.
	CountValores(ctx context.Context, ids []uuid.UUID) (map[string]int64, error)
}

type atributoRepo struct{ db *gorm.DB }

func NewAtributoRepository(db *gorm.DB) AtributoRepository { return &atributoRepo{db: db} }

func (r *atributoRepo) Create(ctx context.Context, a *model.Atributo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *atributoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Atributo, error) {
	var a model.Atributo
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *atributoRepo) List(ctx context.Context, f dto.AtributoFiltro) ([]model.Atributo, int64, error) {
	var atributos []model.Atributo
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Atributo{})
	q = estadoScope(q, f.Estado, "deleted_at")
	q = searchScope(q, f.Search, atributoSearchCols...)
	if f.TipoInput != "" {
		q = q.Where("tipo_input = ?", f.TipoInput)
	}
	q = boolScope(q, "es_variable", f.EsVariable)
	q = boolScope(q, "es_filtrable", f.EsFiltrable)
	q = dateScope(q, f.Fechas, "created_at")

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := listing.OrderClause(f.Ordering, atributoOrderCols, atributoOrderDefault)
	err := q.Order(order).Limit(f.Page.Size).Offset(f.Page.Offset()).Find(&atributos).Error
	return atributos, total, err
}

func (r *atributoRepo) Update(ctx context.Context, a *model.Atributo) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *atributoRepo) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Atributo{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": now}).Error
}

func (r *atributoRepo) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Atributo{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": nil}).Error
}

func (r *atributoRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Atributo{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *atributoRepo) NameExistsActivo(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Atributo{}).
		Where("LOWER(name) = LOWER(?) AND deleted_at IS NULL", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *atributoRepo) CountValores(ctx context.Context, ids []uuid.UUID) (map[string]int64, error) {
	if len(ids) == 0 {
		return map[string]int64{}, nil
	}
	q := r.db.WithContext(ctx).Model(&model.AtributoValor{}).
		Where("atributo_id IN ? AND deleted_at IS NULL", ids)
	return countByParent(q, "atributo_id")
}
