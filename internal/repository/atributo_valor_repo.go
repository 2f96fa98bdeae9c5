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

var atributoValorOrderCols = map[string]string{
	"id":         "atributo_valores.id",
	"valor":      "valor",
	"orden":      "atributo_valores.orden",
	"created_at": "atributo_valores.created_at",
}

const atributoValorOrderDefault = "atributo_valores.orden ASC, valor ASC"

// The search also matches the parent attribute's name through the join.
var atributoValorSearchCols = []string{"valor", "valor_extra", "atributos.name"}

type AtributoValorRepository interface {
	Create(ctx context.Context, v *model.AtributoValor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.AtributoValor, error)
	List(ctx context.Context, f dto.AtributoValorFiltro) ([]model.AtributoValor, int64, error)
	Update(ctx context.Context, v *model.AtributoValor) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	Restore(ctx context.Context, id uuid.UUID) error

	// OrdenExistsActivo enforces the (atributo, orden) uniqueness among
	// non-deleted values.
	OrdenExistsActivo(ctx context.Context, atributoID uuid.UUID, orden int, excludeID uuid.UUID) (bool, error)
}

type atributoValorRepo struct{ db *gorm.DB }

func NewAtributoValorRepository(db *gorm.DB) AtributoValorRepository {
	return &atributoValorRepo{db: db}
}

func (r *atributoValorRepo) Create(ctx context.Context, v *model.AtributoValor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *atributoValorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.AtributoValor, error) {
	var v model.AtributoValor
	err := r.db.WithContext(ctx).Preload("Atributo").First(&v, "atributo_valores.id = ?", id).Error
	return &v, err
}

func (r *atributoValorRepo) List(ctx context.Context, f dto.AtributoValorFiltro) ([]model.AtributoValor, int64, error) {
	var valores []model.AtributoValor
	var total int64

	q := r.db.WithContext(ctx).Model(&model.AtributoValor{}).
		Joins("JOIN atributos ON atributos.id = atributo_valores.atributo_id")
	q = estadoScope(q, f.Estado, "atributo_valores.deleted_at")
	q = searchScope(q, f.Search, atributoValorSearchCols...)
	if f.AtributoID != "" {
		q = q.Where("atributo_valores.atributo_id = ?", f.AtributoID)
	}
	q = boolScope(q, "activo", f.Activo)
	q = dateScope(q, f.Fechas, "atributo_valores.created_at")

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := listing.OrderClause(f.Ordering, atributoValorOrderCols, atributoValorOrderDefault)
	err := q.Preload("Atributo").Order(order).
		Limit(f.Page.Size).Offset(f.Page.Offset()).Find(&valores).Error
	return valores, total, err
}

func (r *atributoValorRepo) Update(ctx context.Context, v *model.AtributoValor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *atributoValorRepo) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).Model(&model.AtributoValor{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": now, "activo": false}).Error
}

func (r *atributoValorRepo) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.AtributoValor{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"deleted_at": nil, "activo": true}).Error
}

func (r *atributoValorRepo) OrdenExistsActivo(ctx context.Context, atributoID uuid.UUID, orden int, excludeID uuid.UUID) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.AtributoValor{}).
		Where("atributo_id = ? AND orden = ? AND deleted_at IS NULL", atributoID, orden)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}
