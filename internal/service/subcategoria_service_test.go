package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"catalogo/internal/dto"
	"catalogo/internal/model"
)

type stubSubcategoriaRepo struct {
	items map[uuid.UUID]*model.Subcategoria
}

func newStubSubcategoriaRepo() *stubSubcategoriaRepo {
	return &stubSubcategoriaRepo{items: make(map[uuid.UUID]*model.Subcategoria)}
}

func (r *stubSubcategoriaRepo) Create(_ context.Context, s *model.Subcategoria) error {
	s.ID = uuid.New()
	r.items[s.ID] = s
	return nil
}

func (r *stubSubcategoriaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Subcategoria, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSubcategoriaRepo) List(_ context.Context, _ dto.SubcategoriaFiltro) ([]model.Subcategoria, int64, error) {
	out := make([]model.Subcategoria, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSubcategoriaRepo) Update(_ context.Context, s *model.Subcategoria) error {
	r.items[s.ID] = s
	return nil
}

func (r *stubSubcategoriaRepo) SoftDelete(_ context.Context, id uuid.UUID, now time.Time) error {
	s, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.MarkDeleted(now)
	return nil
}

func (r *stubSubcategoriaRepo) Restore(_ context.Context, id uuid.UUID) error {
	s, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Restore()
	return nil
}

func (r *stubSubcategoriaRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, s := range r.items {
		if s.Slug == slug && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubSubcategoriaRepo) NameExistsActivo(_ context.Context, name string, excludeID uuid.UUID) (bool, error) {
	for _, s := range r.items {
		if !s.IsDeleted() && strings.EqualFold(s.Name, name) && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newSubcategoriaFixture() (SubcategoriaService, *model.Categoria) {
	categoria := &model.Categoria{ID: uuid.New(), Name: "Hogar", IsActive: true}
	categorias := &stubCategoriaLookup{items: map[uuid.UUID]*model.Categoria{categoria.ID: categoria}}
	return NewSubcategoriaService(newStubSubcategoriaRepo(), categorias), categoria
}

func TestSubcategoriaCrear_OK(t *testing.T) {
	svc, categoria := newSubcategoriaFixture()

	resp, err := svc.Crear(context.Background(), dto.CrearSubcategoriaRequest{
		CategoriaID: categoria.ID.String(),
		Name:        "Muebles de Jardín",
	})
	assert.NoError(t, err)
	assert.Equal(t, "muebles-de-jardin", resp.Slug)
	assert.Equal(t, categoria.ID.String(), resp.CategoriaID)
	assert.True(t, resp.IsActive)
}

func TestSubcategoriaCrear_CategoriaInexistente(t *testing.T) {
	svc, _ := newSubcategoriaFixture()

	_, err := svc.Crear(context.Background(), dto.CrearSubcategoriaRequest{
		CategoriaID: uuid.NewString(),
		Name:        "Huérfana",
	})
	var ci *CampoInvalido
	assert.ErrorAs(t, err, &ci)
	assert.Equal(t, "category", ci.Campo)
}

func TestSubcategoriaCrear_CategoriaInactiva(t *testing.T) {
	svc, categoria := newSubcategoriaFixture()
	categoria.IsActive = false

	_, err := svc.Crear(context.Background(), dto.CrearSubcategoriaRequest{
		CategoriaID: categoria.ID.String(),
		Name:        "Bloqueada",
	})
	var ci *CampoInvalido
	assert.ErrorAs(t, err, &ci)
	assert.Equal(t, "category", ci.Campo)
}

func TestSubcategoriaCrear_NombreDuplicado(t *testing.T) {
	svc, categoria := newSubcategoriaFixture()
	ctx := context.Background()

	_, err := svc.Crear(ctx, dto.CrearSubcategoriaRequest{
		CategoriaID: categoria.ID.String(),
		Name:        "Textiles",
	})
	assert.NoError(t, err)

	_, err = svc.Crear(ctx, dto.CrearSubcategoriaRequest{
		CategoriaID: categoria.ID.String(),
		Name:        "textiles",
	})
	var ci *CampoInvalido
	assert.ErrorAs(t, err, &ci)
	assert.Equal(t, "name", ci.Campo)
}
