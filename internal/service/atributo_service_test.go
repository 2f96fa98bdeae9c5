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
	"catalogo/internal/listing"
	"catalogo/internal/model"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubAtributoRepo struct {
	items   map[uuid.UUID]*model.Atributo
	valores map[uuid.UUID]int64
}

func newStubAtributoRepo() *stubAtributoRepo {
	return &stubAtributoRepo{
		items:   make(map[uuid.UUID]*model.Atributo),
		valores: make(map[uuid.UUID]int64),
	}
}

func (r *stubAtributoRepo) Create(_ context.Context, a *model.Atributo) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.items[a.ID] = a
	return nil
}

func (r *stubAtributoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Atributo, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubAtributoRepo) List(_ context.Context, f dto.AtributoFiltro) ([]model.Atributo, int64, error) {
	var out []model.Atributo
	for _, a := range r.items {
		switch f.Estado {
		case listing.EstadoEliminados:
			if !a.IsDeleted() {
				continue
			}
		case listing.EstadoTodos:
		default:
			if a.IsDeleted() {
				continue
			}
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *stubAtributoRepo) Update(_ context.Context, a *model.Atributo) error {
	a.UpdatedAt = time.Now()
	r.items[a.ID] = a
	return nil
}

func (r *stubAtributoRepo) SoftDelete(_ context.Context, id uuid.UUID, now time.Time) error {
	a, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.MarkDeleted(now)
	return nil
}

func (r *stubAtributoRepo) Restore(_ context.Context, id uuid.UUID) error {
	a, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Restore()
	return nil
}

func (r *stubAtributoRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, a := range r.items {
		if a.Slug == slug && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAtributoRepo) NameExistsActivo(_ context.Context, name string, excludeID uuid.UUID) (bool, error) {
	for _, a := range r.items {
		if !a.IsDeleted() && strings.EqualFold(a.Name, name) && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAtributoRepo) CountValores(_ context.Context, ids []uuid.UUID) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, id := range ids {
		if n := r.valores[id]; n > 0 {
			counts[id.String()] = n
		}
	}
	return counts, nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestAtributoCrear_Defaults(t *testing.T) {
	repo := newStubAtributoRepo()
	svc := NewAtributoService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearAtributoRequest{Name: "Color"})
	assert.NoError(t, err)
	assert.Equal(t, "Color", resp.Name)
	assert.Equal(t, "color", resp.Slug)
	assert.Equal(t, "text", resp.TipoInput)
	assert.Equal(t, "string", resp.TipoDato)
	assert.True(t, resp.EsVariable)
	assert.True(t, resp.EsFiltrable)
	assert.Zero(t, resp.TotalValores)
	assert.Nil(t, resp.DeletedAt)
}

func TestAtributoCrear_SlugConSufijo(t *testing.T) {
	repo := newStubAtributoRepo()
	svc := NewAtributoService(repo)
	ctx := context.Background()

	// Same normalized name held by a deleted record still blocks the slug.
	primero, err := svc.Crear(ctx, dto.CrearAtributoRequest{Name: "Talle"})
	assert.NoError(t, err)
	assert.NoError(t, svc.Eliminar(ctx, uuid.MustParse(primero.ID)))

	segundo, err := svc.Crear(ctx, dto.CrearAtributoRequest{Name: "Talle"})
	assert.NoError(t, err)
	assert.Equal(t, "talle-1", segundo.Slug)

	tercero, err := svc.Crear(ctx, dto.CrearAtributoRequest{Name: "talle"})
	assert.Error(t, err) // active duplicate name rejected
	_ = tercero
}

func TestAtributoCrear_NombreDuplicado(t *testing.T) {
	repo := newStubAtributoRepo()
	svc := NewAtributoService(repo)
	ctx := context.Background()

	_, err := svc.Crear(ctx, dto.CrearAtributoRequest{Name: "Material"})
	assert.NoError(t, err)

	_, err = svc.Crear(ctx, dto.CrearAtributoRequest{Name: "MATERIAL"})
	var ci *CampoInvalido
	assert.ErrorAs(t, err, &ci)
	assert.Equal(t, "name", ci.Campo)
}

func TestAtributoActualizar_ReSlugSoloConCambioDeNombre(t *testing.T) {
	repo := newStubAtributoRepo()
	svc := NewAtributoService(repo)
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.CrearAtributoRequest{Name: "Peso"})
	assert.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	// Updating other fields keeps the slug stable.
	orden := 5
	resp, err := svc.Actualizar(ctx, id, dto.ActualizarAtributoRequest{Orden: &orden})
	assert.NoError(t, err)
	assert.Equal(t, "peso", resp.Slug)
	assert.Equal(t, 5, resp.Orden)

	nuevo := "Peso Neto"
	resp, err = svc.Actualizar(ctx, id, dto.ActualizarAtributoRequest{Name: &nuevo})
	assert.NoError(t, err)
	assert.Equal(t, "peso-neto", resp.Slug)
}

func TestAtributoEliminarRestaurar(t *testing.T) {
	repo := newStubAtributoRepo()
	svc := NewAtributoService(repo)
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.CrearAtributoRequest{Name: "Origen"})
	assert.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	assert.NoError(t, svc.Eliminar(ctx, id))
	assert.ErrorIs(t, svc.Eliminar(ctx, id), ErrYaEliminado)

	// Deleted records remain readable with deletedAt set.
	obtenido, err := svc.ObtenerPorID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, obtenido.DeletedAt)

	restaurado, err := svc.Restaurar(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, restaurado.DeletedAt)

	_, err = svc.Restaurar(ctx, id)
	assert.ErrorIs(t, err, ErrNoEliminado)
}

func TestAtributoEliminar_NoEncontrado(t *testing.T) {
	svc := NewAtributoService(newStubAtributoRepo())
	assert.ErrorIs(t, svc.Eliminar(context.Background(), uuid.New()), ErrNoEncontrado)
}

func TestAtributoListar_PorEstado(t *testing.T) {
	repo := newStubAtributoRepo()
	svc := NewAtributoService(repo)
	ctx := context.Background()

	a, _ := svc.Crear(ctx, dto.CrearAtributoRequest{Name: "Color"})
	_, _ = svc.Crear(ctx, dto.CrearAtributoRequest{Name: "Talle"})
	assert.NoError(t, svc.Eliminar(ctx, uuid.MustParse(a.ID)))

	activos, err := svc.Listar(ctx, dto.AtributoFiltro{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), activos.Total)

	eliminados, err := svc.Listar(ctx, dto.AtributoFiltro{Estado: listing.EstadoEliminados})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), eliminados.Total)

	todos, err := svc.Listar(ctx, dto.AtributoFiltro{Estado: listing.EstadoTodos})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), todos.Total)
}
