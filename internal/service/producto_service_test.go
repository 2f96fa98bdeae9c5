package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"catalogo/internal/dto"
	"catalogo/internal/model"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────

type stubProductoRepo struct {
	items      map[uuid.UUID]*model.Producto
	categorias map[uuid.UUID]*model.Categoria
	marcas     map[uuid.UUID]*model.Marca
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		items:      make(map[uuid.UUID]*model.Producto),
		categorias: make(map[uuid.UUID]*model.Categoria),
		marcas:     make(map[uuid.UUID]*model.Marca),
	}
}

// withRelations mirrors the Preloads of the real repository so mapped
// responses carry the parent names.
func (r *stubProductoRepo) withRelations(p model.Producto) *model.Producto {
	p.Categoria = r.categorias[p.CategoriaID]
	if p.MarcaID != nil {
		p.Marca = r.marcas[*p.MarcaID]
	}
	return &p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.items[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withRelations(*p), nil
}

func (r *stubProductoRepo) FindBySlugPublicado(_ context.Context, slug string) (*model.Producto, error) {
	for _, p := range r.items {
		if p.Slug == slug && p.Activo && p.Publicado && !p.IsDeleted() {
			return r.withRelations(*p), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFiltro) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, *r.withRelations(*p))
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) ListForExport(ctx context.Context, f dto.ProductoFiltro) ([]model.Producto, error) {
	out, _, err := r.List(ctx, f)
	return out, err
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	p.UpdatedAt = time.Now()
	r.items[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID, now time.Time) error {
	p, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.MarkDeleted(now)
	return nil
}

func (r *stubProductoRepo) Restore(_ context.Context, id uuid.UUID) error {
	p, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Restore()
	return nil
}

func (r *stubProductoRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, p := range r.items {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductoRepo) SkuExistsActivo(_ context.Context, sku string, excludeID uuid.UUID) (bool, error) {
	for _, p := range r.items {
		if p.IsDeleted() || p.SkuBase == nil || p.ID == excludeID {
			continue
		}
		if strings.EqualFold(*p.SkuBase, sku) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductoRepo) AjustarStock(_ context.Context, id uuid.UUID, delta int) error {
	p, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual += delta
	if p.StockActual < 0 {
		p.StockActual = 0
	}
	return nil
}

func (r *stubProductoRepo) IncrementarVistas(_ context.Context, id uuid.UUID) error {
	p, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Vistas++
	return nil
}

type stubCategoriaLookup struct {
	CategoriaRepositoryStubBase
	items map[uuid.UUID]*model.Categoria
}

type stubMarcaLookup struct {
	MarcaRepositoryStubBase
	items map[uuid.UUID]*model.Marca
}

// The producto service only reads its parent repos via FindByID; the
// remaining methods of both interfaces are inherited no-ops.

type CategoriaRepositoryStubBase struct{}

func (CategoriaRepositoryStubBase) Create(context.Context, *model.Categoria) error { return nil }
func (CategoriaRepositoryStubBase) List(context.Context, dto.CategoriaFiltro) ([]model.Categoria, int64, error) {
	return nil, 0, nil
}
func (CategoriaRepositoryStubBase) Update(context.Context, *model.Categoria) error { return nil }
func (CategoriaRepositoryStubBase) SoftDelete(context.Context, uuid.UUID, time.Time) error {
	return nil
}
func (CategoriaRepositoryStubBase) Restore(context.Context, uuid.UUID) error { return nil }
func (CategoriaRepositoryStubBase) SlugExists(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}
func (CategoriaRepositoryStubBase) NameExistsActivo(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}
func (CategoriaRepositoryStubBase) CountSubcategorias(context.Context, []uuid.UUID) (map[string]int64, error) {
	return nil, nil
}
func (CategoriaRepositoryStubBase) CountProductos(context.Context, []uuid.UUID) (map[string]int64, error) {
	return nil, nil
}

func (s *stubCategoriaLookup) FindByID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

type MarcaRepositoryStubBase struct{}

func (MarcaRepositoryStubBase) Create(context.Context, *model.Marca) error { return nil }
func (MarcaRepositoryStubBase) List(context.Context, dto.MarcaFiltro) ([]model.Marca, int64, error) {
	return nil, 0, nil
}
func (MarcaRepositoryStubBase) Update(context.Context, *model.Marca) error          { return nil }
func (MarcaRepositoryStubBase) SoftDelete(context.Context, uuid.UUID, time.Time) error { return nil }
func (MarcaRepositoryStubBase) Restore(context.Context, uuid.UUID) error            { return nil }
func (MarcaRepositoryStubBase) SlugExists(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}
func (MarcaRepositoryStubBase) NameExistsActivo(context.Context, string, uuid.UUID) (bool, error) {
	return false, nil
}
func (MarcaRepositoryStubBase) CountProductos(context.Context, []uuid.UUID) (map[string]int64, error) {
	return nil, nil
}

func (s *stubMarcaLookup) FindByID(_ context.Context, id uuid.UUID) (*model.Marca, error) {
	m, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

type productoFixture struct {
	repo       *stubProductoRepo
	svc        ProductoService
	categoria  *model.Categoria
	marca      *model.Marca
	categorias *stubCategoriaLookup
}

func newProductoFixture() *productoFixture {
	repo := newStubProductoRepo()
	categoria := &model.Categoria{ID: uuid.New(), Name: "Bebidas", IsActive: true}
	marca := &model.Marca{ID: uuid.New(), Name: "Acme", IsActive: true}
	repo.categorias[categoria.ID] = categoria
	repo.marcas[marca.ID] = marca
	categorias := &stubCategoriaLookup{items: map[uuid.UUID]*model.Categoria{categoria.ID: categoria}}
	marcas := &stubMarcaLookup{items: map[uuid.UUID]*model.Marca{marca.ID: marca}}
	return &productoFixture{
		repo:       repo,
		svc:        NewProductoService(repo, categorias, marcas, nil),
		categoria:  categoria,
		marca:      marca,
		categorias: categorias,
	}
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestProductoCrear_CamposCalculados(t *testing.T) {
	fx := newProductoFixture()
	marcaID := fx.marca.ID.String()

	resp, err := fx.svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:          "Café Molido 500g",
		CategoriaID:     fx.categoria.ID.String(),
		MarcaID:         &marcaID,
		SkuBase:         strPtr("CAFE-500"),
		PrecioBase:      decPtr("100"),
		PrecioCosto:     decPtr("60"),
		PrecioDescuento: decPtr("80"),
	}, uuid.Nil)

	assert.NoError(t, err)
	assert.Equal(t, "cafe-molido-500g", resp.Slug)
	assert.Equal(t, "Bebidas", resp.CategoriaNombre)
	assert.NotNil(t, resp.MarcaNombre)
	assert.Equal(t, "Acme", *resp.MarcaNombre)
	assert.True(t, resp.TieneDescuento)
	assert.NotNil(t, resp.PrecioFinal)
	assert.Equal(t, "80", resp.PrecioFinal.String())
	assert.NotNil(t, resp.MargenGanancia)
	assert.Equal(t, "40", resp.MargenGanancia.String())
	assert.NotNil(t, resp.PorcentajeGanancia)
	assert.Equal(t, "66.67", resp.PorcentajeGanancia.StringFixed(2))
	assert.Equal(t, "simple", resp.TipoProducto)
	assert.Equal(t, "COP", resp.Moneda)
	assert.True(t, resp.Activo)
	assert.False(t, resp.Publicado)
}

func TestProductoCrear_CategoriaInvalida(t *testing.T) {
	fx := newProductoFixture()

	_, err := fx.svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      "Sin Categoría",
		CategoriaID: uuid.NewString(),
	}, uuid.Nil)

	var ci *CampoInvalido
	assert.ErrorAs(t, err, &ci)
	assert.Equal(t, "categoria", ci.Campo)
}

func TestProductoCrear_CategoriaEliminadaRechazada(t *testing.T) {
	fx := newProductoFixture()
	fx.categoria.MarkDeleted(time.Now())

	_, err := fx.svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      "Huérfano",
		CategoriaID: fx.categoria.ID.String(),
	}, uuid.Nil)

	var ci *CampoInvalido
	assert.ErrorAs(t, err, &ci)
	assert.Equal(t, "categoria", ci.Campo)
}

func TestProductoCrear_SkuDuplicado(t *testing.T) {
	fx := newProductoFixture()
	ctx := context.Background()

	_, err := fx.svc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:      "Producto A",
		CategoriaID: fx.categoria.ID.String(),
		SkuBase:     strPtr("SKU-1"),
	}, uuid.Nil)
	assert.NoError(t, err)

	_, err = fx.svc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:      "Producto B",
		CategoriaID: fx.categoria.ID.String(),
		SkuBase:     strPtr("sku-1"), // case-insensitive match
	}, uuid.Nil)

	var ci *CampoInvalido
	assert.ErrorAs(t, err, &ci)
	assert.Equal(t, "sku_base", ci.Campo)
}

func TestProductoActualizar_QuitarMarca(t *testing.T) {
	fx := newProductoFixture()
	ctx := context.Background()
	marcaID := fx.marca.ID.String()

	creado, err := fx.svc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:      "Con Marca",
		CategoriaID: fx.categoria.ID.String(),
		MarcaID:     &marcaID,
	}, uuid.Nil)
	assert.NoError(t, err)
	assert.NotNil(t, creado.MarcaID)

	// Empty string clears the brand association.
	resp, err := fx.svc.Actualizar(ctx, uuid.MustParse(creado.ID),
		dto.ActualizarProductoRequest{MarcaID: strPtr("")}, uuid.Nil)
	assert.NoError(t, err)
	assert.Nil(t, resp.MarcaID)
}

func TestProductoEliminar_DespublicaYDesactiva(t *testing.T) {
	fx := newProductoFixture()
	ctx := context.Background()
	publicado := true

	creado, err := fx.svc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:      "Efímero",
		CategoriaID: fx.categoria.ID.String(),
		Publicado:   &publicado,
	}, uuid.Nil)
	assert.NoError(t, err)
	assert.True(t, creado.Publicado)
	id := uuid.MustParse(creado.ID)

	assert.NoError(t, fx.svc.Eliminar(ctx, id))
	assert.ErrorIs(t, fx.svc.Eliminar(ctx, id), ErrYaEliminado)

	eliminado, err := fx.svc.ObtenerPorID(ctx, id)
	assert.NoError(t, err)
	assert.False(t, eliminado.Activo)
	assert.False(t, eliminado.Publicado)
	assert.NotNil(t, eliminado.DeletedAt)

	// Restore reactivates but publishing stays an explicit editorial step.
	restaurado, err := fx.svc.Restaurar(ctx, id)
	assert.NoError(t, err)
	assert.True(t, restaurado.Activo)
	assert.False(t, restaurado.Publicado)
}

func TestProductoAjustarStock_ClampEnCero(t *testing.T) {
	fx := newProductoFixture()
	ctx := context.Background()
	stock := 5

	creado, err := fx.svc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:      "Stockeable",
		CategoriaID: fx.categoria.ID.String(),
		StockActual: &stock,
	}, uuid.Nil)
	assert.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	resp, err := fx.svc.AjustarStock(ctx, id, dto.AjustarStockRequest{Cantidad: -3})
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.StockActual)

	resp, err = fx.svc.AjustarStock(ctx, id, dto.AjustarStockRequest{Cantidad: -10})
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.StockActual)
	assert.False(t, resp.TieneStock)
}

func TestProductoPublicar_FijaFechaPublicacion(t *testing.T) {
	fx := newProductoFixture()
	ctx := context.Background()

	creado, err := fx.svc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:      "Lanzamiento",
		CategoriaID: fx.categoria.ID.String(),
	}, uuid.Nil)
	assert.NoError(t, err)
	assert.Nil(t, creado.FechaPublicacion)
	id := uuid.MustParse(creado.ID)

	resp, err := fx.svc.Publicar(ctx, id, true)
	assert.NoError(t, err)
	assert.True(t, resp.Publicado)
	assert.NotNil(t, resp.FechaPublicacion)

	resp, err = fx.svc.Publicar(ctx, id, false)
	assert.NoError(t, err)
	assert.False(t, resp.Publicado)
}

func TestProductoObtener_NoEncontrado(t *testing.T) {
	fx := newProductoFixture()
	_, err := fx.svc.ObtenerPorID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
