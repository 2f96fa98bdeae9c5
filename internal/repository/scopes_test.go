package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"catalogo/internal/listing"
	"catalogo/internal/model"
)

// dryRunDB builds a gorm session that generates SQL without touching a
// database, so the listing scopes can be asserted on the produced queries.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestSearchCols_CubrenColumnasBuscables(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"name", "descripcion", "slug"}, atributoSearchCols)
	assert.ElementsMatch(t,
		[]string{"valor", "valor_extra", "atributos.name"}, atributoValorSearchCols)
	assert.ElementsMatch(t,
		[]string{"name", "description", "website"}, marcaSearchCols)
	assert.ElementsMatch(t,
		[]string{"name", "description", "seo_keywords"}, categoriaSearchCols)
	assert.ElementsMatch(t,
		[]string{"subcategorias.name", "subcategorias.description", "subcategorias.seo_keywords", "categorias.name"},
		subcategoriaSearchCols)
	assert.ElementsMatch(t,
		[]string{"nombre", "sku_base", "descripcion_corta", "descripcion_larga", "keywords"},
		productoSearchCols)
}

func TestSearchScope_ILikePorColumna(t *testing.T) {
	db := dryRunDB(t)

	var productos []model.Producto
	q := searchScope(db.Model(&model.Producto{}), "café", productoSearchCols...)
	stmt := q.Find(&productos).Statement

	// The postgres dialect renders numbered placeholders ($1, $2, ...).
	sql := stmt.SQL.String()
	for _, col := range productoSearchCols {
		assert.Contains(t, sql, col+" ILIKE $")
	}
	assert.Len(t, stmt.Vars, len(productoSearchCols))
	assert.Equal(t, "%café%", stmt.Vars[0])
}

func TestSubcategoriaSearch_AlcanzaNombreDeCategoria(t *testing.T) {
	db := dryRunDB(t)

	var subcategorias []model.Subcategoria
	q := db.Model(&model.Subcategoria{}).
		Joins("JOIN categorias ON categorias.id = subcategorias.categoria_id")
	q = estadoScope(q, listing.EstadoActivos, "subcategorias.deleted_at")
	q = searchScope(q, "hogar", subcategoriaSearchCols...)
	sql := q.Find(&subcategorias).Statement.SQL.String()

	assert.Contains(t, sql, "JOIN categorias ON categorias.id = subcategorias.categoria_id")
	assert.Contains(t, sql, "categorias.name ILIKE $")
	assert.Contains(t, sql, "subcategorias.seo_keywords ILIKE $")
	// The soft-delete view must name its table once parents are joined.
	assert.Contains(t, sql, "subcategorias.deleted_at IS NULL")
}

func TestAtributoValorSearch_AlcanzaNombreDeAtributo(t *testing.T) {
	db := dryRunDB(t)

	var valores []model.AtributoValor
	q := db.Model(&model.AtributoValor{}).
		Joins("JOIN atributos ON atributos.id = atributo_valores.atributo_id")
	q = estadoScope(q, listing.EstadoEliminados, "atributo_valores.deleted_at")
	q = searchScope(q, "rojo", atributoValorSearchCols...)
	sql := q.Find(&valores).Statement.SQL.String()

	assert.Contains(t, sql, "JOIN atributos ON atributos.id = atributo_valores.atributo_id")
	assert.Contains(t, sql, "atributos.name ILIKE $")
	assert.Contains(t, sql, "atributo_valores.deleted_at IS NOT NULL")
}
