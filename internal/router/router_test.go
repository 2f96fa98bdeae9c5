package router

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo/internal/config"
)

func init() { gin.SetMode(gin.TestMode) }

// routeSet indexes the registered routes as "METHOD path" for lookups.
func routeSet(t *testing.T) map[string]bool {
	t.Helper()
	r := New(&config.Config{Env: "test"}, nil, nil)
	require.NotNil(t, r)

	set := make(map[string]bool)
	for _, ri := range r.Routes() {
		set[ri.Method+" "+ri.Path] = true
	}
	return set
}

func TestRutas_AjusteDeStockEsPatch(t *testing.T) {
	rutas := routeSet(t)

	assert.True(t, rutas[http.MethodPatch+" /v1/productos/:id/stock"])
	assert.False(t, rutas[http.MethodPost+" /v1/productos/:id/stock"])
}

func TestRutas_OperacionesDeProducto(t *testing.T) {
	rutas := routeSet(t)

	for _, ruta := range []string{
		"GET /v1/productos",
		"GET /v1/productos/export",
		"GET /v1/productos/:id",
		"POST /v1/productos",
		"PATCH /v1/productos/:id",
		"DELETE /v1/productos/:id",
		"POST /v1/productos/:id/restaurar",
		"POST /v1/productos/:id/publicar",
		"GET /v1/public/productos/:slug",
		"POST /v1/public/productos/:id/vistas",
	} {
		assert.True(t, rutas[ruta], ruta)
	}
}
