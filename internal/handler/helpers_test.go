package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/service"
)

func init() { gin.SetMode(gin.TestMode) }

func jsonContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func queryContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c, w
}

func TestBindNormalized_AliasCamelCase(t *testing.T) {
	c, _ := jsonContext(t, `{"name":"Ropa","seoTitle":"Ropa Online","isActive":false}`)
	var req dto.CrearCategoriaRequest
	ok := bindNormalized(c, &req, categoriaRenames)
	assert.True(t, ok)
	assert.Equal(t, "Ropa", req.Name)
	assert.NotNil(t, req.SeoTitle)
	assert.Equal(t, "Ropa Online", *req.SeoTitle)
	assert.NotNil(t, req.IsActive)
	assert.False(t, *req.IsActive)
}

func TestBindNormalized_SnakeCaseGanaSobreAlias(t *testing.T) {
	c, _ := jsonContext(t, `{"name":"Ropa","seo_title":"Gana","seoTitle":"Pierde"}`)
	var req dto.CrearCategoriaRequest
	ok := bindNormalized(c, &req, categoriaRenames)
	assert.True(t, ok)
	assert.Equal(t, "Gana", *req.SeoTitle)
}

func TestBindNormalized_ValidacionFalla(t *testing.T) {
	c, w := jsonContext(t, `{}`) // name is required
	var req dto.CrearCategoriaRequest
	ok := bindNormalized(c, &req, categoriaRenames)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "fields")
}

func TestParseListado_Defaults(t *testing.T) {
	cfg := &config.Config{PageSizeDefault: 10, PageSizeMax: 100}
	c, _ := queryContext(t, "")
	comun, ok := parseListado(c, cfg)
	assert.True(t, ok)
	assert.Equal(t, 1, comun.Page.Number)
	assert.Equal(t, 10, comun.Page.Size)
	assert.Empty(t, comun.Estado)
}

func TestParseListado_PageSizeNoNumericoUsaDefault(t *testing.T) {
	cfg := &config.Config{PageSizeDefault: 10, PageSizeMax: 100}
	c, _ := queryContext(t, "page=abc&page_size=muchos")
	comun, ok := parseListado(c, cfg)
	assert.True(t, ok)
	assert.Equal(t, 1, comun.Page.Number)
	assert.Equal(t, 10, comun.Page.Size)
}

func TestParseListado_PageSizeClampAlMaximo(t *testing.T) {
	cfg := &config.Config{PageSizeDefault: 10, PageSizeMax: 100}
	c, _ := queryContext(t, "page_size=5000")
	comun, ok := parseListado(c, cfg)
	assert.True(t, ok)
	assert.Equal(t, 100, comun.Page.Size)
}

func TestParseListado_FechaInvalida(t *testing.T) {
	cfg := &config.Config{PageSizeDefault: 10, PageSizeMax: 100}
	c, w := queryContext(t, "start_date=30-08-2026")
	_, ok := parseListado(c, cfg)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	fields, _ := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "start_date")
}

func TestRespondError_Mapeos(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{service.ErrNoEncontrado, http.StatusNotFound},
		{service.ErrYaEliminado, http.StatusBadRequest},
		{service.ErrNoEliminado, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, tc.err)
		assert.Equal(t, tc.code, w.Code)
	}
}
