package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/service"
)

var categoriaRenames = map[string]string{
	"isActive":       "is_active",
	"seoTitle":       "seo_title",
	"seoDescription": "seo_description",
	"seoKeywords":    "seo_keywords",
}

type CategoriasHandler struct {
	svc       service.CategoriaService
	atributos service.CategoriaAtributoService
	cfg       *config.Config
}

func NewCategoriasHandler(svc service.CategoriaService, atributos service.CategoriaAtributoService, cfg *config.Config) *CategoriasHandler {
	return &CategoriasHandler{svc: svc, atributos: atributos, cfg: cfg}
}

// Listar GET /v1/categorias
func (h *CategoriasHandler) Listar(c *gin.Context) {
	comun, ok := parseListado(c, h.cfg)
	if !ok {
		return
	}
	f := dto.CategoriaFiltro{
		Estado:   comun.Estado,
		Search:   comun.Search,
		IsActive: listing.Bool(c.Query("is_active")),
		Fechas:   comun.Fechas,
		Ordering: comun.Ordering,
		Page:     comun.Page,
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/categorias
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindNormalized(c, &req, categoriaRenames) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /v1/categorias/:id
func (h *CategoriasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT/PATCH /v1/categorias/:id
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindNormalized(c, &req, categoriaRenames) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/categorias/:id
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Categoría eliminada correctamente"})
}

// Restaurar POST /v1/categorias/:id/restaurar
func (h *CategoriasHandler) Restaurar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Restaurar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarAtributos GET /v1/categorias/:id/atributos
// Returns the attribute set configured for the category, ordered for form
// rendering.
func (h *CategoriasHandler) ListarAtributos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.atributos.ListarPorCategoria(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
