package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/service"
)

var subcategoriaRenames = map[string]string{
	"isActive":       "is_active",
	"seoTitle":       "seo_title",
	"seoDescription": "seo_description",
	"seoKeywords":    "seo_keywords",
}

type SubcategoriasHandler struct {
	svc service.SubcategoriaService
	cfg *config.Config
}

func NewSubcategoriasHandler(svc service.SubcategoriaService, cfg *config.Config) *SubcategoriasHandler {
	return &SubcategoriasHandler{svc: svc, cfg: cfg}
}

// Listar GET /v1/subcategorias
func (h *SubcategoriasHandler) Listar(c *gin.Context) {
	comun, ok := parseListado(c, h.cfg)
	if !ok {
		return
	}
	f := dto.SubcategoriaFiltro{
		Estado:      comun.Estado,
		Search:      comun.Search,
		CategoriaID: c.Query("category"),
		IsActive:    listing.Bool(c.Query("is_active")),
		Fechas:      comun.Fechas,
		Ordering:    comun.Ordering,
		Page:        comun.Page,
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/subcategorias
func (h *SubcategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearSubcategoriaRequest
	if !bindNormalized(c, &req, subcategoriaRenames) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /v1/subcategorias/:id
func (h *SubcategoriasHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT/PATCH /v1/subcategorias/:id
func (h *SubcategoriasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarSubcategoriaRequest
	if !bindNormalized(c, &req, subcategoriaRenames) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/subcategorias/:id
func (h *SubcategoriasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Subcategoría eliminada correctamente"})
}

// Restaurar POST /v1/subcategorias/:id/restaurar
func (h *SubcategoriasHandler) Restaurar(c *gin.Context) {
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
