package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/service"
)

type CategoriaAtributosHandler struct {
	svc service.CategoriaAtributoService
	cfg *config.Config
}

func NewCategoriaAtributosHandler(svc service.CategoriaAtributoService, cfg *config.Config) *CategoriaAtributosHandler {
	return &CategoriaAtributosHandler{svc: svc, cfg: cfg}
}

// Listar GET /v1/categoria-atributos
func (h *CategoriaAtributosHandler) Listar(c *gin.Context) {
	comun, ok := parseListado(c, h.cfg)
	if !ok {
		return
	}
	f := dto.CategoriaAtributoFiltro{
		Search:      comun.Search,
		CategoriaID: c.Query("categoria"),
		AtributoID:  c.Query("atributo"),
		Obligatorio: listing.Bool(c.Query("obligatorio")),
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

// Crear POST /v1/categoria-atributos
func (h *CategoriaAtributosHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaAtributoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /v1/categoria-atributos/:id
func (h *CategoriaAtributosHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT/PATCH /v1/categoria-atributos/:id
func (h *CategoriaAtributosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaAtributoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/categoria-atributos/:id
// Associations are removed physically; there is no restore.
func (h *CategoriaAtributosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Asociación eliminada correctamente"})
}
