package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/service"
)

var marcaRenames = map[string]string{
	"isActive":   "is_active",
	"isFeatured": "is_featured",
}

type MarcasHandler struct {
	svc service.MarcaService
	cfg *config.Config
}

func NewMarcasHandler(svc service.MarcaService, cfg *config.Config) *MarcasHandler {
	return &MarcasHandler{svc: svc, cfg: cfg}
}

// Listar GET /v1/marcas
func (h *MarcasHandler) Listar(c *gin.Context) {
	comun, ok := parseListado(c, h.cfg)
	if !ok {
		return
	}
	f := dto.MarcaFiltro{
		Estado:     comun.Estado,
		Search:     comun.Search,
		IsActive:   listing.Bool(c.Query("is_active")),
		IsFeatured: listing.Bool(c.Query("is_featured")),
		Fechas:     comun.Fechas,
		Ordering:   comun.Ordering,
		Page:       comun.Page,
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/marcas
func (h *MarcasHandler) Crear(c *gin.Context) {
	var req dto.CrearMarcaRequest
	if !bindNormalized(c, &req, marcaRenames) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /v1/marcas/:id
func (h *MarcasHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT/PATCH /v1/marcas/:id
func (h *MarcasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMarcaRequest
	if !bindNormalized(c, &req, marcaRenames) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/marcas/:id
func (h *MarcasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Marca eliminada correctamente"})
}

// Restaurar POST /v1/marcas/:id/restaurar
func (h *MarcasHandler) Restaurar(c *gin.Context) {
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
