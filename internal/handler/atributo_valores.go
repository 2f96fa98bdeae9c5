package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/service"
)

var atributoValorRenames = map[string]string{
	"valorExtra": "valor_extra",
}

type AtributoValoresHandler struct {
	svc service.AtributoValorService
	cfg *config.Config
}

func NewAtributoValoresHandler(svc service.AtributoValorService, cfg *config.Config) *AtributoValoresHandler {
	return &AtributoValoresHandler{svc: svc, cfg: cfg}
}

// Listar GET /v1/atributo-valores
func (h *AtributoValoresHandler) Listar(c *gin.Context) {
	comun, ok := parseListado(c, h.cfg)
	if !ok {
		return
	}
	f := dto.AtributoValorFiltro{
		Estado:     comun.Estado,
		Search:     comun.Search,
		AtributoID: c.Query("atributo"),
		Activo:     listing.Bool(c.Query("activo")),
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

// Crear POST /v1/atributo-valores
func (h *AtributoValoresHandler) Crear(c *gin.Context) {
	var req dto.CrearAtributoValorRequest
	if !bindNormalized(c, &req, atributoValorRenames) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /v1/atributo-valores/:id
func (h *AtributoValoresHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT/PATCH /v1/atributo-valores/:id
func (h *AtributoValoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarAtributoValorRequest
	if !bindNormalized(c, &req, atributoValorRenames) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/atributo-valores/:id
func (h *AtributoValoresHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Valor de atributo eliminado correctamente"})
}

// Restaurar POST /v1/atributo-valores/:id/restaurar
func (h *AtributoValoresHandler) Restaurar(c *gin.Context) {
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
