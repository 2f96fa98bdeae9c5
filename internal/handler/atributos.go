package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/service"
)

// camelCase aliases accepted on attribute writes.
var atributoRenames = map[string]string{
	"tipoInput":   "tipo_input",
	"tipoDato":    "tipo_dato",
	"esVariable":  "es_variable",
	"esFiltrable": "es_filtrable",
}

type AtributosHandler struct {
	svc service.AtributoService
	cfg *config.Config
}

func NewAtributosHandler(svc service.AtributoService, cfg *config.Config) *AtributosHandler {
	return &AtributosHandler{svc: svc, cfg: cfg}
}

// Listar GET /v1/atributos
func (h *AtributosHandler) Listar(c *gin.Context) {
	comun, ok := parseListado(c, h.cfg)
	if !ok {
		return
	}
	f := dto.AtributoFiltro{
		Estado:      comun.Estado,
		Search:      comun.Search,
		TipoInput:   c.Query("tipo_input"),
		EsVariable:  listing.Bool(c.Query("es_variable")),
		EsFiltrable: listing.Bool(c.Query("es_filtrable")),
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

// Crear POST /v1/atributos
func (h *AtributosHandler) Crear(c *gin.Context) {
	var req dto.CrearAtributoRequest
	if !bindNormalized(c, &req, atributoRenames) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /v1/atributos/:id
func (h *AtributosHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT/PATCH /v1/atributos/:id
func (h *AtributosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarAtributoRequest
	if !bindNormalized(c, &req, atributoRenames) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/atributos/:id
func (h *AtributosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Atributo eliminado correctamente"})
}

// Restaurar POST /v1/atributos/:id/restaurar
func (h *AtributosHandler) Restaurar(c *gin.Context) {
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
