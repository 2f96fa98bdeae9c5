package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/listing"
	"catalogo/internal/middleware"
	"catalogo/internal/service"
)

var productoRenames = map[string]string{
	"skuBase":             "sku_base",
	"descripcionCorta":    "descripcion_corta",
	"descripcionLarga":    "descripcion_larga",
	"tieneVariantes":      "tiene_variantes",
	"tipoProducto":        "tipo_producto",
	"precioBase":          "precio_base",
	"precioCosto":         "precio_costo",
	"precioDescuento":     "precio_descuento",
	"porcentajeDescuento": "porcentaje_descuento",
	"stockActual":         "stock_actual",
	"stockMinimo":         "stock_minimo",
	"unidadMedida":        "unidad_medida",
	"metaTitle":           "meta_title",
	"metaDescription":     "meta_description",
	"esNuevo":             "es_nuevo",
	"fechaNuevoHasta":     "fecha_nuevo_hasta",
}

type ProductosHandler struct {
	svc    service.ProductoService
	export service.ProductoExportService
	cfg    *config.Config
}

func NewProductosHandler(svc service.ProductoService, export service.ProductoExportService, cfg *config.Config) *ProductosHandler {
	return &ProductosHandler{svc: svc, export: export, cfg: cfg}
}

// usuarioActual extracts the authenticated user id from the JWT claims.
func usuarioActual(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (h *ProductosHandler) filtro(c *gin.Context, comun listadoComun) dto.ProductoFiltro {
	return dto.ProductoFiltro{
		Estado:         comun.Estado,
		Search:         comun.Search,
		CategoriaID:    c.Query("categoria"),
		MarcaID:        c.Query("marca"),
		TipoProducto:   c.Query("tipo_producto"),
		Activo:         listing.Bool(c.Query("activo")),
		Publicado:      listing.Bool(c.Query("publicado")),
		Destacado:      listing.Bool(c.Query("destacado")),
		EsNuevo:        listing.Bool(c.Query("es_nuevo")),
		TieneVariantes: listing.Bool(c.Query("tiene_variantes")),
		Fechas:         comun.Fechas,
		Ordering:       comun.Ordering,
		Page:           comun.Page,
	}
}

// Listar GET /v1/productos
func (h *ProductosHandler) Listar(c *gin.Context) {
	comun, ok := parseListado(c, h.cfg)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), h.filtro(c, comun))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exportar GET /v1/productos/export
// Streams the filtered listing as an XLSX download.
func (h *ProductosHandler) Exportar(c *gin.Context) {
	comun, ok := parseListado(c, h.cfg)
	if !ok {
		return
	}
	buf, filename, err := h.export.Exportar(c.Request.Context(), h.filtro(c, comun))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// Crear POST /v1/productos
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindNormalized(c, &req, productoRenames) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /v1/productos/:id
func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT/PATCH /v1/productos/:id
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindNormalized(c, &req, productoRenames) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/productos/:id
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Producto eliminado correctamente"})
}

// Restaurar POST /v1/productos/:id/restaurar
func (h *ProductosHandler) Restaurar(c *gin.Context) {
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

// AjustarStock PATCH /v1/productos/:id/stock
func (h *ProductosHandler) AjustarStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarStock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Publicar POST /v1/productos/:id/publicar
func (h *ProductosHandler) Publicar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PublicarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Publicar(c.Request.Context(), id, req.Publicado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarVista POST /v1/productos/:id/vistas
func (h *ProductosHandler) RegistrarVista(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.RegistrarVista(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: "Vista registrada"})
}
