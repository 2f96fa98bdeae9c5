package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"catalogo/internal/apierror"
	"catalogo/internal/dto"
	"catalogo/internal/model"
	"catalogo/internal/repository"
)

const productoCacheTTL = 4 * time.Hour

// CatalogoPublicoHandler serves the storefront product lookup.
// No authentication required — read only.
type CatalogoPublicoHandler struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewCatalogoPublicoHandler(repo repository.ProductoRepository, rdb *redis.Client) *CatalogoPublicoHandler {
	return &CatalogoPublicoHandler{repo: repo, rdb: rdb}
}

func mapProductoPublico(p model.Producto) dto.ProductoPublicoResponse {
	return dto.ProductoPublicoResponse{
		ID:               p.ID.String(),
		Nombre:           p.Nombre,
		Slug:             p.Slug,
		DescripcionCorta: p.DescripcionCorta,
		DescripcionLarga: p.DescripcionLarga,
		CategoriaNombre:  p.CategoriaNombre(),
		MarcaNombre:      p.MarcaNombre(),
		PrecioFinal:      p.PrecioFinal(),
		PrecioBase:       p.PrecioBase,
		TieneDescuento:   p.TieneDescuento(),
		Moneda:           p.Moneda,
		TieneStock:       p.TieneStock(),
		UnidadMedida:     p.UnidadMedida,
		EsNuevo:          p.EsNuevo,
		RatingPromedio:   p.RatingPromedio,
		TotalReviews:     p.TotalReviews,
	}
}

// ObtenerPorSlug GET /v1/public/productos/:slug
func (h *CatalogoPublicoHandler) ObtenerPorSlug(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()
	cacheKey := "producto:slug:" + slug

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ProductoPublicoResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	producto, err := h.repo.FindBySlugPublicado(ctx, slug)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	resp := mapProductoPublico(*producto)

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, productoCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
