package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"catalogo/internal/dto"
	"catalogo/internal/model"
	"catalogo/internal/repository"
	"catalogo/internal/slug"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest, userID uuid.UUID) (dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.ProductoResponse, error)
	Listar(ctx context.Context, f dto.ProductoFiltro) (dto.ListResponse[dto.ProductoResponse], error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest, userID uuid.UUID) (dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Restaurar(ctx context.Context, id uuid.UUID) (dto.ProductoResponse, error)

	AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (dto.ProductoResponse, error)
	Publicar(ctx context.Context, id uuid.UUID, publicado bool) (dto.ProductoResponse, error)
	RegistrarVista(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo       repository.ProductoRepository
	categorias repository.CategoriaRepository
	marcas     repository.MarcaRepository
	rdb        *redis.Client
}

func NewProductoService(
	repo repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	marcas repository.MarcaRepository,
	rdb *redis.Client,
) ProductoService {
	return &productoService{repo: repo, categorias: categorias, marcas: marcas, rdb: rdb}
}

func mapProducto(p model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:               p.ID.String(),
		Nombre:           p.Nombre,
		Slug:             p.Slug,
		SkuBase:          p.SkuBase,
		DescripcionCorta: p.DescripcionCorta,
		DescripcionLarga: p.DescripcionLarga,

		CategoriaID:     p.CategoriaID.String(),
		CategoriaNombre: p.CategoriaNombre(),
		MarcaNombre:     p.MarcaNombre(),

		TieneVariantes: p.TieneVariantes,
		TipoProducto:   p.TipoProducto,

		PrecioBase:          p.PrecioBase,
		PrecioCosto:         p.PrecioCosto,
		PrecioDescuento:     p.PrecioDescuento,
		PorcentajeDescuento: p.PorcentajeDescuento,
		Moneda:              p.Moneda,

		PrecioFinal:        p.PrecioFinal(),
		TieneDescuento:     p.TieneDescuento(),
		MargenGanancia:     p.MargenGanancia(),
		PorcentajeGanancia: p.PorcentajeGanancia(),

		StockActual:  p.StockActual,
		StockMinimo:  p.StockMinimo,
		UnidadMedida: p.UnidadMedida,
		TieneStock:   p.TieneStock(),
		StockBajo:    p.StockBajo(),

		Peso:    p.Peso,
		Largo:   p.Largo,
		Ancho:   p.Ancho,
		Alto:    p.Alto,
		Volumen: p.Volumen(),

		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Keywords:        p.Keywords,

		Activo:    p.Activo,
		Publicado: p.Publicado,
		Destacado: p.Destacado,
		EsNuevo:   p.EsNuevo,

		FechaPublicacion: p.FechaPublicacion,
		FechaNuevoHasta:  p.FechaNuevoHasta,

		Vistas:         p.Vistas,
		VentasTotales:  p.VentasTotales,
		RatingPromedio: p.RatingPromedio,
		TotalReviews:   p.TotalReviews,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		DeletedAt: p.DeletedAt,
	}
	if p.MarcaID != nil {
		id := p.MarcaID.String()
		resp.MarcaID = &id
	}
	if p.CreatedBy != nil {
		nombre := p.CreatedBy.NombreCompleto()
		resp.CreatedByNombre = &nombre
	}
	if p.UpdatedBy != nil {
		nombre := p.UpdatedBy.NombreCompleto()
		resp.UpdatedByNombre = &nombre
	}
	return resp
}

func (s *productoService) slugExists(excludeID uuid.UUID) slug.ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, excludeID)
	}
}

// invalidarCache drops the public cache entry for a slug after any mutation,
// best effort.
func (s *productoService) invalidarCache(slug string) {
	if s.rdb == nil || slug == "" {
		return
	}
	_ = s.rdb.Del(context.Background(), "producto:slug:"+slug).Err()
}

func (s *productoService) validarCategoria(ctx context.Context, id uuid.UUID) error {
	c, err := s.categorias.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return campoInvalido("categoria", "La categoría indicada no existe.")
		}
		return err
	}
	if c.IsDeleted() || !c.IsActive {
		return campoInvalido("categoria", "La categoría indicada no está activa.")
	}
	return nil
}

func (s *productoService) validarMarca(ctx context.Context, id uuid.UUID) error {
	m, err := s.marcas.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return campoInvalido("marca", "La marca indicada no existe.")
		}
		return err
	}
	if m.IsDeleted() || !m.IsActive {
		return campoInvalido("marca", "La marca indicada no está activa.")
	}
	return nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest, userID uuid.UUID) (dto.ProductoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return dto.ProductoResponse{}, campoInvalido("categoria", "Identificador inválido.")
	}
	if err := s.validarCategoria(ctx, categoriaID); err != nil {
		return dto.ProductoResponse{}, err
	}

	var marcaID *uuid.UUID
	if req.MarcaID != nil && *req.MarcaID != "" {
		id, err := uuid.Parse(*req.MarcaID)
		if err != nil {
			return dto.ProductoResponse{}, campoInvalido("marca", "Identificador inválido.")
		}
		if err := s.validarMarca(ctx, id); err != nil {
			return dto.ProductoResponse{}, err
		}
		marcaID = &id
	}

	if req.SkuBase != nil && *req.SkuBase != "" {
		dup, err := s.repo.SkuExistsActivo(ctx, *req.SkuBase, uuid.Nil)
		if err != nil {
			return dto.ProductoResponse{}, err
		}
		if dup {
			return dto.ProductoResponse{}, campoInvalido("sku_base", "Ya existe un producto con este SKU.")
		}
	}

	unico, err := slug.Unique(ctx, req.Nombre, s.slugExists(uuid.Nil))
	if err != nil {
		return dto.ProductoResponse{}, err
	}

	p := &model.Producto{
		Nombre:           req.Nombre,
		Slug:             unico,
		SkuBase:          req.SkuBase,
		DescripcionCorta: req.DescripcionCorta,
		DescripcionLarga: req.DescripcionLarga,
		CategoriaID:      categoriaID,
		MarcaID:          marcaID,
		TipoProducto:     "simple",
		Moneda:           "COP",
		UnidadMedida:     "unidad",
		Activo:           true,

		PrecioBase:          req.PrecioBase,
		PrecioCosto:         req.PrecioCosto,
		PrecioDescuento:     req.PrecioDescuento,
		PorcentajeDescuento: req.PorcentajeDescuento,

		Peso:  req.Peso,
		Largo: req.Largo,
		Ancho: req.Ancho,
		Alto:  req.Alto,

		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		FechaNuevoHasta: req.FechaNuevoHasta,
	}
	if req.TipoProducto != "" {
		p.TipoProducto = req.TipoProducto
	}
	if req.Moneda != "" {
		p.Moneda = req.Moneda
	}
	if req.UnidadMedida != "" {
		p.UnidadMedida = req.UnidadMedida
	}
	if req.TieneVariantes != nil {
		p.TieneVariantes = *req.TieneVariantes
	}
	if req.StockActual != nil {
		p.StockActual = *req.StockActual
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if req.Destacado != nil {
		p.Destacado = *req.Destacado
	}
	if req.EsNuevo != nil {
		p.EsNuevo = *req.EsNuevo
	}
	if req.Publicado != nil && *req.Publicado {
		now := time.Now()
		p.Publicado = true
		p.FechaPublicacion = &now
	}
	if userID != uuid.Nil {
		p.CreatedByID = &userID
		p.UpdatedByID = &userID
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}

	creado, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*creado), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*p), nil
}

func (s *productoService) Listar(ctx context.Context, f dto.ProductoFiltro) (dto.ListResponse[dto.ProductoResponse], error) {
	productos, total, err := s.repo.List(ctx, f)
	if err != nil {
		return dto.ListResponse[dto.ProductoResponse]{}, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, mapProducto(p))
	}
	return dto.NewListResponse(items, total, f.Page), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest, userID uuid.UUID) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}
	if p.IsDeleted() {
		return dto.ProductoResponse{}, ErrYaEliminado
	}
	slugAnterior := p.Slug

	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return dto.ProductoResponse{}, campoInvalido("categoria", "Identificador inválido.")
		}
		if categoriaID != p.CategoriaID {
			if err := s.validarCategoria(ctx, categoriaID); err != nil {
				return dto.ProductoResponse{}, err
			}
			p.CategoriaID = categoriaID
			p.Categoria = nil
		}
	}
	if req.MarcaID != nil {
		if *req.MarcaID == "" {
			p.MarcaID = nil
			p.Marca = nil
		} else {
			marcaID, err := uuid.Parse(*req.MarcaID)
			if err != nil {
				return dto.ProductoResponse{}, campoInvalido("marca", "Identificador inválido.")
			}
			if p.MarcaID == nil || marcaID != *p.MarcaID {
				if err := s.validarMarca(ctx, marcaID); err != nil {
					return dto.ProductoResponse{}, err
				}
				p.MarcaID = &marcaID
				p.Marca = nil
			}
		}
	}
	if req.SkuBase != nil && (p.SkuBase == nil || *req.SkuBase != *p.SkuBase) {
		if *req.SkuBase != "" {
			dup, err := s.repo.SkuExistsActivo(ctx, *req.SkuBase, id)
			if err != nil {
				return dto.ProductoResponse{}, err
			}
			if dup {
				return dto.ProductoResponse{}, campoInvalido("sku_base", "Ya existe un producto con este SKU.")
			}
		}
		p.SkuBase = req.SkuBase
	}
	if req.Nombre != nil && *req.Nombre != p.Nombre {
		unico, err := slug.Unique(ctx, *req.Nombre, s.slugExists(id))
		if err != nil {
			return dto.ProductoResponse{}, err
		}
		p.Nombre = *req.Nombre
		p.Slug = unico
	}

	if req.DescripcionCorta != nil {
		p.DescripcionCorta = *req.DescripcionCorta
	}
	if req.DescripcionLarga != nil {
		p.DescripcionLarga = *req.DescripcionLarga
	}
	if req.TieneVariantes != nil {
		p.TieneVariantes = *req.TieneVariantes
	}
	if req.TipoProducto != nil {
		p.TipoProducto = *req.TipoProducto
	}
	if req.PrecioBase != nil {
		p.PrecioBase = req.PrecioBase
	}
	if req.PrecioCosto != nil {
		p.PrecioCosto = req.PrecioCosto
	}
	if req.PrecioDescuento != nil {
		p.PrecioDescuento = req.PrecioDescuento
	}
	if req.PorcentajeDescuento != nil {
		p.PorcentajeDescuento = req.PorcentajeDescuento
	}
	if req.Moneda != nil {
		p.Moneda = *req.Moneda
	}
	if req.StockActual != nil {
		p.StockActual = *req.StockActual
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.UnidadMedida != nil {
		p.UnidadMedida = *req.UnidadMedida
	}
	if req.Peso != nil {
		p.Peso = req.Peso
	}
	if req.Largo != nil {
		p.Largo = req.Largo
	}
	if req.Ancho != nil {
		p.Ancho = req.Ancho
	}
	if req.Alto != nil {
		p.Alto = req.Alto
	}
	if req.MetaTitle != nil {
		p.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		p.MetaDescription = req.MetaDescription
	}
	if req.Keywords != nil {
		p.Keywords = req.Keywords
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}
	if req.Destacado != nil {
		p.Destacado = *req.Destacado
	}
	if req.EsNuevo != nil {
		p.EsNuevo = *req.EsNuevo
	}
	if req.FechaNuevoHasta != nil {
		p.FechaNuevoHasta = req.FechaNuevoHasta
	}
	if req.Publicado != nil && *req.Publicado != p.Publicado {
		p.Publicado = *req.Publicado
		if p.Publicado && p.FechaPublicacion == nil {
			now := time.Now()
			p.FechaPublicacion = &now
		}
	}
	if userID != uuid.Nil {
		p.UpdatedByID = &userID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	s.invalidarCache(slugAnterior)
	if p.Slug != slugAnterior {
		s.invalidarCache(p.Slug)
	}

	actualizado, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*actualizado), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if p.IsDeleted() {
		return ErrYaEliminado
	}
	if err := s.repo.SoftDelete(ctx, id, time.Now()); err != nil {
		return err
	}
	s.invalidarCache(p.Slug)
	return nil
}

func (s *productoService) Restaurar(ctx context.Context, id uuid.UUID) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}
	if !p.IsDeleted() {
		return dto.ProductoResponse{}, ErrNoEliminado
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return dto.ProductoResponse{}, err
	}
	p.Restore()
	return mapProducto(*p), nil
}

func (s *productoService) AjustarStock(ctx context.Context, id uuid.UUID, req dto.AjustarStockRequest) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}
	if p.IsDeleted() {
		return dto.ProductoResponse{}, ErrYaEliminado
	}

	if err := s.repo.AjustarStock(ctx, id, req.Cantidad); err != nil {
		return dto.ProductoResponse{}, err
	}
	s.invalidarCache(p.Slug)

	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*actualizado), nil
}

func (s *productoService) Publicar(ctx context.Context, id uuid.UUID, publicado bool) (dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, ErrNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}
	if p.IsDeleted() {
		return dto.ProductoResponse{}, ErrYaEliminado
	}

	p.Publicado = publicado
	if publicado && p.FechaPublicacion == nil {
		now := time.Now()
		p.FechaPublicacion = &now
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	s.invalidarCache(p.Slug)
	return mapProducto(*p), nil
}

func (s *productoService) RegistrarVista(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.IncrementarVistas(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return nil
}
