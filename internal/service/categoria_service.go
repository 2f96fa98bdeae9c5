package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalogo/internal/dto"
	"catalogo/internal/model"
	"catalogo/internal/repository"
	"catalogo/internal/slug"
)

// CategoriaService defines business operations for product categories.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.CategoriaResponse, error)
	Listar(ctx context.Context, f dto.CategoriaFiltro) (dto.ListResponse[dto.CategoriaResponse], error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Restaurar(ctx context.Context, id uuid.UUID) (dto.CategoriaResponse, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func mapCategoria(c model.Categoria, totalSubcategorias, totalProductos int64) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:                 c.ID.String(),
		Name:               c.Name,
		Slug:               c.Slug,
		Description:        c.Description,
		Icon:               c.Icon,
		Image:              c.Image,
		SeoTitle:           c.SeoTitle,
		SeoDescription:     c.SeoDescription,
		SeoKeywords:        c.SeoKeywords,
		IsActive:           c.IsActive,
		TotalSubcategorias: totalSubcategorias,
		TotalProductos:     totalProductos,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		DeletedAt:          c.DeletedAt,
	}
}

func (s *categoriaService) slugExists(excludeID uuid.UUID) slug.ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, excludeID)
	}
}

func (s *categoriaService) conteos(ctx context.Context, ids []uuid.UUID) (map[string]int64, map[string]int64, error) {
	subs, err := s.repo.CountSubcategorias(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	prods, err := s.repo.CountProductos(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return subs, prods, nil
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	taken, err := s.repo.NameExistsActivo(ctx, req.Name, uuid.Nil)
	if err != nil {
		return dto.CategoriaResponse{}, err
	}
	if taken {
		return dto.CategoriaResponse{}, campoInvalido("name", "Ya existe una categoría con este nombre.")
	}

	unico, err := slug.Unique(ctx, req.Name, s.slugExists(uuid.Nil))
	if err != nil {
		return dto.CategoriaResponse{}, err
	}

	c := &model.Categoria{
		Name:           req.Name,
		Slug:           unico,
		Description:    req.Description,
		Icon:           req.Icon,
		Image:          req.Image,
		SeoTitle:       req.SeoTitle,
		SeoDescription: req.SeoDescription,
		SeoKeywords:    req.SeoKeywords,
		IsActive:       true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}
	return mapCategoria(*c, 0, 0), nil
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, ErrNoEncontrado
		}
		return dto.CategoriaResponse{}, err
	}
	subs, prods, err := s.conteos(ctx, []uuid.UUID{c.ID})
	if err != nil {
		return dto.CategoriaResponse{}, err
	}
	key := c.ID.String()
	return mapCategoria(*c, subs[key], prods[key]), nil
}

func (s *categoriaService) Listar(ctx context.Context, f dto.CategoriaFiltro) (dto.ListResponse[dto.CategoriaResponse], error) {
	categorias, total, err := s.repo.List(ctx, f)
	if err != nil {
		return dto.ListResponse[dto.CategoriaResponse]{}, err
	}

	ids := make([]uuid.UUID, 0, len(categorias))
	for _, c := range categorias {
		ids = append(ids, c.ID)
	}
	subs, prods, err := s.conteos(ctx, ids)
	if err != nil {
		return dto.ListResponse[dto.CategoriaResponse]{}, err
	}

	items := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		key := c.ID.String()
		items = append(items, mapCategoria(c, subs[key], prods[key]))
	}
	return dto.NewListResponse(items, total, f.Page), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, ErrNoEncontrado
		}
		return dto.CategoriaResponse{}, err
	}
	if c.IsDeleted() {
		return dto.CategoriaResponse{}, ErrYaEliminado
	}

	if req.Name != nil && *req.Name != c.Name {
		taken, err := s.repo.NameExistsActivo(ctx, *req.Name, id)
		if err != nil {
			return dto.CategoriaResponse{}, err
		}
		if taken {
			return dto.CategoriaResponse{}, campoInvalido("name", "Ya existe una categoría con este nombre.")
		}
		unico, err := slug.Unique(ctx, *req.Name, s.slugExists(id))
		if err != nil {
			return dto.CategoriaResponse{}, err
		}
		c.Name = *req.Name
		c.Slug = unico
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Icon != nil {
		c.Icon = req.Icon
	}
	if req.Image != nil {
		c.Image = req.Image
	}
	if req.SeoTitle != nil {
		c.SeoTitle = req.SeoTitle
	}
	if req.SeoDescription != nil {
		c.SeoDescription = req.SeoDescription
	}
	if req.SeoKeywords != nil {
		c.SeoKeywords = req.SeoKeywords
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}

	subs, prods, err := s.conteos(ctx, []uuid.UUID{c.ID})
	if err != nil {
		return dto.CategoriaResponse{}, err
	}
	key := c.ID.String()
	return mapCategoria(*c, subs[key], prods[key]), nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if c.IsDeleted() {
		return ErrYaEliminado
	}
	return s.repo.SoftDelete(ctx, id, time.Now())
}

func (s *categoriaService) Restaurar(ctx context.Context, id uuid.UUID) (dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, ErrNoEncontrado
		}
		return dto.CategoriaResponse{}, err
	}
	if !c.IsDeleted() {
		return dto.CategoriaResponse{}, ErrNoEliminado
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return dto.CategoriaResponse{}, err
	}
	c.Restore()

	subs, prods, err := s.conteos(ctx, []uuid.UUID{c.ID})
	if err != nil {
		return dto.CategoriaResponse{}, err
	}
	key := c.ID.String()
	return mapCategoria(*c, subs[key], prods[key]), nil
}
