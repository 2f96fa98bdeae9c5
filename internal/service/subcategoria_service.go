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

// SubcategoriaService defines business operations for subcategories.
type SubcategoriaService interface {
	Crear(ctx context.Context, req dto.CrearSubcategoriaRequest) (dto.SubcategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.SubcategoriaResponse, error)
	Listar(ctx context.Context, f dto.SubcategoriaFiltro) (dto.ListResponse[dto.SubcategoriaResponse], error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSubcategoriaRequest) (dto.SubcategoriaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Restaurar(ctx context.Context, id uuid.UUID) (dto.SubcategoriaResponse, error)
}

type subcategoriaService struct {
	repo       repository.SubcategoriaRepository
	categorias repository.CategoriaRepository
}

func NewSubcategoriaService(repo repository.SubcategoriaRepository, categorias repository.CategoriaRepository) SubcategoriaService {
	return &subcategoriaService{repo: repo, categorias: categorias}
}

func mapSubcategoria(s model.Subcategoria) dto.SubcategoriaResponse {
	return dto.SubcategoriaResponse{
		ID:              s.ID.String(),
		CategoriaID:     s.CategoriaID.String(),
		CategoriaNombre: s.CategoriaNombre(),
		Name:            s.Name,
		Slug:            s.Slug,
		Description:     s.Description,
		Icon:            s.Icon,
		Image:           s.Image,
		SeoTitle:        s.SeoTitle,
		SeoDescription:  s.SeoDescription,
		SeoKeywords:     s.SeoKeywords,
		IsActive:        s.IsActive,
		Orden:           s.Orden,
		TotalProductos:  0,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		DeletedAt:       s.DeletedAt,
	}
}

func (s *subcategoriaService) slugExists(excludeID uuid.UUID) slug.ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, excludeID)
	}
}

// validarCategoriaPadre requires the parent category to exist and be active.
func (s *subcategoriaService) validarCategoriaPadre(ctx context.Context, id uuid.UUID) error {
	c, err := s.categorias.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return campoInvalido("category", "La categoría indicada no existe.")
		}
		return err
	}
	if c.IsDeleted() || !c.IsActive {
		return campoInvalido("category", "La categoría indicada no está activa.")
	}
	return nil
}

func (s *subcategoriaService) Crear(ctx context.Context, req dto.CrearSubcategoriaRequest) (dto.SubcategoriaResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return dto.SubcategoriaResponse{}, campoInvalido("category", "Identificador inválido.")
	}
	if err := s.validarCategoriaPadre(ctx, categoriaID); err != nil {
		return dto.SubcategoriaResponse{}, err
	}

	taken, err := s.repo.NameExistsActivo(ctx, req.Name, uuid.Nil)
	if err != nil {
		return dto.SubcategoriaResponse{}, err
	}
	if taken {
		return dto.SubcategoriaResponse{}, campoInvalido("name", "Ya existe una subcategoría con este nombre.")
	}

	unico, err := slug.Unique(ctx, req.Name, s.slugExists(uuid.Nil))
	if err != nil {
		return dto.SubcategoriaResponse{}, err
	}

	sub := &model.Subcategoria{
		CategoriaID:    categoriaID,
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
		sub.IsActive = *req.IsActive
	}
	if req.Orden != nil {
		sub.Orden = *req.Orden
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return dto.SubcategoriaResponse{}, err
	}

	creado, err := s.repo.FindByID(ctx, sub.ID)
	if err != nil {
		return dto.SubcategoriaResponse{}, err
	}
	return mapSubcategoria(*creado), nil
}

func (s *subcategoriaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.SubcategoriaResponse, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubcategoriaResponse{}, ErrNoEncontrado
		}
		return dto.SubcategoriaResponse{}, err
	}
	return mapSubcategoria(*sub), nil
}

func (s *subcategoriaService) Listar(ctx context.Context, f dto.SubcategoriaFiltro) (dto.ListResponse[dto.SubcategoriaResponse], error) {
	subcategorias, total, err := s.repo.List(ctx, f)
	if err != nil {
		return dto.ListResponse[dto.SubcategoriaResponse]{}, err
	}
	items := make([]dto.SubcategoriaResponse, 0, len(subcategorias))
	for _, sub := range subcategorias {
		items = append(items, mapSubcategoria(sub))
	}
	return dto.NewListResponse(items, total, f.Page), nil
}

func (s *subcategoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSubcategoriaRequest) (dto.SubcategoriaResponse, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubcategoriaResponse{}, ErrNoEncontrado
		}
		return dto.SubcategoriaResponse{}, err
	}
	if sub.IsDeleted() {
		return dto.SubcategoriaResponse{}, ErrYaEliminado
	}

	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return dto.SubcategoriaResponse{}, campoInvalido("category", "Identificador inválido.")
		}
		if categoriaID != sub.CategoriaID {
			if err := s.validarCategoriaPadre(ctx, categoriaID); err != nil {
				return dto.SubcategoriaResponse{}, err
			}
			sub.CategoriaID = categoriaID
			sub.Categoria = nil
		}
	}
	if req.Name != nil && *req.Name != sub.Name {
		taken, err := s.repo.NameExistsActivo(ctx, *req.Name, id)
		if err != nil {
			return dto.SubcategoriaResponse{}, err
		}
		if taken {
			return dto.SubcategoriaResponse{}, campoInvalido("name", "Ya existe una subcategoría con este nombre.")
		}
		unico, err := slug.Unique(ctx, *req.Name, s.slugExists(id))
		if err != nil {
			return dto.SubcategoriaResponse{}, err
		}
		sub.Name = *req.Name
		sub.Slug = unico
	}
	if req.Description != nil {
		sub.Description = req.Description
	}
	if req.Icon != nil {
		sub.Icon = req.Icon
	}
	if req.Image != nil {
		sub.Image = req.Image
	}
	if req.SeoTitle != nil {
		sub.SeoTitle = req.SeoTitle
	}
	if req.SeoDescription != nil {
		sub.SeoDescription = req.SeoDescription
	}
	if req.SeoKeywords != nil {
		sub.SeoKeywords = req.SeoKeywords
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}
	if req.Orden != nil {
		sub.Orden = *req.Orden
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		return dto.SubcategoriaResponse{}, err
	}

	actualizado, err := s.repo.FindByID(ctx, sub.ID)
	if err != nil {
		return dto.SubcategoriaResponse{}, err
	}
	return mapSubcategoria(*actualizado), nil
}

func (s *subcategoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if sub.IsDeleted() {
		return ErrYaEliminado
	}
	return s.repo.SoftDelete(ctx, id, time.Now())
}

func (s *subcategoriaService) Restaurar(ctx context.Context, id uuid.UUID) (dto.SubcategoriaResponse, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubcategoriaResponse{}, ErrNoEncontrado
		}
		return dto.SubcategoriaResponse{}, err
	}
	if !sub.IsDeleted() {
		return dto.SubcategoriaResponse{}, ErrNoEliminado
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return dto.SubcategoriaResponse{}, err
	}
	sub.Restore()
	return mapSubcategoria(*sub), nil
}
