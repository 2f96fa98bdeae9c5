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

// MarcaService defines business operations for brands.
type MarcaService interface {
	Crear(ctx context.Context, req dto.CrearMarcaRequest) (dto.MarcaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.MarcaResponse, error)
	Listar(ctx context.Context, f dto.MarcaFiltro) (dto.ListResponse[dto.MarcaResponse], error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMarcaRequest) (dto.MarcaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Restaurar(ctx context.Context, id uuid.UUID) (dto.MarcaResponse, error)
}

type marcaService struct {
	repo repository.MarcaRepository
}

func NewMarcaService(repo repository.MarcaRepository) MarcaService {
	return &marcaService{repo: repo}
}

func mapMarca(m model.Marca, totalProductos int64) dto.MarcaResponse {
	return dto.MarcaResponse{
		ID:             m.ID.String(),
		Name:           m.Name,
		Slug:           m.Slug,
		Description:    m.Description,
		Logo:           m.Logo,
		Website:        m.Website,
		IsActive:       m.IsActive,
		IsFeatured:     m.IsFeatured,
		TotalProductos: totalProductos,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      m.DeletedAt,
	}
}

func (s *marcaService) slugExists(excludeID uuid.UUID) slug.ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, excludeID)
	}
}

func (s *marcaService) Crear(ctx context.Context, req dto.CrearMarcaRequest) (dto.MarcaResponse, error) {
	taken, err := s.repo.NameExistsActivo(ctx, req.Name, uuid.Nil)
	if err != nil {
		return dto.MarcaResponse{}, err
	}
	if taken {
		return dto.MarcaResponse{}, campoInvalido("name", "Ya existe una marca con este nombre.")
	}

	unico, err := slug.Unique(ctx, req.Name, s.slugExists(uuid.Nil))
	if err != nil {
		return dto.MarcaResponse{}, err
	}

	m := &model.Marca{
		Name:        req.Name,
		Slug:        unico,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		IsActive:    true,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		m.IsFeatured = *req.IsFeatured
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return dto.MarcaResponse{}, err
	}
	return mapMarca(*m, 0), nil
}

func (s *marcaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.MarcaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MarcaResponse{}, ErrNoEncontrado
		}
		return dto.MarcaResponse{}, err
	}
	counts, err := s.repo.CountProductos(ctx, []uuid.UUID{m.ID})
	if err != nil {
		return dto.MarcaResponse{}, err
	}
	return mapMarca(*m, counts[m.ID.String()]), nil
}

func (s *marcaService) Listar(ctx context.Context, f dto.MarcaFiltro) (dto.ListResponse[dto.MarcaResponse], error) {
	marcas, total, err := s.repo.List(ctx, f)
	if err != nil {
		return dto.ListResponse[dto.MarcaResponse]{}, err
	}

	ids := make([]uuid.UUID, 0, len(marcas))
	for _, m := range marcas {
		ids = append(ids, m.ID)
	}
	counts, err := s.repo.CountProductos(ctx, ids)
	if err != nil {
		return dto.ListResponse[dto.MarcaResponse]{}, err
	}

	items := make([]dto.MarcaResponse, 0, len(marcas))
	for _, m := range marcas {
		items = append(items, mapMarca(m, counts[m.ID.String()]))
	}
	return dto.NewListResponse(items, total, f.Page), nil
}

func (s *marcaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMarcaRequest) (dto.MarcaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MarcaResponse{}, ErrNoEncontrado
		}
		return dto.MarcaResponse{}, err
	}
	if m.IsDeleted() {
		return dto.MarcaResponse{}, ErrYaEliminado
	}

	if req.Name != nil && *req.Name != m.Name {
		taken, err := s.repo.NameExistsActivo(ctx, *req.Name, id)
		if err != nil {
			return dto.MarcaResponse{}, err
		}
		if taken {
			return dto.MarcaResponse{}, campoInvalido("name", "Ya existe una marca con este nombre.")
		}
		unico, err := slug.Unique(ctx, *req.Name, s.slugExists(id))
		if err != nil {
			return dto.MarcaResponse{}, err
		}
		m.Name = *req.Name
		m.Slug = unico
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.Logo != nil {
		m.Logo = req.Logo
	}
	if req.Website != nil {
		m.Website = req.Website
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		m.IsFeatured = *req.IsFeatured
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return dto.MarcaResponse{}, err
	}

	counts, err := s.repo.CountProductos(ctx, []uuid.UUID{m.ID})
	if err != nil {
		return dto.MarcaResponse{}, err
	}
	return mapMarca(*m, counts[m.ID.String()]), nil
}

func (s *marcaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if m.IsDeleted() {
		return ErrYaEliminado
	}
	return s.repo.SoftDelete(ctx, id, time.Now())
}

func (s *marcaService) Restaurar(ctx context.Context, id uuid.UUID) (dto.MarcaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MarcaResponse{}, ErrNoEncontrado
		}
		return dto.MarcaResponse{}, err
	}
	if !m.IsDeleted() {
		return dto.MarcaResponse{}, ErrNoEliminado
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return dto.MarcaResponse{}, err
	}
	m.Restore()

	counts, err := s.repo.CountProductos(ctx, []uuid.UUID{m.ID})
	if err != nil {
		return dto.MarcaResponse{}, err
	}
	return mapMarca(*m, counts[m.ID.String()]), nil
}
