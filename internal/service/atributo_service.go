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

// AtributoService defines business operations for product attributes.
type AtributoService interface {
	Crear(ctx context.Context, req dto.CrearAtributoRequest) (dto.AtributoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.AtributoResponse, error)
	Listar(ctx context.Context, f dto.AtributoFiltro) (dto.ListResponse[dto.AtributoResponse], error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAtributoRequest) (dto.AtributoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Restaurar(ctx context.Context, id uuid.UUID) (dto.AtributoResponse, error)
}

type atributoService struct {
	repo repository.AtributoRepository
}

func NewAtributoService(repo repository.AtributoRepository) AtributoService {
	return &atributoService{repo: repo}
}

func mapAtributo(a model.Atributo, totalValores int64) dto.AtributoResponse {
	return dto.AtributoResponse{
		ID:           a.ID.String(),
		Name:         a.Name,
		Slug:         a.Slug,
		Descripcion:  a.Descripcion,
		TipoInput:    a.TipoInput,
		TipoDato:     a.TipoDato,
		EsVariable:   a.EsVariable,
		EsFiltrable:  a.EsFiltrable,
		Orden:        a.Orden,
		TotalValores: totalValores,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		DeletedAt:    a.DeletedAt,
	}
}

func (s *atributoService) slugExists(excludeID uuid.UUID) slug.ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, excludeID)
	}
}

func (s *atributoService) Crear(ctx context.Context, req dto.CrearAtributoRequest) (dto.AtributoResponse, error) {
	taken, err := s.repo.NameExistsActivo(ctx, req.Name, uuid.Nil)
	if err != nil {
		return dto.AtributoResponse{}, err
	}
	if taken {
		return dto.AtributoResponse{}, campoInvalido("name", "Ya existe un atributo con este nombre.")
	}

	unico, err := slug.Unique(ctx, req.Name, s.slugExists(uuid.Nil))
	if err != nil {
		return dto.AtributoResponse{}, err
	}

	a := &model.Atributo{
		Name:        req.Name,
		Slug:        unico,
		Descripcion: req.Descripcion,
		TipoInput:   "text",
		TipoDato:    "string",
		EsVariable:  true,
		EsFiltrable: true,
	}
	if req.TipoInput != "" {
		a.TipoInput = req.TipoInput
	}
	if req.TipoDato != "" {
		a.TipoDato = req.TipoDato
	}
	if req.EsVariable != nil {
		a.EsVariable = *req.EsVariable
	}
	if req.EsFiltrable != nil {
		a.EsFiltrable = *req.EsFiltrable
	}
	if req.Orden != nil {
		a.Orden = *req.Orden
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return dto.AtributoResponse{}, err
	}
	return mapAtributo(*a, 0), nil
}

func (s *atributoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.AtributoResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AtributoResponse{}, ErrNoEncontrado
		}
		return dto.AtributoResponse{}, err
	}
	counts, err := s.repo.CountValores(ctx, []uuid.UUID{a.ID})
	if err != nil {
		return dto.AtributoResponse{}, err
	}
	return mapAtributo(*a, counts[a.ID.String()]), nil
}

func (s *atributoService) Listar(ctx context.Context, f dto.AtributoFiltro) (dto.ListResponse[dto.AtributoResponse], error) {
	atributos, total, err := s.repo.List(ctx, f)
	if err != nil {
		return dto.ListResponse[dto.AtributoResponse]{}, err
	}

	ids := make([]uuid.UUID, 0, len(atributos))
	for _, a := range atributos {
		ids = append(ids, a.ID)
	}
	counts, err := s.repo.CountValores(ctx, ids)
	if err != nil {
		return dto.ListResponse[dto.AtributoResponse]{}, err
	}

	items := make([]dto.AtributoResponse, 0, len(atributos))
	for _, a := range atributos {
		items = append(items, mapAtributo(a, counts[a.ID.String()]))
	}
	return dto.NewListResponse(items, total, f.Page), nil
}

func (s *atributoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAtributoRequest) (dto.AtributoResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AtributoResponse{}, ErrNoEncontrado
		}
		return dto.AtributoResponse{}, err
	}
	if a.IsDeleted() {
		return dto.AtributoResponse{}, ErrYaEliminado
	}

	// The slug is recomputed only when the name actually changes.
	if req.Name != nil && *req.Name != a.Name {
		taken, err := s.repo.NameExistsActivo(ctx, *req.Name, id)
		if err != nil {
			return dto.AtributoResponse{}, err
		}
		if taken {
			return dto.AtributoResponse{}, campoInvalido("name", "Ya existe un atributo con este nombre.")
		}
		unico, err := slug.Unique(ctx, *req.Name, s.slugExists(id))
		if err != nil {
			return dto.AtributoResponse{}, err
		}
		a.Name = *req.Name
		a.Slug = unico
	}
	if req.Descripcion != nil {
		a.Descripcion = req.Descripcion
	}
	if req.TipoInput != nil {
		a.TipoInput = *req.TipoInput
	}
	if req.TipoDato != nil {
		a.TipoDato = *req.TipoDato
	}
	if req.EsVariable != nil {
		a.EsVariable = *req.EsVariable
	}
	if req.EsFiltrable != nil {
		a.EsFiltrable = *req.EsFiltrable
	}
	if req.Orden != nil {
		a.Orden = *req.Orden
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return dto.AtributoResponse{}, err
	}

	counts, err := s.repo.CountValores(ctx, []uuid.UUID{a.ID})
	if err != nil {
		return dto.AtributoResponse{}, err
	}
	return mapAtributo(*a, counts[a.ID.String()]), nil
}

func (s *atributoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if a.IsDeleted() {
		return ErrYaEliminado
	}
	return s.repo.SoftDelete(ctx, id, time.Now())
}

func (s *atributoService) Restaurar(ctx context.Context, id uuid.UUID) (dto.AtributoResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AtributoResponse{}, ErrNoEncontrado
		}
		return dto.AtributoResponse{}, err
	}
	if !a.IsDeleted() {
		return dto.AtributoResponse{}, ErrNoEliminado
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return dto.AtributoResponse{}, err
	}
	a.Restore()

	counts, err := s.repo.CountValores(ctx, []uuid.UUID{a.ID})
	if err != nil {
		return dto.AtributoResponse{}, err
	}
	return mapAtributo(*a, counts[a.ID.String()]), nil
}
