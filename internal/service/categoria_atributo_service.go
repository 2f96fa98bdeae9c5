package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalogo/internal/dto"
	"catalogo/internal/model"
	"catalogo/internal/repository"
)

// CategoriaAtributoService manages which attributes apply to each category.
type CategoriaAtributoService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaAtributoRequest) (dto.CategoriaAtributoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.CategoriaAtributoResponse, error)
	Listar(ctx context.Context, f dto.CategoriaAtributoFiltro) (dto.ListResponse[dto.CategoriaAtributoResponse], error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaAtributoRequest) (dto.CategoriaAtributoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ListarPorCategoria(ctx context.Context, categoriaID uuid.UUID) ([]dto.CategoriaAtributoResponse, error)
}

type categoriaAtributoService struct {
	repo       repository.CategoriaAtributoRepository
	categorias repository.CategoriaRepository
	atributos  repository.AtributoRepository
}

func NewCategoriaAtributoService(
	repo repository.CategoriaAtributoRepository,
	categorias repository.CategoriaRepository,
	atributos repository.AtributoRepository,
) CategoriaAtributoService {
	return &categoriaAtributoService{repo: repo, categorias: categorias, atributos: atributos}
}

func mapCategoriaAtributo(ca model.CategoriaAtributo) dto.CategoriaAtributoResponse {
	return dto.CategoriaAtributoResponse{
		ID:              ca.ID.String(),
		CategoriaID:     ca.CategoriaID.String(),
		CategoriaNombre: ca.CategoriaNombre(),
		AtributoID:      ca.AtributoID.String(),
		AtributoNombre:  ca.AtributoNombre(),
		Obligatorio:     ca.Obligatorio,
		Orden:           ca.Orden,
		CreatedAt:       ca.CreatedAt,
	}
}

func (s *categoriaAtributoService) Crear(ctx context.Context, req dto.CrearCategoriaAtributoRequest) (dto.CategoriaAtributoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return dto.CategoriaAtributoResponse{}, campoInvalido("categoria", "Identificador inválido.")
	}
	atributoID, err := uuid.Parse(req.AtributoID)
	if err != nil {
		return dto.CategoriaAtributoResponse{}, campoInvalido("atributo", "Identificador inválido.")
	}

	c, err := s.categorias.FindByID(ctx, categoriaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaAtributoResponse{}, campoInvalido("categoria", "La categoría indicada no existe.")
		}
		return dto.CategoriaAtributoResponse{}, err
	}
	if c.IsDeleted() {
		return dto.CategoriaAtributoResponse{}, campoInvalido("categoria", "La categoría indicada está eliminada.")
	}

	a, err := s.atributos.FindByID(ctx, atributoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaAtributoResponse{}, campoInvalido("atributo", "El atributo indicado no existe.")
		}
		return dto.CategoriaAtributoResponse{}, err
	}
	if a.IsDeleted() {
		return dto.CategoriaAtributoResponse{}, campoInvalido("atributo", "El atributo indicado está eliminado.")
	}

	dup, err := s.repo.PairExists(ctx, categoriaID, atributoID)
	if err != nil {
		return dto.CategoriaAtributoResponse{}, err
	}
	if dup {
		return dto.CategoriaAtributoResponse{}, campoInvalido("atributo", "El atributo ya está asociado a esta categoría.")
	}

	ca := &model.CategoriaAtributo{
		CategoriaID: categoriaID,
		AtributoID:  atributoID,
	}
	if req.Obligatorio != nil {
		ca.Obligatorio = *req.Obligatorio
	}
	if req.Orden != nil {
		ca.Orden = *req.Orden
	}

	if err := s.repo.Create(ctx, ca); err != nil {
		return dto.CategoriaAtributoResponse{}, err
	}
	ca.Categoria = c
	ca.Atributo = a
	return mapCategoriaAtributo(*ca), nil
}

func (s *categoriaAtributoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.CategoriaAtributoResponse, error) {
	ca, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaAtributoResponse{}, ErrNoEncontrado
		}
		return dto.CategoriaAtributoResponse{}, err
	}
	return mapCategoriaAtributo(*ca), nil
}

func (s *categoriaAtributoService) Listar(ctx context.Context, f dto.CategoriaAtributoFiltro) (dto.ListResponse[dto.CategoriaAtributoResponse], error) {
	asociaciones, total, err := s.repo.List(ctx, f)
	if err != nil {
		return dto.ListResponse[dto.CategoriaAtributoResponse]{}, err
	}
	items := make([]dto.CategoriaAtributoResponse, 0, len(asociaciones))
	for _, ca := range asociaciones {
		items = append(items, mapCategoriaAtributo(ca))
	}
	return dto.NewListResponse(items, total, f.Page), nil
}

func (s *categoriaAtributoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaAtributoRequest) (dto.CategoriaAtributoResponse, error) {
	ca, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaAtributoResponse{}, ErrNoEncontrado
		}
		return dto.CategoriaAtributoResponse{}, err
	}

	if req.Obligatorio != nil {
		ca.Obligatorio = *req.Obligatorio
	}
	if req.Orden != nil {
		ca.Orden = *req.Orden
	}

	if err := s.repo.Update(ctx, ca); err != nil {
		return dto.CategoriaAtributoResponse{}, err
	}
	return mapCategoriaAtributo(*ca), nil
}

func (s *categoriaAtributoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *categoriaAtributoService) ListarPorCategoria(ctx context.Context, categoriaID uuid.UUID) ([]dto.CategoriaAtributoResponse, error) {
	if _, err := s.categorias.FindByID(ctx, categoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	asociaciones, err := s.repo.ListByCategoria(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaAtributoResponse, 0, len(asociaciones))
	for _, ca := range asociaciones {
		items = append(items, mapCategoriaAtributo(ca))
	}
	return items, nil
}
