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
)

// AtributoValorService defines business operations for attribute values.
type AtributoValorService interface {
	Crear(ctx context.Context, req dto.CrearAtributoValorRequest) (dto.AtributoValorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.AtributoValorResponse, error)
	Listar(ctx context.Context, f dto.AtributoValorFiltro) (dto.ListResponse[dto.AtributoValorResponse], error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAtributoValorRequest) (dto.AtributoValorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Restaurar(ctx context.Context, id uuid.UUID) (dto.AtributoValorResponse, error)
}

type atributoValorService struct {
	repo      repository.AtributoValorRepository
	atributos repository.AtributoRepository
}

func NewAtributoValorService(repo repository.AtributoValorRepository, atributos repository.AtributoRepository) AtributoValorService {
	return &atributoValorService{repo: repo, atributos: atributos}
}

func mapAtributoValor(v model.AtributoValor) dto.AtributoValorResponse {
	return dto.AtributoValorResponse{
		ID:             v.ID.String(),
		AtributoID:     v.AtributoID.String(),
		AtributoNombre: v.AtributoNombre(),
		Valor:          v.Valor,
		ValorExtra:     v.ValorExtra,
		Orden:          v.Orden,
		Activo:         v.Activo,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
		DeletedAt:      v.DeletedAt,
	}
}

// validarAtributoPadre checks that the parent attribute exists and is not
// deleted; values can only hang off live attributes.
func (s *atributoValorService) validarAtributoPadre(ctx context.Context, id uuid.UUID) error {
	a, err := s.atributos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return campoInvalido("atributo", "El atributo indicado no existe.")
		}
		return err
	}
	if a.IsDeleted() {
		return campoInvalido("atributo", "El atributo indicado está eliminado.")
	}
	return nil
}

func (s *atributoValorService) Crear(ctx context.Context, req dto.CrearAtributoValorRequest) (dto.AtributoValorResponse, error) {
	atributoID, err := uuid.Parse(req.AtributoID)
	if err != nil {
		return dto.AtributoValorResponse{}, campoInvalido("atributo", "Identificador inválido.")
	}
	if err := s.validarAtributoPadre(ctx, atributoID); err != nil {
		return dto.AtributoValorResponse{}, err
	}

	orden := 0
	if req.Orden != nil {
		orden = *req.Orden
	}
	dup, err := s.repo.OrdenExistsActivo(ctx, atributoID, orden, uuid.Nil)
	if err != nil {
		return dto.AtributoValorResponse{}, err
	}
	if dup {
		return dto.AtributoValorResponse{}, campoInvalido("orden", "Ya existe un valor con este orden para el atributo.")
	}

	v := &model.AtributoValor{
		AtributoID: atributoID,
		Valor:      req.Valor,
		ValorExtra: req.ValorExtra,
		Orden:      orden,
		Activo:     true,
	}
	if req.Activo != nil {
		v.Activo = *req.Activo
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return dto.AtributoValorResponse{}, err
	}

	creado, err := s.repo.FindByID(ctx, v.ID)
	if err != nil {
		return dto.AtributoValorResponse{}, err
	}
	return mapAtributoValor(*creado), nil
}

func (s *atributoValorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.AtributoValorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AtributoValorResponse{}, ErrNoEncontrado
		}
		return dto.AtributoValorResponse{}, err
	}
	return mapAtributoValor(*v), nil
}

func (s *atributoValorService) Listar(ctx context.Context, f dto.AtributoValorFiltro) (dto.ListResponse[dto.AtributoValorResponse], error) {
	valores, total, err := s.repo.List(ctx, f)
	if err != nil {
		return dto.ListResponse[dto.AtributoValorResponse]{}, err
	}
	items := make([]dto.AtributoValorResponse, 0, len(valores))
	for _, v := range valores {
		items = append(items, mapAtributoValor(v))
	}
	return dto.NewListResponse(items, total, f.Page), nil
}

func (s *atributoValorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarAtributoValorRequest) (dto.AtributoValorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AtributoValorResponse{}, ErrNoEncontrado
		}
		return dto.AtributoValorResponse{}, err
	}
	if v.IsDeleted() {
		return dto.AtributoValorResponse{}, ErrYaEliminado
	}

	if req.AtributoID != nil {
		atributoID, err := uuid.Parse(*req.AtributoID)
		if err != nil {
			return dto.AtributoValorResponse{}, campoInvalido("atributo", "Identificador inválido.")
		}
		if atributoID != v.AtributoID {
			if err := s.validarAtributoPadre(ctx, atributoID); err != nil {
				return dto.AtributoValorResponse{}, err
			}
			v.AtributoID = atributoID
			v.Atributo = nil
		}
	}
	if req.Orden != nil && *req.Orden != v.Orden {
		dup, err := s.repo.OrdenExistsActivo(ctx, v.AtributoID, *req.Orden, id)
		if err != nil {
			return dto.AtributoValorResponse{}, err
		}
		if dup {
			return dto.AtributoValorResponse{}, campoInvalido("orden", "Ya existe un valor con este orden para el atributo.")
		}
		v.Orden = *req.Orden
	}
	if req.Valor != nil {
		v.Valor = *req.Valor
	}
	if req.ValorExtra != nil {
		v.ValorExtra = req.ValorExtra
	}
	if req.Activo != nil {
		v.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return dto.AtributoValorResponse{}, err
	}

	actualizado, err := s.repo.FindByID(ctx, v.ID)
	if err != nil {
		return dto.AtributoValorResponse{}, err
	}
	return mapAtributoValor(*actualizado), nil
}

func (s *atributoValorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	if v.IsDeleted() {
		return ErrYaEliminado
	}
	return s.repo.SoftDelete(ctx, id, time.Now())
}

func (s *atributoValorService) Restaurar(ctx context.Context, id uuid.UUID) (dto.AtributoValorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AtributoValorResponse{}, ErrNoEncontrado
		}
		return dto.AtributoValorResponse{}, err
	}
	if !v.IsDeleted() {
		return dto.AtributoValorResponse{}, ErrNoEliminado
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return dto.AtributoValorResponse{}, err
	}
	v.Restore()
	return mapAtributoValor(*v), nil
}
