package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consultoria-api/internal/application/dto"
	"github.com/jhoicas/consultoria-api/internal/domain"
	"github.com/jhoicas/consultoria-api/internal/domain/entity"
	"github.com/jhoicas/consultoria-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para el catálogo de servicios.
// Las mutaciones son solo admin; el listado público filtra inactivos.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create crea un servicio. Valida categoría cerrada y precio no negativo.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	service := &entity.Service{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Duration:    in.Duration,
		Active:      active,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio por ID. Devuelve (nil, nil) si no existe.
func (uc *ServiceUseCase) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return toServiceResponse(service), nil
}

// List lista servicios, más recientes primero. onlyActive filtra el catálogo público.
func (uc *ServiceUseCase) List(ctx context.Context, onlyActive bool) ([]dto.ServiceResponse, error) {
	list, err := uc.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return items, nil
}

// Update actualiza parcialmente un servicio. Devuelve (nil, nil) si no existe.
func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		service.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		service.Price = *in.Price
	}
	if in.Duration != nil {
		service.Duration = *in.Duration
	}
	if in.Active != nil {
		service.Active = *in.Active
	}
	if err := uc.repo.Update(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete elimina un servicio. Devuelve domain.ErrNotFound si el id no existe.
func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Price:       s.Price,
		Duration:    s.Duration,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}
