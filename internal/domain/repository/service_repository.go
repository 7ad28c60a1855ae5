package repository

import (
	"context"

	"github.com/jhoicas/consultoria-api/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	// List devuelve los servicios más recientes primero. Con onlyActive
	// filtra los inactivos (catálogo público); sin filtro es la vista admin.
	List(ctx context.Context, onlyActive bool) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id string) error
}
